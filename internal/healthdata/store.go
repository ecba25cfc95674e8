package healthdata

// Store exposes read-only access to a member's health data. All
// accessors return copies so callers cannot mutate shared state.
type Store struct {
	user            User
	categories      []categoryMeta
	biomarkers      []Biomarker
	notes           []Note
	recommendations []RecommendationGroup
	requisitions    []Requisition
	biologicalAge   BiologicalAge
	questionnaire   QuestionnaireStatus
}

func NewStore() *Store {
	return &Store{
		user:            fixtureUser,
		categories:      fixtureCategories,
		biomarkers:      fixtureBiomarkers,
		notes:           fixtureNotes,
		recommendations: fixtureRecommendations,
		requisitions:    fixtureRequisitions,
		biologicalAge:   fixtureBiologicalAge,
		questionnaire:   fixtureQuestionnaire,
	}
}

func (s *Store) User() User {
	return s.user
}

// Categories returns categories that have at least one biomarker,
// with counts derived from the current results.
func (s *Store) Categories() []Category {
	out := make([]Category, 0, len(s.categories))
	for _, meta := range s.categories {
		c := s.buildCategory(meta)
		if c.BiomarkerCount == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Category looks up a single category by id. The second return value
// reports whether the category exists and has biomarkers.
func (s *Store) Category(id string) (Category, bool) {
	for _, meta := range s.categories {
		if meta.id != id {
			continue
		}
		c := s.buildCategory(meta)
		if c.BiomarkerCount == 0 {
			return Category{}, false
		}
		return c, true
	}
	return Category{}, false
}

func (s *Store) buildCategory(meta categoryMeta) Category {
	c := Category{ID: meta.id, Name: meta.name, Description: meta.description}
	for _, b := range s.biomarkers {
		if b.CategoryID != meta.id {
			continue
		}
		c.BiomarkerCount++
		switch b.Status {
		case StatusInRange:
			c.StatusCounts.InRange++
		case StatusOutOfRange:
			c.StatusCounts.OutOfRange++
		default:
			c.StatusCounts.Other++
		}
	}
	return c
}

// Biomarkers returns all biomarkers, optionally filtered by status
// and/or category. Empty filter values match everything.
func (s *Store) Biomarkers(status, categoryID string) []Biomarker {
	out := make([]Biomarker, 0, len(s.biomarkers))
	for _, b := range s.biomarkers {
		if status != "" && b.Status != status {
			continue
		}
		if categoryID != "" && b.CategoryID != categoryID {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (s *Store) Biomarker(id string) (Biomarker, bool) {
	for _, b := range s.biomarkers {
		if b.ID == id {
			return b, true
		}
	}
	return Biomarker{}, false
}

func (s *Store) BiomarkersByCategory(categoryID string) []Biomarker {
	return s.Biomarkers("", categoryID)
}

func (s *Store) Notes() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Store) NoteForCategory(categoryID string) (Note, bool) {
	for _, n := range s.notes {
		if n.CategoryID == categoryID {
			return n, true
		}
	}
	return Note{}, false
}

func (s *Store) Recommendations() []RecommendationGroup {
	out := make([]RecommendationGroup, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// RecommendationsForBiomarker returns the flat list of recommendations
// linked to the given biomarker, across all groups.
func (s *Store) RecommendationsForBiomarker(biomarkerID string) []Recommendation {
	var out []Recommendation
	for _, g := range s.recommendations {
		for _, r := range g.Items {
			for _, id := range r.LinkedBiomarkerIDs {
				if id == biomarkerID {
					out = append(out, r)
					break
				}
			}
		}
	}
	return out
}

func (s *Store) Requisitions() []Requisition {
	out := make([]Requisition, len(s.requisitions))
	copy(out, s.requisitions)
	return out
}

func (s *Store) BiologicalAge() BiologicalAge {
	return s.biologicalAge
}

func (s *Store) Questionnaire() QuestionnaireStatus {
	return s.questionnaire
}

func (s *Store) Summary() Summary {
	var sum Summary
	for _, b := range s.biomarkers {
		sum.Total++
		switch b.Status {
		case StatusInRange:
			sum.InRange++
		case StatusOutOfRange:
			sum.OutOfRange++
		default:
			sum.Other++
		}
	}
	return sum
}

// Dashboard assembles the landing-page payload: identity, biological
// age, result summary, categories, the most recent notes, and any
// outstanding actions.
func (s *Store) Dashboard() Dashboard {
	recent := s.Notes()
	if len(recent) > 3 {
		recent = recent[:3]
	}

	var pending []PendingAction
	if !s.questionnaire.RequiredComplete {
		pending = append(pending, PendingAction{
			Type:        "questionnaire",
			Title:       "Complete your health questionnaire",
			Description: "Required sections of your health questionnaire are incomplete.",
		})
	}

	return Dashboard{
		User:              s.user,
		BiologicalAge:     s.biologicalAge,
		BiomarkersSummary: s.Summary(),
		Categories:        s.Categories(),
		RecentNotes:       recent,
		PendingActions:    pending,
	}
}
