package healthdata

import "testing"

func TestCategoriesOmitEmpty(t *testing.T) {
	s := NewStore()

	categories := s.Categories()
	if len(categories) == 0 {
		t.Fatal("no categories")
	}
	for _, c := range categories {
		if c.BiomarkerCount == 0 {
			t.Errorf("category %q has no biomarkers but was returned", c.ID)
		}
		total := c.StatusCounts.InRange + c.StatusCounts.OutOfRange + c.StatusCounts.Other
		if total != c.BiomarkerCount {
			t.Errorf("category %q: counts sum to %d, biomarkerCount is %d", c.ID, total, c.BiomarkerCount)
		}
	}

	// The fixture set has no female-health results, so that category
	// must not appear.
	for _, c := range categories {
		if c.ID == "female-health" {
			t.Error("empty category female-health returned")
		}
	}
}

func TestCategoryLookup(t *testing.T) {
	s := NewStore()

	heart, ok := s.Category("heart")
	if !ok {
		t.Fatal("heart category missing")
	}
	if heart.Name != "Heart" {
		t.Errorf("name = %q", heart.Name)
	}
	if heart.StatusCounts.OutOfRange == 0 {
		t.Error("heart fixtures include out-of-range markers")
	}

	if _, ok := s.Category("nope"); ok {
		t.Error("unknown category found")
	}
	// Known id but no biomarkers behaves like unknown.
	if _, ok := s.Category("female-health"); ok {
		t.Error("empty category found")
	}
}

func TestBiomarkerFilters(t *testing.T) {
	s := NewStore()

	all := s.Biomarkers("", "")
	if len(all) == 0 {
		t.Fatal("no biomarkers")
	}

	out := s.Biomarkers(StatusOutOfRange, "")
	if len(out) == 0 {
		t.Fatal("no out-of-range biomarkers")
	}
	for _, b := range out {
		if b.Status != StatusOutOfRange {
			t.Errorf("biomarker %q has status %q", b.ID, b.Status)
		}
	}

	heart := s.Biomarkers("", "heart")
	for _, b := range heart {
		if b.CategoryID != "heart" {
			t.Errorf("biomarker %q in category %q", b.ID, b.CategoryID)
		}
	}

	both := s.Biomarkers(StatusOutOfRange, "heart")
	if len(both) == 0 {
		t.Fatal("combined filter empty")
	}
	for _, b := range both {
		if b.Status != StatusOutOfRange || b.CategoryID != "heart" {
			t.Errorf("biomarker %q does not match both filters", b.ID)
		}
	}
}

func TestBiomarkerLookup(t *testing.T) {
	s := NewStore()

	ldl, ok := s.Biomarker("ldl")
	if !ok {
		t.Fatal("ldl missing")
	}
	if ldl.CategoryID != "heart" || ldl.Unit != "mg/dL" {
		t.Errorf("ldl = %+v", ldl)
	}

	if _, ok := s.Biomarker("nope"); ok {
		t.Error("unknown biomarker found")
	}
}

func TestRecommendationsForBiomarker(t *testing.T) {
	s := NewStore()

	recs := s.RecommendationsForBiomarker("vitamin-d")
	if len(recs) == 0 {
		t.Fatal("no recommendations for vitamin-d")
	}
	for _, r := range recs {
		linked := false
		for _, id := range r.LinkedBiomarkerIDs {
			if id == "vitamin-d" {
				linked = true
			}
		}
		if !linked {
			t.Errorf("recommendation %q not linked to vitamin-d", r.ID)
		}
	}

	if recs := s.RecommendationsForBiomarker("nope"); len(recs) != 0 {
		t.Errorf("got %d recommendations for unknown biomarker", len(recs))
	}
}

func TestNoteForCategory(t *testing.T) {
	s := NewStore()

	note, ok := s.NoteForCategory("heart")
	if !ok {
		t.Fatal("no heart note")
	}
	if note.CategoryName != "Heart" {
		t.Errorf("note = %+v", note)
	}

	if _, ok := s.NoteForCategory("liver"); ok {
		t.Error("unexpected liver note")
	}
}

func TestSummaryCounts(t *testing.T) {
	s := NewStore()

	sum := s.Summary()
	if sum.Total != len(fixtureBiomarkers) {
		t.Errorf("total = %d, want %d", sum.Total, len(fixtureBiomarkers))
	}
	if sum.InRange+sum.OutOfRange+sum.Other != sum.Total {
		t.Errorf("counts do not add up: %+v", sum)
	}
	if sum.OutOfRange == 0 {
		t.Error("fixtures include out-of-range markers")
	}
}

func TestDashboard(t *testing.T) {
	s := NewStore()

	d := s.Dashboard()
	if d.User.ID == "" {
		t.Error("user missing")
	}
	if d.BiologicalAge.Value != 34 || d.BiologicalAge.Difference != -2 {
		t.Errorf("biological age = %+v", d.BiologicalAge)
	}
	if len(d.RecentNotes) > 3 {
		t.Errorf("recent notes = %d, want at most 3", len(d.RecentNotes))
	}
	if d.BiomarkersSummary.Total == 0 {
		t.Error("summary missing")
	}

	// Required questionnaire sections are incomplete, so the dashboard
	// carries a pending action for it.
	found := false
	for _, a := range d.PendingActions {
		if a.Type == "questionnaire" {
			found = true
		}
	}
	if !found {
		t.Error("no questionnaire pending action")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewStore()

	notes := s.Notes()
	if len(notes) == 0 {
		t.Fatal("no notes")
	}
	notes[0].Content = "mutated"

	again := s.Notes()
	if again[0].Content == "mutated" {
		t.Error("mutation of a returned slice reached the store")
	}
}
