package api

import (
	"net/http"

	"github.com/closedai/healthgate/internal/healthdata"
)

func (h *Handler) handleUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.User())
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Dashboard())
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": h.store.Categories()})
}

func (h *Handler) handleCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("categoryId")
	category, ok := h.store.Category(id)
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	resp := struct {
		healthdata.Category
		Biomarkers []healthdata.Biomarker `json:"biomarkers"`
		Note       *healthdata.Note       `json:"note,omitempty"`
	}{
		Category:   category,
		Biomarkers: h.store.BiomarkersByCategory(id),
	}
	if note, ok := h.store.NoteForCategory(id); ok {
		resp.Note = &note
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleBiomarkers(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, map[string]any{
		"biomarkers": h.store.Biomarkers(status, category),
	})
}

func (h *Handler) handleBiomarker(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("biomarkerId")
	biomarker, ok := h.store.Biomarker(id)
	if !ok {
		writeError(w, http.StatusNotFound, "biomarker not found")
		return
	}

	resp := struct {
		healthdata.Biomarker
		Recommendations []healthdata.Recommendation `json:"recommendations"`
	}{
		Biomarker:       biomarker,
		Recommendations: h.store.RecommendationsForBiomarker(id),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"notes": h.store.Notes()})
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": h.store.Recommendations()})
}

func (h *Handler) handleRequisitions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"requisitions": h.store.Requisitions()})
}

func (h *Handler) handleBiologicalAge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.BiologicalAge())
}

func (h *Handler) handleQuestionnaireStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Questionnaire())
}
