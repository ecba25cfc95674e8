// Package api is the HTTP surface: the chat gateway endpoints, the key
// validation endpoint, the model catalog, and the health dashboard
// reads, all mounted under /api.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/closedai/healthgate/internal/domain"
	"github.com/closedai/healthgate/internal/healthdata"
	"github.com/closedai/healthgate/internal/metrics"
	"github.com/closedai/healthgate/internal/provider"
	"github.com/closedai/healthgate/internal/router"
	"github.com/closedai/healthgate/internal/telemetry"
)

// AdapterFactory builds a provider adapter scoped to one request's
// credential.
type AdapterFactory interface {
	New(kind domain.ProviderKind, apiKey string) (provider.Adapter, error)
}

// KeyValidator checks a credential against its provider.
type KeyValidator interface {
	Validate(ctx context.Context, kind domain.ProviderKind, apiKey string) domain.ValidationResult
}

type HandlerConfig struct {
	Factory   AdapterFactory
	Validator KeyValidator
	Store     *healthdata.Store

	// Browser origins allowed by CORS. Empty means the local dev
	// frontend defaults.
	CORSOrigins []string
}

type Handler struct {
	factory   AdapterFactory
	validator KeyValidator
	store     *healthdata.Store
	mux       *http.ServeMux
	handler   http.Handler
}

func NewHandler(cfg HandlerConfig) *Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	h := &Handler{
		factory:   cfg.Factory,
		validator: cfg.Validator,
		store:     cfg.Store,
		mux:       http.NewServeMux(),
	}

	h.mux.HandleFunc("POST /api/chat", h.handleChatStream)
	h.mux.HandleFunc("POST /api/chat/complete", h.handleChatComplete)
	h.mux.HandleFunc("POST /api/validate-key", h.handleValidateKey)
	h.mux.HandleFunc("GET /api/models", h.handleListModels)
	h.mux.HandleFunc("GET /api/health", h.handleHealth)

	h.mux.HandleFunc("GET /api/health/user", h.handleUser)
	h.mux.HandleFunc("GET /api/health/dashboard", h.handleDashboard)
	h.mux.HandleFunc("GET /api/health/categories", h.handleCategories)
	h.mux.HandleFunc("GET /api/health/categories/{categoryId}", h.handleCategory)
	h.mux.HandleFunc("GET /api/health/biomarkers", h.handleBiomarkers)
	h.mux.HandleFunc("GET /api/health/biomarkers/{biomarkerId}", h.handleBiomarker)
	h.mux.HandleFunc("GET /api/health/notes", h.handleNotes)
	h.mux.HandleFunc("GET /api/health/recommendations", h.handleRecommendations)
	h.mux.HandleFunc("GET /api/health/requisitions", h.handleRequisitions)
	h.mux.HandleFunc("GET /api/health/biological-age", h.handleBiologicalAge)
	h.mux.HandleFunc("GET /api/health/questionnaire-status", h.handleQuestionnaireStatus)

	h.mux.Handle("GET /metrics", promhttp.Handler())

	h.handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
	}).Handler(h.mux)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

func (h *Handler) handleListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"models": provider.Catalog()})
}

// handleChatStream streams the assistant reply as server-sent events.
// Once the stream is committed every failure becomes a terminal error
// event on the open stream; there is exactly one terminal event and
// nothing follows it.
func (h *Handler) handleChatStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := extractRequestID(r)

	req, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	kind := router.Resolve(req.Model)

	ctx, span := telemetry.StartSpan(ctx, "chat.stream")
	defer span.End()
	telemetry.AddRequestAttributes(span, string(kind), req.Model, requestID)

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(http.StatusOK)

	if kind == domain.ProviderUnknown {
		writeEvent(w, flusher, domain.StreamEvent{
			Type:  domain.EventError,
			Error: "unknown provider for model: " + req.Model,
		})
		metrics.RecordRequest(string(kind), req.Model, "error", time.Since(start).Seconds())
		slog.Warn("unknown model", "model", req.Model, "request_id", requestID)
		return
	}

	adapter, err := h.factory.New(kind, req.APIKey)
	if err != nil {
		writeEvent(w, flusher, domain.StreamEvent{Type: domain.EventError, Error: err.Error()})
		metrics.RecordRequest(string(kind), req.Model, "error", time.Since(start).Seconds())
		return
	}

	metrics.IncrementActiveStreams()
	defer metrics.DecrementActiveStreams()

	events, errs := adapter.StreamChat(ctx, req)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Closed without a done event; the errs channel
				// carries the reason.
				events = nil
				if errs == nil {
					return
				}
				continue
			}
			writeEvent(w, flusher, ev)
			if ev.Type == domain.EventDone {
				if ev.Usage != nil {
					metrics.RecordTokens(string(kind), req.Model, ev.Usage.PromptTokens, ev.Usage.CompletionTokens)
					telemetry.AddTokenAttributes(span, ev.Usage.PromptTokens, ev.Usage.CompletionTokens)
				}
				metrics.RecordRequest(string(kind), req.Model, "success", time.Since(start).Seconds())
				slog.Info("stream completed",
					"request_id", requestID,
					"provider", kind,
					"model", req.Model,
					"latency_ms", time.Since(start).Milliseconds(),
				)
				return
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				if events == nil {
					return
				}
				continue
			}
			if err == nil {
				continue
			}
			writeEvent(w, flusher, domain.StreamEvent{Type: domain.EventError, Error: err.Error()})
			metrics.RecordRequest(string(kind), req.Model, "error", time.Since(start).Seconds())
			metrics.RecordProviderError(string(kind), "stream")
			telemetry.AddErrorAttribute(span, err)
			slog.Error("stream failed",
				"request_id", requestID,
				"provider", kind,
				"model", req.Model,
				"error", err,
			)
			return

		case <-ctx.Done():
			// Client gone; upstream request is cancelled through ctx.
			metrics.RecordRequest(string(kind), req.Model, "cancelled", time.Since(start).Seconds())
			slog.Info("stream cancelled", "request_id", requestID, "model", req.Model)
			return
		}
	}
}

func (h *Handler) handleChatComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := extractRequestID(r)

	req, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	kind := router.Resolve(req.Model)

	ctx, span := telemetry.StartSpan(ctx, "chat.complete")
	defer span.End()
	telemetry.AddRequestAttributes(span, string(kind), req.Model, requestID)

	if kind == domain.ProviderUnknown {
		writeJSON(w, http.StatusOK, map[string]string{"content": ""})
		metrics.RecordRequest(string(kind), req.Model, "error", time.Since(start).Seconds())
		slog.Warn("unknown model", "model", req.Model, "request_id", requestID)
		return
	}

	adapter, err := h.factory.New(kind, req.APIKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "provider request failed")
		metrics.RecordRequest(string(kind), req.Model, "error", time.Since(start).Seconds())
		return
	}

	content, err := adapter.CompleteChat(ctx, req)
	if err != nil {
		metrics.RecordRequest(string(kind), req.Model, "error", time.Since(start).Seconds())
		metrics.RecordProviderError(string(kind), "complete")
		telemetry.AddErrorAttribute(span, err)
		slog.Error("completion failed",
			"request_id", requestID,
			"provider", kind,
			"model", req.Model,
			"error", err,
		)
		msg := err.Error()
		if msg == "" {
			msg = "provider request failed"
		}
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	metrics.RecordRequest(string(kind), req.Model, "success", time.Since(start).Seconds())
	slog.Info("completion finished",
		"request_id", requestID,
		"provider", kind,
		"model", req.Model,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

type validateKeyRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
}

func (h *Handler) handleValidateKey(w http.ResponseWriter, r *http.Request) {
	var body validateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.ValidationResult{
			Valid: false,
			Error: "invalid request body",
		})
		return
	}

	if body.Provider == "" || body.APIKey == "" {
		writeJSON(w, http.StatusBadRequest, domain.ValidationResult{
			Valid: false,
			Error: "missing provider or apiKey",
		})
		return
	}

	kind := domain.ParseProviderKind(body.Provider)
	result := h.validator.Validate(r.Context(), kind, body.APIKey)

	metrics.RecordKeyValidation(body.Provider, result.Valid)
	slog.Info("key validation", "provider", body.Provider, "valid", result.Valid)

	writeJSON(w, http.StatusOK, result)
}

// decodeChatRequest decodes and validates the unified chat body,
// answering 400 itself when the body is malformed or incomplete.
func decodeChatRequest(w http.ResponseWriter, r *http.Request) (domain.ChatRequest, bool) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return domain.ChatRequest{}, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.ChatRequest{}, false
	}
	return req, true
}

func extractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return uuid.New().String()
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, ev domain.StreamEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	w.Write([]byte("data: " + string(data) + "\n\n"))
	flusher.Flush()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
