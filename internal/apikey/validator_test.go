package apikey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/closedai/healthgate/internal/domain"
	"github.com/closedai/healthgate/internal/provider"
)

func TestValidateMissingInput(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	v := NewValidator(provider.Endpoints{
		Anthropic: srv.URL, OpenAI: srv.URL, XAI: srv.URL, OpenRouter: srv.URL,
	}, srv.Client())

	tests := []struct {
		name string
		kind domain.ProviderKind
		key  string
	}{
		{"empty key", domain.ProviderAnthropic, ""},
		{"unknown provider", domain.ProviderUnknown, "sk-test"},
		{"empty provider", "", "sk-test"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(context.Background(), tt.kind, tt.key)
			if result.Valid {
				t.Error("result is valid")
			}
			if result.Error != "missing provider or apiKey" {
				t.Errorf("error = %q", result.Error)
			}
		})
	}

	if n := hits.Load(); n != 0 {
		t.Errorf("precondition failures reached the network %d times", n)
	}
}

func TestValidateAnthropic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			MaxTokens int `json:"max_tokens"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.MaxTokens != 1 {
			t.Errorf("max_tokens = %d, want 1", body.MaxTokens)
		}
		fmt.Fprint(w, `{"id":"msg_1","content":[{"type":"text","text":"Hi"}]}`)
	}))
	defer srv.Close()

	v := NewValidator(provider.Endpoints{Anthropic: srv.URL}, srv.Client())
	result := v.Validate(context.Background(), domain.ProviderAnthropic, "sk-ant-test")
	if !result.Valid {
		t.Errorf("result = %+v, want valid", result)
	}
	if result.Error != "" {
		t.Errorf("error = %q, want empty", result.Error)
	}
}

func TestValidateAnthropicRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	}))
	defer srv.Close()

	v := NewValidator(provider.Endpoints{Anthropic: srv.URL}, srv.Client())
	result := v.Validate(context.Background(), domain.ProviderAnthropic, "bad")
	if result.Valid {
		t.Error("result is valid")
	}
	if result.Error == "" {
		t.Error("error message empty")
	}
}

func TestValidateOpenAICompatible(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fmt.Fprint(w, `{"object":"list","data":[{"id":"gpt-4o","object":"model"}]}`)
	}))
	defer srv.Close()

	endpoints := provider.Endpoints{
		Anthropic: srv.URL, OpenAI: srv.URL, XAI: srv.URL, OpenRouter: srv.URL,
	}
	v := NewValidator(endpoints, srv.Client())

	for _, kind := range []domain.ProviderKind{
		domain.ProviderOpenAI, domain.ProviderXAI, domain.ProviderOpenRouter,
	} {
		t.Run(string(kind), func(t *testing.T) {
			result := v.Validate(context.Background(), kind, "sk-test")
			if !result.Valid {
				t.Errorf("result = %+v, want valid", result)
			}
			if path != "/models" {
				t.Errorf("path = %s, want /models", path)
			}
		})
	}
}

func TestValidatePartialEndpointOverride(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"object":"list","data":[{"id":"gpt-4o","object":"model"}]}`)
	}))
	defer srv.Close()

	// Overriding a single base URL must route that provider to the
	// override and leave the others on their public defaults.
	v := NewValidator(provider.Endpoints{OpenAI: srv.URL}, srv.Client())

	result := v.Validate(context.Background(), domain.ProviderOpenAI, "sk-test")
	if !result.Valid {
		t.Errorf("result = %+v, want valid", result)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("override endpoint hit %d times, want 1", n)
	}

	defaults := provider.DefaultEndpoints()
	if v.endpoints.Anthropic != defaults.Anthropic {
		t.Errorf("Anthropic = %q, want default", v.endpoints.Anthropic)
	}
	if v.endpoints.XAI != defaults.XAI || v.endpoints.OpenRouter != defaults.OpenRouter {
		t.Errorf("XAI = %q, OpenRouter = %q, want defaults", v.endpoints.XAI, v.endpoints.OpenRouter)
	}
}

func TestValidateOpenAIRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	v := NewValidator(provider.Endpoints{
		Anthropic: srv.URL, OpenAI: srv.URL, XAI: srv.URL, OpenRouter: srv.URL,
	}, srv.Client())

	result := v.Validate(context.Background(), domain.ProviderOpenAI, "bad")
	if result.Valid {
		t.Error("result is valid")
	}
	if result.Error == "" {
		t.Error("error message empty")
	}
}
