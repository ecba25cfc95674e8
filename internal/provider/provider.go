// Package provider defines the adapter contract shared by every
// upstream vendor and the factory that builds credential-scoped adapter
// instances.
package provider

import (
	"context"
	"net/http"

	"github.com/closedai/healthgate/internal/domain"
	"github.com/closedai/healthgate/internal/httputil"
	"github.com/closedai/healthgate/internal/provider/anthropic"
	"github.com/closedai/healthgate/internal/provider/openaicompat"
)

// Adapter translates between the unified chat protocol and one vendor's
// API shape. StreamChat produces content events in upstream arrival
// order followed by exactly one done event; upstream failures go to the
// error channel. CompleteChat returns the full text in one call, empty
// when the upstream produced no content. CheckKey performs the cheapest
// authenticated round trip that proves the credential works.
type Adapter interface {
	Kind() domain.ProviderKind
	StreamChat(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamEvent, <-chan error)
	CompleteChat(ctx context.Context, req domain.ChatRequest) (string, error)
	CheckKey(ctx context.Context) error
}

// Endpoints holds the base URL of each vendor. Overridable for tests
// and local proxies; zero values fall back to the public endpoints.
type Endpoints struct {
	Anthropic  string
	OpenAI     string
	XAI        string
	OpenRouter string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Anthropic:  anthropic.DefaultBaseURL,
		OpenAI:     openaicompat.OpenAIBaseURL,
		XAI:        openaicompat.XAIBaseURL,
		OpenRouter: openaicompat.OpenRouterBaseURL,
	}
}

// WithDefaults fills any unset base URL with the public endpoint.
func (e Endpoints) WithDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.Anthropic == "" {
		e.Anthropic = d.Anthropic
	}
	if e.OpenAI == "" {
		e.OpenAI = d.OpenAI
	}
	if e.XAI == "" {
		e.XAI = d.XAI
	}
	if e.OpenRouter == "" {
		e.OpenRouter = d.OpenRouter
	}
	return e
}

// Factory builds one short-lived Adapter per request. The credential is
// a parameter, never a field of the factory, so keys cannot outlive or
// leak across requests; only the connection pool is shared.
type Factory struct {
	endpoints Endpoints
	client    *http.Client
}

func NewFactory(endpoints Endpoints, client *http.Client) *Factory {
	if client == nil {
		client = httputil.DefaultStreamingClient()
	}
	return &Factory{endpoints: endpoints.WithDefaults(), client: client}
}

// New returns the adapter for kind, configured with the caller's key.
// ProviderUnknown (or anything else outside the closed set) is
// domain.ErrUnknownProvider.
func (f *Factory) New(kind domain.ProviderKind, apiKey string) (Adapter, error) {
	switch kind {
	case domain.ProviderAnthropic:
		return anthropic.New(apiKey, f.endpoints.Anthropic, f.client), nil
	case domain.ProviderOpenAI:
		return openaicompat.NewOpenAI(apiKey, f.endpoints.OpenAI, f.client), nil
	case domain.ProviderXAI:
		return openaicompat.NewXAI(apiKey, f.endpoints.XAI, f.client), nil
	case domain.ProviderOpenRouter:
		return openaicompat.NewOpenRouter(apiKey, f.endpoints.OpenRouter, f.client), nil
	}
	return nil, domain.ErrUnknownProvider
}
