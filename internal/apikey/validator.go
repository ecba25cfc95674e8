// Package apikey confirms that a caller-supplied credential is accepted
// by its provider, using the cheapest authenticated round trip each
// vendor offers. Results are reported, never thrown: whatever goes wrong
// upstream comes back as a ValidationResult with the error text.
package apikey

import (
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/closedai/healthgate/internal/domain"
	"github.com/closedai/healthgate/internal/httputil"
	"github.com/closedai/healthgate/internal/provider"
	"github.com/closedai/healthgate/internal/provider/anthropic"
)

const missingInputError = "missing provider or apiKey"

type Validator struct {
	endpoints provider.Endpoints
	client    *http.Client
}

func NewValidator(endpoints provider.Endpoints, client *http.Client) *Validator {
	if client == nil {
		client = httputil.DefaultClient()
	}
	return &Validator{endpoints: endpoints.WithDefaults(), client: client}
}

// Validate performs one authenticated call against the provider.
// Preconditions (a provider in the closed set, a non-empty key) fail
// immediately with a fixed message before any network traffic.
func (v *Validator) Validate(ctx context.Context, kind domain.ProviderKind, apiKey string) domain.ValidationResult {
	if kind == domain.ProviderUnknown || kind == "" || apiKey == "" {
		return domain.ValidationResult{Valid: false, Error: missingInputError}
	}

	var err error
	switch kind {
	case domain.ProviderAnthropic:
		// A 1-max-token message is the cheapest call Anthropic has;
		// they expose no key-scoped listing endpoint.
		err = anthropic.New(apiKey, v.endpoints.Anthropic, v.client).CheckKey(ctx)
	case domain.ProviderOpenAI:
		err = v.listModels(ctx, apiKey, v.endpoints.OpenAI)
	case domain.ProviderXAI:
		err = v.listModels(ctx, apiKey, v.endpoints.XAI)
	case domain.ProviderOpenRouter:
		err = v.listModels(ctx, apiKey, v.endpoints.OpenRouter)
	default:
		return domain.ValidationResult{Valid: false, Error: missingInputError}
	}

	if err != nil {
		return domain.ValidationResult{Valid: false, Error: err.Error()}
	}
	return domain.ValidationResult{Valid: true}
}

// listModels proves the key against an OpenAI-compatible models
// endpoint. The go-openai client speaks all three vendors once pointed
// at their base URL.
func (v *Validator) listModels(ctx context.Context, apiKey, baseURL string) error {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = v.client

	_, err := openai.NewClientWithConfig(cfg).ListModels(ctx)
	return err
}
