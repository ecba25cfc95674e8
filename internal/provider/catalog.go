package provider

import "github.com/closedai/healthgate/internal/domain"

// Catalog is the static model list served by GET /api/models. It is a
// curated selection, not a live listing: unknown models are still passed
// through to the upstream, which owns the final word on existence.
var catalog = []domain.ModelInfo{
	// Anthropic
	{ID: "claude-3-5-sonnet-20241022", Provider: "anthropic", Name: "Claude 3.5 Sonnet"},
	{ID: "claude-3-5-haiku-20241022", Provider: "anthropic", Name: "Claude 3.5 Haiku"},
	{ID: "claude-3-opus-20240229", Provider: "anthropic", Name: "Claude 3 Opus"},
	// OpenAI
	{ID: "gpt-4o", Provider: "openai", Name: "GPT-4o"},
	{ID: "gpt-4o-mini", Provider: "openai", Name: "GPT-4o Mini"},
	{ID: "gpt-4-turbo", Provider: "openai", Name: "GPT-4 Turbo"},
	// xAI (OpenAI-compatible API)
	{ID: "grok-2-1212", Provider: "xai", Name: "Grok 2"},
	// OpenRouter
	{ID: "meta-llama/llama-3.1-405b-instruct", Provider: "openrouter", Name: "Llama 3.1 405B"},
	{ID: "meta-llama/llama-3.1-70b-instruct", Provider: "openrouter", Name: "Llama 3.1 70B"},
	{ID: "deepseek/deepseek-chat", Provider: "openrouter", Name: "DeepSeek Chat"},
}

// Catalog returns a copy so callers cannot mutate the shared table.
func Catalog() []domain.ModelInfo {
	out := make([]domain.ModelInfo, len(catalog))
	copy(out, catalog)
	return out
}
