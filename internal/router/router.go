// Package router maps model identifiers to upstream providers. The
// routing table is an ordered list of (predicate, provider) pairs built
// once at init and read-only afterwards, so concurrent lookups need no
// synchronization.
package router

import (
	"strings"

	"github.com/closedai/healthgate/internal/domain"
)

type rule struct {
	match func(model string) bool
	kind  domain.ProviderKind
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(model string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(model, p) {
				return true
			}
		}
		return false
	}
}

// First match wins. Order matters: the openrouter rule ("vendor/model"
// catalog ids) must come last so that a hypothetical "gpt-x/y" still
// routes to openai.
var rules = []rule{
	{hasPrefix("claude"), domain.ProviderAnthropic},
	{hasPrefix("gpt", "o1"), domain.ProviderOpenAI},
	{hasPrefix("grok"), domain.ProviderXAI},
	{func(model string) bool { return strings.Contains(model, "/") }, domain.ProviderOpenRouter},
}

// Resolve returns the provider responsible for a model id, or
// ProviderUnknown when no rule matches. Unknown is a valid result, not
// an error; callers decide how to surface it. Matching is case-sensitive
// and makes no claim that the model exists upstream.
func Resolve(model string) domain.ProviderKind {
	for _, r := range rules {
		if r.match(model) {
			return r.kind
		}
	}
	return domain.ProviderUnknown
}
