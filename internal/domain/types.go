package domain

// ProviderKind identifies an upstream LLM vendor.
type ProviderKind string

const (
	ProviderAnthropic  ProviderKind = "anthropic"
	ProviderOpenAI     ProviderKind = "openai"
	ProviderXAI        ProviderKind = "xai"
	ProviderOpenRouter ProviderKind = "openrouter"
	ProviderUnknown    ProviderKind = "unknown"
)

// ParseProviderKind maps a provider name from a request body to a
// ProviderKind. Anything outside the closed set is Unknown.
func ParseProviderKind(s string) ProviderKind {
	switch ProviderKind(s) {
	case ProviderAnthropic, ProviderOpenAI, ProviderXAI, ProviderOpenRouter:
		return ProviderKind(s)
	}
	return ProviderUnknown
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation. Order is meaningful and
// preserved end-to-end.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig carries optional sampling parameters. Pointer fields
// distinguish "absent" from an explicit zero: defaults apply only when
// the field is missing from the request, never when the caller sent 0.
type GenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"maxTokens,omitempty"`
}

const (
	DefaultTemperature = 1.0
	DefaultMaxTokens   = 4096
)

// ChatRequest is the unified chat request accepted by the gateway. The
// API key is the caller's own credential and lives no longer than the
// request that carried it.
type ChatRequest struct {
	Messages     []Message         `json:"messages"`
	Model        string            `json:"model"`
	APIKey       string            `json:"apiKey"`
	SystemPrompt string            `json:"systemPrompt,omitempty"`
	Config       *GenerationConfig `json:"config,omitempty"`
}

// Validate checks the fields the gateway requires before any adapter is
// invoked.
func (r *ChatRequest) Validate() error {
	if len(r.Messages) == 0 || r.Model == "" || r.APIKey == "" {
		return ErrInvalidRequest
	}
	return nil
}

// Temperature resolves the effective sampling temperature.
func (r *ChatRequest) Temperature() float64 {
	if r.Config != nil && r.Config.Temperature != nil {
		return *r.Config.Temperature
	}
	return DefaultTemperature
}

// MaxTokens resolves the effective completion token limit.
func (r *ChatRequest) MaxTokens() int {
	if r.Config != nil && r.Config.MaxTokens != nil {
		return *r.Config.MaxTokens
	}
	return DefaultMaxTokens
}

// StreamEvent types. Every streaming response is a sequence of zero or
// more content events closed by exactly one done or error event.
const (
	EventContent = "content"
	EventDone    = "done"
	EventError   = "error"
)

// StreamEvent is one unit of the unified output protocol.
type StreamEvent struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Usage   *Usage `json:"usage,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Usage reports token counts when the upstream exposes them.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
}

// ValidationResult is the outcome of a key validation round trip.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ModelInfo is one entry of the static model catalog.
type ModelInfo struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Name     string `json:"name"`
}
