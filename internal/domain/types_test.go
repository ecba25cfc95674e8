package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestChatRequestValidate(t *testing.T) {
	valid := ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Model:    "gpt-4o",
		APIKey:   "sk-test",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}

	tests := []struct {
		name string
		req  ChatRequest
	}{
		{"no messages", ChatRequest{Model: "gpt-4o", APIKey: "sk-test"}},
		{"no model", ChatRequest{Messages: valid.Messages, APIKey: "sk-test"}},
		{"no apiKey", ChatRequest{Messages: valid.Messages, Model: "gpt-4o"}},
		{"empty", ChatRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("got %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestChatRequestDefaults(t *testing.T) {
	req := ChatRequest{}
	if got := req.Temperature(); got != DefaultTemperature {
		t.Errorf("Temperature() = %v, want %v", got, DefaultTemperature)
	}
	if got := req.MaxTokens(); got != DefaultMaxTokens {
		t.Errorf("MaxTokens() = %v, want %v", got, DefaultMaxTokens)
	}

	req.Config = &GenerationConfig{}
	if got := req.Temperature(); got != DefaultTemperature {
		t.Errorf("empty config: Temperature() = %v, want default", got)
	}
}

func TestChatRequestExplicitZeroHonored(t *testing.T) {
	// An explicit zero in the request body must not be replaced by the
	// default.
	var body = []byte(`{
		"messages": [{"role":"user","content":"hi"}],
		"model": "gpt-4o",
		"apiKey": "sk-test",
		"config": {"temperature": 0, "maxTokens": 0}
	}`)

	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatal(err)
	}
	if got := req.Temperature(); got != 0 {
		t.Errorf("explicit zero temperature resolved to %v", got)
	}
	if got := req.MaxTokens(); got != 0 {
		t.Errorf("explicit zero maxTokens resolved to %v", got)
	}
}

func TestChatRequestPartialConfig(t *testing.T) {
	var body = []byte(`{
		"messages": [{"role":"user","content":"hi"}],
		"model": "gpt-4o",
		"apiKey": "sk-test",
		"config": {"maxTokens": 256}
	}`)

	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatal(err)
	}
	if got := req.MaxTokens(); got != 256 {
		t.Errorf("MaxTokens() = %v, want 256", got)
	}
	if got := req.Temperature(); got != DefaultTemperature {
		t.Errorf("absent temperature resolved to %v, want default", got)
	}
}

func TestParseProviderKind(t *testing.T) {
	tests := []struct {
		in   string
		want ProviderKind
	}{
		{"anthropic", ProviderAnthropic},
		{"openai", ProviderOpenAI},
		{"xai", ProviderXAI},
		{"openrouter", ProviderOpenRouter},
		{"unknown", ProviderUnknown},
		{"", ProviderUnknown},
		{"cohere", ProviderUnknown},
		{"Anthropic", ProviderUnknown},
	}
	for _, tt := range tests {
		if got := ParseProviderKind(tt.in); got != tt.want {
			t.Errorf("ParseProviderKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStreamEventJSON(t *testing.T) {
	data, err := json.Marshal(StreamEvent{Type: EventContent, Content: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"content","content":"hello"}` {
		t.Errorf("content event = %s", data)
	}

	data, err = json.Marshal(StreamEvent{
		Type:  EventDone,
		Usage: &Usage{PromptTokens: 10, CompletionTokens: 20},
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"done","usage":{"promptTokens":10,"completionTokens":20}}` {
		t.Errorf("done event = %s", data)
	}

	// A done event without usage carries no usage key at all.
	data, _ = json.Marshal(StreamEvent{Type: EventDone})
	if string(data) != `{"type":"done"}` {
		t.Errorf("bare done event = %s", data)
	}
}
