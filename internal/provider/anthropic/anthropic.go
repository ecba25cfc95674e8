// Package anthropic adapts the unified chat protocol to the Anthropic
// Messages API.
package anthropic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/closedai/healthgate/internal/domain"
)

const (
	DefaultBaseURL   = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"

	// Cheapest possible authenticated call for key validation.
	keyCheckModel = "claude-3-5-haiku-20241022"

	// A single data: line can exceed bufio.Scanner's 64KB default when
	// the upstream packs a large delta into one event.
	maxScanTokenSize = 1024 * 1024
)

type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New builds an adapter scoped to one request's credential.
func New(apiKey, baseURL string, client *http.Client) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Adapter{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (a *Adapter) Kind() domain.ProviderKind {
	return domain.ProviderAnthropic
}

// StreamChat opens a streaming Messages call and emits content events
// for text deltas only; every other event kind (tool use, block
// boundaries, pings) is ignored for content purposes. The terminal done
// event carries the usage counts the stream reported.
func (a *Adapter) StreamChat(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamEvent, <-chan error) {
	events := make(chan domain.StreamEvent)
	errs := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errs)

		resp, err := a.post(ctx, toMessagesRequest(req, true))
		if err != nil {
			errs <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			errs <- readAPIError(resp)
			return
		}

		usage := domain.Usage{}
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}

			var event streamEvent
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
				continue
			}

			switch event.Type {
			case "message_start":
				if event.Message != nil {
					usage.PromptTokens = event.Message.Usage.InputTokens
				}
			case "content_block_delta":
				if event.Delta == nil || event.Delta.Type != "text_delta" {
					continue
				}
				select {
				case events <- domain.StreamEvent{Type: domain.EventContent, Content: event.Delta.Text}:
				case <-ctx.Done():
					return
				}
			case "message_delta":
				if event.Usage != nil {
					usage.CompletionTokens = event.Usage.OutputTokens
				}
			case "error":
				errs <- fmt.Errorf("anthropic stream: %s", event.errorMessage())
				return
			case "message_stop":
				select {
				case events <- domain.StreamEvent{Type: domain.EventDone, Usage: &usage}:
				case <-ctx.Done():
				}
				return
			}
		}

		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("read anthropic stream: %w", err)
			return
		}

		// Stream ended without message_stop; still close it out.
		select {
		case events <- domain.StreamEvent{Type: domain.EventDone, Usage: &usage}:
		case <-ctx.Done():
		}
	}()

	return events, errs
}

// CompleteChat issues a single non-streaming Messages call.
func (a *Adapter) CompleteChat(ctx context.Context, req domain.ChatRequest) (string, error) {
	resp, err := a.post(ctx, toMessagesRequest(req, false))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readAPIError(resp)
	}

	var msg messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(msg.Content) == 0 || msg.Content[0].Type != "text" {
		return "", nil
	}
	return msg.Content[0].Text, nil
}

// CheckKey proves the credential works with a 1-max-token request and a
// trivial prompt.
func (a *Adapter) CheckKey(ctx context.Context) error {
	resp, err := a.post(ctx, messagesRequest{
		Model:     keyCheckModel,
		MaxTokens: 1,
		Messages:  []message{{Role: domain.RoleUser, Content: "hi"}},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (a *Adapter) post(ctx context.Context, body messagesRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	if body.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

type messagesRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	ID         string         `json:"id"`
	Role       string         `json:"role"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      usage          `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type streamEvent struct {
	Type    string       `json:"type"`
	Delta   *streamDelta `json:"delta,omitempty"`
	Message *struct {
		Usage usage `json:"usage"`
	} `json:"message,omitempty"`
	Usage *struct {
		OutputTokens int `json:"output_tokens"`
	} `json:"usage,omitempty"`
	Error *apiError `json:"error,omitempty"`
}

func (e streamEvent) errorMessage() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return "unknown error"
}

type streamDelta struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

// toMessagesRequest builds the provider request. The system prompt goes
// in the top-level field, never into the message list; message roles are
// forwarded untouched, so a system-role entry in the list stays the
// caller's mistake.
func toMessagesRequest(req domain.ChatRequest, stream bool) messagesRequest {
	messages := make([]message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, message{Role: m.Role, Content: m.Content})
	}

	return messagesRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens(),
		Temperature: req.Temperature(),
		System:      req.SystemPrompt,
		Stream:      stream,
	}
}

func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("anthropic: %s (%s)", apiErr.Error.Message, apiErr.Error.Type)
	}
	return fmt.Errorf("anthropic: status=%d body=%s", resp.StatusCode, string(body))
}
