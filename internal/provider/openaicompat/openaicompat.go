// Package openaicompat adapts the unified chat protocol to the OpenAI
// chat-completions wire format. OpenAI, xAI and OpenRouter all speak
// this format; they differ only in base URL, auth header, and the
// attribution headers OpenRouter asks clients to send, so one adapter
// serves all three.
package openaicompat

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
	OpenAIBaseURL     = "https://api.openai.com/v1"
	XAIBaseURL        = "https://api.x.ai/v1"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// A single data: line can exceed bufio.Scanner's 64KB default when
	// the upstream packs a large delta into one event.
	maxScanTokenSize = 1024 * 1024
)

type Adapter struct {
	kind    domain.ProviderKind
	apiKey  string
	baseURL string
	headers map[string]string
	client  *http.Client
}

func NewOpenAI(apiKey, baseURL string, client *http.Client) *Adapter {
	return newAdapter(domain.ProviderOpenAI, apiKey, baseURL, OpenAIBaseURL, nil, client)
}

func NewXAI(apiKey, baseURL string, client *http.Client) *Adapter {
	return newAdapter(domain.ProviderXAI, apiKey, baseURL, XAIBaseURL, nil, client)
}

func NewOpenRouter(apiKey, baseURL string, client *http.Client) *Adapter {
	headers := map[string]string{
		"HTTP-Referer": "https://closedai.app",
		"X-Title":      "closedAI",
	}
	return newAdapter(domain.ProviderOpenRouter, apiKey, baseURL, OpenRouterBaseURL, headers, client)
}

func newAdapter(kind domain.ProviderKind, apiKey, baseURL, defaultBaseURL string, headers map[string]string, client *http.Client) *Adapter {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Adapter{
		kind:    kind,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		client:  client,
	}
}

func (a *Adapter) Kind() domain.ProviderKind {
	return a.kind
}

// StreamChat opens a streaming chat-completions call. Empty deltas are
// skipped rather than forwarded as empty content events. The terminal
// done event carries no usage: these vendors do not report token counts
// on streaming chunks.
func (a *Adapter) StreamChat(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamEvent, <-chan error) {
	events := make(chan domain.StreamEvent)
	errs := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errs)

		resp, err := a.post(ctx, toChatRequest(req, true))
		if err != nil {
			errs <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			errs <- a.readAPIError(resp)
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var chunk streamChunk
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}

			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				continue
			}

			select {
			case events <- domain.StreamEvent{Type: domain.EventContent, Content: chunk.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("read %s stream: %w", a.kind, err)
			return
		}

		select {
		case events <- domain.StreamEvent{Type: domain.EventDone}:
		case <-ctx.Done():
		}
	}()

	return events, errs
}

// CompleteChat issues a single non-streaming chat-completions call.
func (a *Adapter) CompleteChat(ctx context.Context, req domain.ChatRequest) (string, error) {
	resp, err := a.post(ctx, toChatRequest(req, false))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", a.readAPIError(resp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", nil
	}
	return chatResp.Choices[0].Message.Content, nil
}

// CheckKey lists models, the cheapest authenticated call these vendors
// offer.
func (a *Adapter) CheckKey(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	a.setHeaders(httpReq)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return a.readAPIError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (a *Adapter) post(ctx context.Context, body chatRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	a.setHeaders(httpReq)
	if body.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

func (a *Adapter) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	for k, v := range a.headers {
		req.Header.Set(k, v)
	}
}

type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []domain.Message `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
	Stream      bool             `json:"stream,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message      domain.Message `json:"message"`
		FinishReason string         `json:"finish_reason"`
	} `json:"choices"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// toChatRequest builds the provider request. A system prompt becomes a
// synthetic leading system message; the caller's messages follow in
// their original order.
func toChatRequest(req domain.ChatRequest, stream bool) chatRequest {
	messages := req.Messages
	if req.SystemPrompt != "" {
		messages = make([]domain.Message, 0, len(req.Messages)+1)
		messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: req.SystemPrompt})
		messages = append(messages, req.Messages...)
	}

	return chatRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens(),
		Temperature: req.Temperature(),
		Stream:      stream,
	}
}

func (a *Adapter) readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%s: %s", a.kind, apiErr.Error.Message)
	}
	return fmt.Errorf("%s: status=%d body=%s", a.kind, resp.StatusCode, string(body))
}
