// Package llm is a thin client for chat-completion-compatible endpoints
// (OpenAI wire format, as served by Groq and friends).
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUpstream covers transport failures, non-2xx replies and empty
// completion envelopes. A single failed call is terminal; no retries.
var ErrUpstream = errors.New("completion endpoint unavailable")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

func NewClient(endpoint, apiKey, model string, temperature float64, maxTokens int, timeout time.Duration) *Client {
	if model == "" {
		model = "llama3-70b-8192"
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint:    strings.TrimSuffix(endpoint, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, messages []Message, stream bool) (*http.Response, error) {
	reqBody := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"temperature": c.temperature,
	}
	if stream {
		reqBody["stream"] = true
	} else {
		reqBody["max_tokens"] = c.maxTokens
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}
	return resp, nil
}

// Complete sends the message history and returns the first choice's
// content as raw text.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	resp, err := c.do(ctx, messages, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var envelope struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: malformed payload: %v", ErrUpstream, err)
	}
	if len(envelope.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in reply", ErrUpstream)
	}

	return envelope.Choices[0].Message.Content, nil
}

// Stream sends the message history with streaming enabled and forwards
// each content delta to sink in arrival order. The stream ends at the
// [DONE] sentinel or end of body; an abnormally terminated upstream
// stream is not an error, whatever arrived has already been forwarded.
// A sink error stops forwarding and is returned so the caller can treat
// the client as gone.
func (c *Client) Stream(ctx context.Context, messages []Message, sink func(chunk string) error) error {
	resp, err := c.do(ctx, messages, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return nil
		}

		var frame struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(payload), &frame); err != nil {
			continue
		}
		if len(frame.Choices) == 0 || frame.Choices[0].Delta.Content == "" {
			continue
		}
		if err := sink(frame.Choices[0].Delta.Content); err != nil {
			return err
		}
	}

	// Partial output is acceptable when the upstream cuts out mid-message.
	return nil
}
