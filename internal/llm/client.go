// Package llm is the document-extraction provider boundary: an
// OpenRouter-compatible client that turns EPD text, drawing text and
// free-form project notes into the structured records the screening core
// consumes. The core never imports this package; extraction results flow
// in as plain schema values.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client is the HTTP client for the extraction provider.
type Client struct {
	config *Config
	http   *http.Client
}

// NewClient creates a new extraction client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.SetDefaults()

	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// chatRequest is the OpenAI-compatible request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the OpenAI-compatible response body.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// extractionTemperature keeps extraction near-deterministic; the point is
// transcription, not generation.
const extractionTemperature = 0.1

// systemPrompt pins the provider to JSON output.
const systemPrompt = "You are a data extraction assistant designed to output JSON."

// GenerateStructured runs one extraction and parses the provider's JSON
// into T. When validate rejects the output, the validation error is fed
// back to the provider and the call retried up to MaxRetries times.
// Network and API failures are not retried; a malformed document will not
// get better by asking again, but a sloppy JSON rendering might.
func GenerateStructured[T any](
	client *Client,
	ctx context.Context,
	model string,
	prompt string,
	validate func(*T) error,
) (*T, error) {
	if model == "" {
		model = client.config.DefaultModel
	}

	originalPrompt := prompt
	var lastErr error

	for attempt := 1; attempt <= client.config.MaxRetries; attempt++ {
		slog.Info("extraction attempt",
			"attempt", attempt,
			"model", model,
			"prompt_length", len(prompt),
		)

		result, err := callProvider[T](client, ctx, model, prompt)
		if err != nil {
			lastErr = err
			if llmErr, ok := err.(*LLMError); ok {
				if llmErr.Type == ErrorTypeNetwork || llmErr.Type == ErrorTypeAPI {
					return nil, err
				}
			}
			// Parse errors: retry with feedback
			prompt = fmt.Sprintf("%s\n\nPREVIOUS ATTEMPT FAILED:\nError: %v\n\nReturn valid JSON matching the exact structure requested.", originalPrompt, err)
			continue
		}

		if validate != nil {
			if err := validate(result); err != nil {
				lastErr = NewValidationError(err.Error(), err)
				slog.Warn("extraction output validation failed",
					"attempt", attempt,
					"error", err.Error(),
				)
				prompt = fmt.Sprintf("%s\n\nPREVIOUS VALIDATION ERROR:\n%v\n\nFix the output to pass validation.", originalPrompt, err)
				continue
			}
		}

		slog.Info("extraction succeeded",
			"attempt", attempt,
			"model", model,
		)
		return result, nil
	}

	return nil, fmt.Errorf("validation failed after %d attempts: %w", client.config.MaxRetries, lastErr)
}

// callProvider makes a single HTTP call to the extraction provider and
// parses the JSON content into T.
func callProvider[T any](client *Client, ctx context.Context, model, prompt string) (*T, error) {
	content, err := client.Complete(ctx, model, prompt)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, NewParseError(content, err)
	}

	return &result, nil
}

// Complete performs one JSON-mode completion and returns the raw content
// with any markdown code fences stripped.
func (client *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = client.config.DefaultModel
	}

	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    extractionTemperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := client.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+client.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		slog.Error("extraction HTTP request failed",
			"error", err.Error(),
			"duration", duration,
		)
		return "", NewNetworkError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	slog.Info("extraction HTTP request completed",
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode != http.StatusOK {
		var errBody bytes.Buffer
		if _, err := errBody.ReadFrom(resp.Body); err != nil {
			slog.Warn("failed to read error response body", "error", err)
			return "", NewAPIError(resp.StatusCode, fmt.Sprintf("status %d (failed to read error body)", resp.StatusCode))
		}
		return "", NewAPIError(resp.StatusCode, errBody.String())
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", NewAPIError(0, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", NewAPIError(0, "no choices in response")
	}

	return cleanMarkdownCodeBlocks(chatResp.Choices[0].Message.Content), nil
}

// cleanMarkdownCodeBlocks removes markdown code block wrappers
// Some models wrap JSON in ```json...``` even in JSON mode.
func cleanMarkdownCodeBlocks(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSpace(content)
	}

	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	return content
}
