package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultOllamaURL = "http://localhost:11434"

// defaultTimeout bounds one inference call. Local models can be slow on
// first load, so this is generous.
const defaultTimeout = 300 * time.Second

// Ollama implements the Consultant interface for Ollama and LM Studio
// (OpenAI-compatible API).
type Ollama struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOllama creates a new Ollama client for the given model. The endpoint
// comes from OLLAMA_HOST when set, otherwise localhost:11434. A zero timeout
// selects the default.
func NewOllama(model string, timeout time.Duration) *Ollama {
	baseURL := os.Getenv("OLLAMA_HOST")
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}

	// Normalize URL: strip trailing /, /v1, /v1/chat/completions
	baseURL = strings.TrimRight(baseURL, "/")
	baseURL = strings.TrimSuffix(baseURL, "/v1/chat/completions")
	baseURL = strings.TrimSuffix(baseURL, "/v1")

	// Optional API key for servers that require it (e.g., LM Studio)
	apiKey := os.Getenv("CONSULT_OLLAMA_API_KEY")

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Ollama{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL + "/v1/chat/completions",
		client:  &http.Client{Timeout: timeout},
	}
}

func (o *Ollama) Name() string { return "ollama" }

// Model returns the model name the client was created with.
func (o *Ollama) Model() string { return o.model }

// Consult sends the request and blocks until the model responds, the client
// timeout elapses, or ctx is done. No retry is attempted; a failed call
// surfaces to the caller as an unavailable or timeout error.
func (o *Ollama) Consult(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	messages := []openaiMessage{
		{Role: "system", Content: req.SystemPrompt},
		{Role: "user", Content: req.UserPrompt},
	}

	body := openaiRequest{
		Model:     o.model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if req.Temperature > 0 {
		body.Temperature = &req.Temperature
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return Response{}, classifyTransportError(o.baseURL, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != 200 {
		return Response{}, fmt.Errorf("inference API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result openaiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, fmt.Errorf("parsing response: %w", err)
	}

	if len(result.Choices) == 0 {
		return Response{}, fmt.Errorf("no choices in response")
	}
	if result.Choices[0].Message.Content == "" {
		return Response{}, fmt.Errorf("empty text content in API response")
	}

	return Response{
		Content:    result.Choices[0].Message.Content,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}

// ListModels queries the Ollama native tags API for locally installed
// models. Servers that only implement the OpenAI surface (LM Studio) may
// not support it.
func (o *Ollama) ListModels(ctx context.Context) ([]string, error) {
	base := strings.TrimSuffix(o.baseURL, "/v1/chat/completions")

	req, err := http.NewRequestWithContext(ctx, "GET", base+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("listing models: status %d", resp.StatusCode)
	}

	var result struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing model list: %w", err)
	}

	names := make([]string, 0, len(result.Models))
	for _, m := range result.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// classifyTransportError maps a failed HTTP round trip to a timeout or
// unavailable error.
func classifyTransportError(endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &timeoutError{cause: err}
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return &timeoutError{cause: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &timeoutError{cause: err}
	}
	return &unavailableError{endpoint: endpoint, cause: err}
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}

type openaiUsage struct {
	TotalTokens int `json:"total_tokens"`
}
