package providers

import "context"

// Request contains the prompt sent to the inference service.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Response contains the raw text returned by the inference service. The
// content is untrusted free text; callers parse it on a best-effort basis.
type Response struct {
	Content    string
	TokensUsed int
}

// Consultant is the inference client abstraction. The CLI uses the Ollama
// implementation; tests substitute a Fake.
type Consultant interface {
	Consult(ctx context.Context, req Request) (Response, error)
	Name() string
}
