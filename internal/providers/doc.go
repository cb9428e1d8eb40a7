// Package providers implements the client for the local inference service.
//
// The only backend is Ollama (or any server exposing the OpenAI-compatible
// chat completions API, such as LM Studio) reached at a conventional local
// endpoint. A single call is made per invocation; failures are classified
// as unavailable or timed out and surface directly to the CLI layer without
// retries.
//
// The HTTP client and base URL are injectable so tests can redirect calls
// to local httptest servers.
package providers
