package llm

import (
	"context"
)

// Provider is the interface all text-generation providers implement.
// Calls are single-turn: one system prompt, one user message, one
// plain-text completion back. No streaming.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a completion request and returns the full response
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the model
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content    string
	Model      string
	StopReason string
	Usage      Usage
}

// Usage tracks token usage
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// NewRequest creates a completion request with the defaults used for
// document generation.
func NewRequest(model, system, user string) *CompletionRequest {
	return &CompletionRequest{
		Model:       model,
		System:      system,
		User:        user,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
