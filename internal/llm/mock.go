package llm

import (
	"context"
	"sync"
)

// MockProvider is a canned-response provider for tests and local
// debugging. It records every request it receives.
type MockProvider struct {
	mu       sync.Mutex
	Response string
	Err      error
	Calls    []*CompletionRequest
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Ping(_ context.Context) error {
	return m.Err
}

func (m *MockProvider) Complete(_ context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return &CompletionResponse{
		Content:    m.Response,
		Model:      req.Model,
		StopReason: "end_turn",
	}, nil
}

// CallCount returns how many completions were requested.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
