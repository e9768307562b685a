package ai

import (
	"context"
	"sync/atomic"
)

// MockClient is a Client for tests: fixed response or error, records calls.
type MockClient struct {
	Provider   string
	Response   string
	Err        error
	LastPrompt string

	calls atomic.Int64
}

func NewMock(provider string) *MockClient {
	return &MockClient{Provider: provider}
}

func (m *MockClient) Name() string {
	if m.Provider == "" {
		return "mock"
	}
	return m.Provider
}

func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.calls.Add(1)
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockClient) Ping(context.Context) error { return m.Err }

func (m *MockClient) Calls() int64 { return m.calls.Load() }
