// Package generation holds generation-service implementations that do not
// talk to an external API: a canned mock for tests and keyless development.
package generation

import (
	"context"
	"sync"

	"narad-backend/application/ports"
)

// MockService is a scriptable GenerationService for tests and local runs
// without an API key. By default it echoes a fixed completion; tests can
// swap in a response, an error, or flip availability.
type MockService struct {
	mu        sync.Mutex
	available bool
	response  string
	err       error
	calls     int
	lastInput string
}

// NewMockService creates an available mock returning a fixed completion.
func NewMockService() *MockService {
	return &MockService{
		available: true,
		response:  "Believe it or not, every stone here has a story. Ask me about the mythology, the history, or the legends that locals still whisper about.",
	}
}

// SetResponse scripts the next completions.
func (m *MockService) SetResponse(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = text
	m.err = nil
}

// SetError scripts a failure for subsequent calls.
func (m *MockService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetAvailable flips the configured/available flag.
func (m *MockService) SetAvailable(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = v
}

// Calls reports how many times Generate ran.
func (m *MockService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastPrompt returns the prompt of the most recent call.
func (m *MockService) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastInput
}

// IsAvailable implements ports.GenerationService.
func (m *MockService) IsAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// Generate implements ports.GenerationService.
func (m *MockService) Generate(ctx context.Context, prompt string, _ ports.GenerationParams) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ports.NewGenerationError(ports.GenerationTimeout, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastInput = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}
