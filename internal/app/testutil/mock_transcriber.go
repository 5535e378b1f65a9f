package testutil

import (
	"context"
	"sync"

	"gemini-transcribe/internal/app/api"
	"gemini-transcribe/internal/app/model"
)

// MockTranscriber is a configurable in-memory implementation of the
// api.Transcriber interface. It records every request it receives and
// returns canned results, optionally keyed by audio path.
type MockTranscriber struct {
	mu sync.RWMutex

	// DefaultText is returned when no per-file override matches.
	DefaultText string
	// DefaultError, when set, fails every call without a per-file override.
	DefaultError error
	// ModelUsed is echoed back in every successful result.
	ModelUsed string

	textByPath  map[string]string
	errorByPath map[string]error

	calls []*model.TranscriptionRequest
}

// NewMockTranscriber creates a MockTranscriber with sensible defaults.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultText: "This is a mock transcription result.",
		ModelUsed:   "models/mock",
		textByPath:  make(map[string]string),
		errorByPath: make(map[string]error),
	}
}

// Transcribe implements the api.Transcriber interface.
func (m *MockTranscriber) Transcribe(_ context.Context, request *model.TranscriptionRequest) (*model.TranscriptionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, request)

	if err, exists := m.errorByPath[request.AudioPath]; exists {
		return nil, err
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	text := m.DefaultText
	if override, exists := m.textByPath[request.AudioPath]; exists {
		text = override
	}
	return &model.TranscriptionResult{
		Text:      text,
		ModelUsed: m.ModelUsed,
	}, nil
}

// WithDefaultText sets the text returned for calls without an override.
func (m *MockTranscriber) WithDefaultText(text string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultText = text
	return m
}

// WithDefaultError makes every call without an override fail with err.
func (m *MockTranscriber) WithDefaultError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultError = err
	return m
}

// SetTextForFile overrides the returned text for a specific audio path.
func (m *MockTranscriber) SetTextForFile(audioPath, text string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textByPath[audioPath] = text
	return m
}

// SetErrorForFile makes calls for a specific audio path fail with err.
func (m *MockTranscriber) SetErrorForFile(audioPath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorByPath[audioPath] = err
	return m
}

// CallCount returns how many times Transcribe was invoked.
func (m *MockTranscriber) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// LastRequest returns the most recent request, or nil if none were made.
func (m *MockTranscriber) LastRequest() *model.TranscriptionRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}

// WasCalledWith reports whether any request carried the given audio path.
func (m *MockTranscriber) WasCalledWith(audioPath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, call := range m.calls {
		if call.AudioPath == audioPath {
			return true
		}
	}
	return false
}

// Reset clears recorded calls and per-file overrides.
func (m *MockTranscriber) Reset() *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.textByPath = make(map[string]string)
	m.errorByPath = make(map[string]error)
	m.DefaultError = nil
	return m
}

// Interface compliance check
var _ api.Transcriber = (*MockTranscriber)(nil)
