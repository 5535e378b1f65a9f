package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesKindAndMessage(t *testing.T) {
	err := New(KindAuth, "API key rejected")

	assert.Equal(t, KindAuth, err.Kind)
	assert.Equal(t, "API key rejected", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(cause, KindIO, "read audio file")

	require.Error(t, err)
	assert.Equal(t, "read audio file: file does not exist", err.Error())
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.True(t, IsIO(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindIO, "read audio file"))
	assert.Nil(t, Wrapf(nil, KindIO, "read %s", "audio"))
}

func TestKindOfUnwrapsNestedErrors(t *testing.T) {
	inner := NewTransportError("connection refused")
	outer := fmt.Errorf("transcription failed: %w", inner)

	assert.Equal(t, KindTransport, KindOf(outer))
	assert.True(t, IsTransport(outer))
	assert.False(t, IsAuth(outer))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(stderrors.New("boom")))
}

func TestNewUnsupportedFormatErrorMessage(t *testing.T) {
	err := NewUnsupportedFormatError("talk.txt", []string{".mp3", ".wav"})

	assert.True(t, IsUnsupportedFormat(err))
	assert.Contains(t, err.Error(), `"talk.txt"`)
	assert.Contains(t, err.Error(), ".mp3, .wav")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"config", NewConfigError("missing key"), 2},
		{"unsupported format", NewUnsupportedFormatError("a.txt", nil), 3},
		{"auth", NewAuthError("rejected"), 4},
		{"transport", NewTransportError("timeout"), 5},
		{"content blocked", NewContentBlockedError("safety"), 6},
		{"io", NewIOError("write failed"), 7},
		{"wrapped io", fmt.Errorf("outer: %w", NewIOError("write failed")), 7},
		{"plain error", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
