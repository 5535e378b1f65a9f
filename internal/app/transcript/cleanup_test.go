package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "markdown header stripped",
			raw:  "# Transcription\n\nHello world",
			want: "Hello world",
		},
		{
			name: "okay preamble stripped",
			raw:  "Okay, here is the transcription:\nHello world",
			want: "Hello world",
		},
		{
			name: "heres preamble stripped",
			raw:  "Here's the transcription:\nHello world",
			want: "Hello world",
		},
		{
			name: "boilerplate removed mid-text",
			raw:  "Hello # Transcription\n\nworld",
			want: "Hello world",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  Hello world  \n",
			want: "Hello world",
		},
		{
			name: "plain text unchanged",
			raw:  "Just a plain transcript.",
			want: "Just a plain transcript.",
		},
		{
			name: "boilerplate only leaves empty string",
			raw:  "Here's the transcription:\n",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw))
		})
	}
}
