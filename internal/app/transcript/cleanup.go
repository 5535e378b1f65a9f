// Package transcript post-processes raw model output: it strips
// boilerplate the model sometimes prepends, collapses single-speaker
// labels, and derives filenames from the transcript text.
package transcript

import "strings"

// boilerplate are phrases the model occasionally emits despite the prompt
// forbidding headers. They are removed wherever they appear.
var boilerplate = []string{
	"# Transcription\n\n",
	"Okay, here is the transcription:\n",
	"Here's the transcription:\n",
}

// Clean removes known boilerplate phrases and trims surrounding whitespace.
func Clean(raw string) string {
	text := raw
	for _, phrase := range boilerplate {
		text = strings.ReplaceAll(text, phrase, "")
	}
	return strings.TrimSpace(text)
}
