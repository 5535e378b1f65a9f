package transcript

import (
	"fmt"
	"strings"
)

// maxSpeakers bounds the label scan; the prompt asks for "Speaker 1:",
// "Speaker 2:", ... and more than nine distinct voices in one recording
// is not a case worth supporting.
const maxSpeakers = 9

// CountSpeakers reports how many distinct "Speaker N:" labels appear in
// the text. Both plain and bold ("**Speaker N:**") labels count.
func CountSpeakers(text string) int {
	seen := make(map[int]bool)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Speaker ") && !strings.HasPrefix(trimmed, "**Speaker ") {
			continue
		}
		for i := 1; i <= maxSpeakers; i++ {
			if strings.Contains(line, fmt.Sprintf("Speaker %d:", i)) ||
				strings.Contains(line, fmt.Sprintf("**Speaker %d:**", i)) {
				seen[i] = true
			}
		}
	}
	return len(seen)
}

// StripSingleSpeaker removes the speaker labels when exactly one speaker
// was detected; a monologue does not need them. Multi-speaker transcripts
// are returned unchanged.
func StripSingleSpeaker(text string) string {
	if CountSpeakers(text) != 1 {
		return text
	}
	out := strings.ReplaceAll(text, "**Speaker 1:**", "")
	out = strings.ReplaceAll(out, "Speaker 1:", "")
	return strings.TrimSpace(out)
}
