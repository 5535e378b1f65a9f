package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"
)

const (
	// previewLength is how much of the transcript the slug is drawn from.
	previewLength = 100
	maxSlugWords  = 4
	maxSlugLength = 50
	fallbackSlug  = "transcript"

	// timestampLayout is the filename timestamp, e.g. 20250824_153012.
	timestampLayout = "20060102_150405"
)

var (
	speakerLabelPattern = regexp.MustCompile(`Speaker \d+:\s*`)
	wordPattern         = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)
	nonSlugPattern      = regexp.MustCompile(`[^\w\s-]`)
	separatorPattern    = regexp.MustCompile(`[-\s]+`)

	newlineReplacer = strings.NewReplacer("\n", " ", "\r", " ")
)

// stopWords are filler words excluded from slugs so the filename keeps
// the words that actually describe the content.
var stopWords = map[string]bool{
	"the": true, "and": true, "are": true, "you": true, "for": true,
	"not": true, "with": true, "have": true, "this": true, "that": true,
	"was": true, "but": true, "they": true, "been": true, "their": true,
	"said": true, "each": true, "which": true, "she": true, "how": true,
	"will": true, "can": true, "what": true, "when": true, "where": true,
	"who": true, "why": true, "would": true, "could": true, "should": true,
	"about": true, "from": true, "into": true, "over": true, "after": true,
	"before": true, "during": true, "through": true, "above": true,
	"below": true, "between": true, "among": true,
}

// Slug derives a short content descriptor from the opening of the
// transcript: up to four meaningful words, lowercased and joined with
// underscores, sanitized to filename-safe characters and capped at 50
// characters. Falls back to "transcript" when nothing usable remains.
func Slug(text string) string {
	preview := firstRunes(text, previewLength)
	preview = newlineReplacer.Replace(preview)
	preview = speakerLabelPattern.ReplaceAllString(preview, "")

	words := wordPattern.FindAllString(preview, -1)
	meaningful := lo.FilterMap(words, func(word string, _ int) (string, bool) {
		lower := strings.ToLower(word)
		return lower, !stopWords[lower]
	})

	var description string
	if len(meaningful) > 0 {
		if len(meaningful) > maxSlugWords {
			meaningful = meaningful[:maxSlugWords]
		}
		description = strings.Join(meaningful, "_")
	} else {
		// Nothing meaningful in the preview; use the first few words
		// of the full text verbatim.
		fields := strings.Fields(text)
		if len(fields) > 3 {
			fields = fields[:3]
		}
		alpha := lo.FilterMap(fields, func(word string, _ int) (string, bool) {
			return strings.ToLower(word), isAlpha(word)
		})
		description = strings.Join(alpha, "_")
	}

	description = nonSlugPattern.ReplaceAllString(description, "")
	description = separatorPattern.ReplaceAllString(description, "_")
	if len(description) > maxSlugLength {
		description = description[:maxSlugLength]
	}
	if description == "" {
		return fallbackSlug
	}
	return description
}

// Filename builds the output filename for a transcript produced at the
// given time. The same text and timestamp always yield the same name.
func Filename(text string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.md", Slug(text), ts.Format(timestampLayout))
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
