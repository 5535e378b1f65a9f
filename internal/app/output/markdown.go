// Package output renders transcript documents to markdown and writes
// them to the output directory.
package output

import (
	"fmt"
	"strings"

	"gemini-transcribe/internal/app/model"
)

const (
	documentTitle  = "# Audio Transcript"
	documentFooter = "*Transcribed using Google AI Gemini*"

	// transcribedLayout is the human-readable timestamp in the header.
	transcribedLayout = "2006-01-02 15:04:05"
)

// Render produces the markdown document for a transcript. The header
// lines end with two spaces, markdown's hard line break.
func Render(doc *model.TranscriptDocument) string {
	var b strings.Builder

	b.WriteString(documentTitle)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Source File:** %s  \n", doc.SourceFile)
	fmt.Fprintf(&b, "**Transcribed:** %s  \n", doc.Transcribed.Format(transcribedLayout))
	fmt.Fprintf(&b, "**File Size:** %.2f MB\n", fileSizeMB(doc.FileSizeBytes))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Body)
	b.WriteString("\n\n---\n\n")
	b.WriteString(documentFooter)
	b.WriteString("\n")

	return b.String()
}

func fileSizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
