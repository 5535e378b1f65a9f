package formats

import (
	"fmt"

	"github.com/spf13/cobra"

	"gemini-transcribe/internal/app/audio"
)

// Cmd represents the formats command
var Cmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported audio formats",
	Long:  `List the audio file extensions the transcriber accepts and the MIME type each one is sent as.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printFormats()
		return nil
	},
}

func printFormats() {
	fmt.Println("Supported audio formats:")
	for _, ext := range audio.SupportedExtensions() {
		mimeType, _ := audio.MimeTypeByExtension(ext)
		fmt.Printf("  %-6s %s\n", ext, mimeType)
	}
}
