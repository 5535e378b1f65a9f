package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gemini-transcribe/cmd/transcribe/cmd/formats"
	"gemini-transcribe/cmd/transcribe/cmd/version"
	"gemini-transcribe/internal/app"
	"gemini-transcribe/internal/app/api/gemini"
	"gemini-transcribe/internal/app/errors"
	"gemini-transcribe/internal/app/logging"
	"gemini-transcribe/internal/app/model"
	"gemini-transcribe/internal/config"
)

var Verbose bool

var (
	modelAlias string
	outputDir  string
	timeoutSec int
)

// rootCmd represents the base command: transcribe one audio file.
var rootCmd = &cobra.Command{
	Use:   "transcribe <audio_path>",
	Short: "Transcribe an audio file to a markdown document with Google Gemini",
	Long: `Transcribe a local audio file to text using Google Gemini and save the
result as a markdown document.

- Reads the audio file and sends it inline to the Gemini API
- Cleans model boilerplate and collapses single-speaker labels
- Saves the transcript as <slug>_<timestamp>.md in the output directory`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

// Execute runs the root command and maps failures to per-kind exit codes.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}

func init() {
	rootCmd.AddCommand(formats.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&modelAlias, "model", "m", "",
		"model to use: flash or pro (default from config)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory the transcript is written to (default from config)")
	rootCmd.Flags().IntVar(&timeoutSec, "timeout", 0,
		"request timeout in seconds (default from config)")
}

func run(cmd *cobra.Command, audioPath string) error {
	logger := logging.MustNewLogger(Verbose)
	defer logger.Sync()

	settings, err := config.LoadSettings("")
	if err != nil {
		return err
	}

	apiKey, err := config.APIKey()
	if err != nil {
		return err
	}

	// Flags win over the settings file, the settings file over built-ins.
	resolved, err := config.Resolve(settings, modelAlias, outputDir, timeoutSec, cmd.Flags().Changed("timeout"))
	if err != nil {
		return err
	}

	printBanner(audioPath, gemini.ResolveModel(resolved.DefaultModel), resolved.OutputDir)

	ctx := cmd.Context()
	conv, err := app.InitializeConverter(ctx, &config.Config{APIKey: apiKey}, logger)
	if err != nil {
		return err
	}

	request := &model.TranscriptionRequest{
		AudioPath: audioPath,
		Model:     resolved.DefaultModel,
		OutputDir: resolved.OutputDir,
		Timeout:   resolved.Timeout(),
	}

	_, err = conv.Do(ctx, request)
	return err
}

// printBanner echoes the run parameters. The model line carries the full
// Gemini identifier, not the alias the user typed.
func printBanner(audioPath, modelID, outputDir string) {
	fmt.Printf("🎙️  Audio file: %s\n", audioPath)
	fmt.Printf("🤖 Model: %s\n", modelID)
	fmt.Printf("📂 Output directory: %s\n", outputDir)
}
