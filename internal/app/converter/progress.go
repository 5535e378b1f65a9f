package converter

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig holds configuration for progress display
type ProgressConfig struct {
	// Enabled controls whether the spinner is rendered at all
	Enabled bool
	// Writer is where the spinner renders, defaults to stderr
	Writer io.Writer
}

// Spinner is an indeterminate progress indicator shown while a
// transcription request is in flight. A disabled spinner is inert and
// all its methods are no-ops.
type Spinner struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
}

// StartSpinner begins rendering a spinner labeled with description.
func StartSpinner(config ProgressConfig, description string) *Spinner {
	if !config.Enabled {
		return &Spinner{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := container.New(1,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(description+" "),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO), "done"),
		),
	)

	return &Spinner{
		container: container,
		bar:       bar,
		enabled:   true,
	}
}

// Complete marks the spinner finished and waits for the final render.
func (s *Spinner) Complete() {
	if !s.enabled {
		return
	}
	s.bar.Increment()
	s.container.Wait()
}

// Abort drops the spinner without marking it complete.
func (s *Spinner) Abort() {
	if !s.enabled {
		return
	}
	s.bar.Abort(true)
	s.container.Wait()
}

// IsTTY checks if the given writer is a terminal
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress determines if progress indicators should be displayed
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	// Show progress if either stderr or stdout is a TTY
	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
