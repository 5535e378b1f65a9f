package files

import (
	"os"
	"path/filepath"

	"gemini-transcribe/internal/app/errors"
)

// EnsureDirectory creates the directory (and any parents) if it does not
// already exist.
func EnsureDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, errors.KindIO, "create directory %q", dir)
		}
	}
	return nil
}

// AbsolutePath resolves path against the working directory.
func AbsolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// StatInput stats path and rejects directories; transcription inputs
// must be regular files.
func StatInput(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.KindIO, "audio file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.KindIO, "stat %q", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.KindIO, "%s is a directory, not an audio file", path)
	}
	return info, nil
}
