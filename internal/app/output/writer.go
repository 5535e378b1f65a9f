package output

import (
	"os"
	"path/filepath"

	"gemini-transcribe/internal/app/errors"
	"gemini-transcribe/internal/app/model"
	"gemini-transcribe/internal/app/util/files"
)

// Write renders the document and saves it under dir, creating the
// directory if needed. Returns the full path of the written file.
func Write(dir, filename string, doc *model.TranscriptDocument) (string, error) {
	if err := files.EnsureDirectory(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(Render(doc)), 0o644); err != nil {
		return "", errors.Wrapf(err, errors.KindIO, "write transcript %q", path)
	}
	return path, nil
}
