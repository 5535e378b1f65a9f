package audio

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"gemini-transcribe/internal/app/errors"
)

// mimeByExtension maps the supported audio extensions to the MIME type
// reported to the Gemini API. Extensions are matched case-insensitively.
var mimeByExtension = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".webm": "audio/webm",
}

// defaultMimeType is used when an extension has no explicit mapping.
const defaultMimeType = "audio/mp4"

// IsSupported reports whether the file's extension is in the supported set.
func IsSupported(path string) bool {
	_, ok := mimeByExtension[normalizeExt(path)]
	return ok
}

// ValidateFormat checks the file extension only; it does not touch the
// filesystem.
func ValidateFormat(path string) error {
	if !IsSupported(path) {
		return errors.NewUnsupportedFormatError(filepath.Base(path), SupportedExtensions())
	}
	return nil
}

// MimeType returns the MIME type to submit for the given file path.
func MimeType(path string) string {
	if mime, ok := mimeByExtension[normalizeExt(path)]; ok {
		return mime
	}
	return defaultMimeType
}

// MimeTypeByExtension returns the MIME type for a bare extension such as ".mp3".
func MimeTypeByExtension(ext string) (string, bool) {
	mime, ok := mimeByExtension[strings.ToLower(ext)]
	return mime, ok
}

// SupportedExtensions returns the supported extensions in sorted order.
func SupportedExtensions() []string {
	exts := lo.Keys(mimeByExtension)
	sort.Strings(exts)
	return exts
}

func normalizeExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
