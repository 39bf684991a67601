package source

import (
	"path/filepath"
	"strings"
)

// scrub prepares raw bytes for NewFile: a leading UTF-8 BOM is dropped and
// CRLF pairs collapse to bare newlines (lone \r survives). The returned
// flags record what was touched so callers can tell the file was rewritten.
func scrub(raw []byte) (string, FileFlags) {
	var flags FileFlags
	text := string(raw)
	if rest, ok := strings.CutPrefix(text, "\ufeff"); ok {
		text = rest
		flags |= FileHadBOM
	}
	if strings.Contains(text, "\r\n") {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		flags |= FileNormalizedCRLF
	}
	return text, flags
}

// cleanPath canonicalizes a path for use as a FileSet index key, so the same
// file resolves identically regardless of platform separators.
func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
