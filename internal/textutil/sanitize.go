package textutil

import (
	"strings"

	"mcpackr/internal/revision"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// ArchiveName returns "<pack> (<label>).zip" for rev. An empty pack name
// falls back to "pack".
func ArchiveName(pack string, rev revision.ID) string {
	pack = SanitizeFileName(pack)
	if pack == "" {
		pack = "pack"
	}
	return pack + " (" + rev.Label() + ").zip"
}
