// Package text provides filename and tag formatting helpers shared by the
// note-creation commands.
package text

import (
	"regexp"
	"strings"
)

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	dashRuns       = regexp.MustCompile(`-+`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// SanitizeFilename converts a note title to a safe filename stem.
//
// Spaces become underscores, anything outside [a-zA-Z0-9-_] is dropped,
// runs of dashes/underscores are collapsed, and the result is lowercased.
// A title that sanitizes to nothing becomes "untitled".
// The transformation is idempotent.
func SanitizeFilename(title string) string {
	name := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = dashRuns.ReplaceAllString(name, "-")
	name = underscoreRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "-_")

	if name == "" {
		return "untitled"
	}
	return strings.ToLower(name)
}

// FormatHashtags turns a comma-separated tag list into space-separated
// hashtags: "a, ,b" -> "#a #b". Empty input yields an empty string.
func FormatHashtags(tags string) string {
	if tags == "" {
		return ""
	}

	var out []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, "#"+tag)
	}
	return strings.Join(out, " ")
}
