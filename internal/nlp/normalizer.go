package nlp

import (
	"regexp"
	"strings"
)

// timestampMarker matches "[12:34]", "[00:12.500 --> 00:14.200]" and the
// hour-qualified "[01:02:03.000 --> 01:02:05.000]" form whisper emits for long audio.
var timestampMarker = regexp.MustCompile(
	`\[(?:\d+:)?\d+:\d+(?:\.\d+)?(?:\s*-->\s*(?:\d+:)?\d+:\d+(?:\.\d+)?)?\]`,
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripTimestamps removes every timestamp marker, including markers that only
// appear once an inner marker has been removed.
func StripTimestamps(text string) string {
	for {
		stripped := timestampMarker.ReplaceAllString(text, "")
		if stripped == text {
			return text
		}
		text = stripped
	}
}

// Normalize strips timestamp markers and collapses whitespace. It is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := StripTimestamps(raw)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
