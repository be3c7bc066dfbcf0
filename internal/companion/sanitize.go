package companion

import (
	"regexp"
	"strings"
)

var (
	controlChars   = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)
	headingMarkers = regexp.MustCompile(`#+\s*`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
)

// Sanitize cleans model output before it reaches the app. Each step runs over
// the whole string, in order. It never fails.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.TrimSpace(raw)
	text = controlChars.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	text = headingMarkers.ReplaceAllString(text, "")
	text = collapseBlankLines(text)
	return strings.TrimSpace(text)
}

func collapseBlankLines(text string) string {
	return blankLineRuns.ReplaceAllString(text, "\n\n")
}
