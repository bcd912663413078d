package min

import (
	"regexp"
	"strings"
)

var (
	reStyleComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reStylePunct   = regexp.MustCompile(`\s*([{};:,>~+])\s*`)
	reStyleRuns    = regexp.MustCompile(`\s+`)
	reStyleBrace   = regexp.MustCompile(`\s+\{`)
)

// style minifies stylesheet text with plain sequential rewrites. Each pass
// operates on the previous pass's output, so the order matters.
func style(s string) string {
	s = reStyleComment.ReplaceAllString(s, "")
	s = reStylePunct.ReplaceAllString(s, "$1")
	s = reStyleRuns.ReplaceAllString(s, " ")
	s = reStyleBrace.ReplaceAllString(s, "{")
	s = strings.Replace(s, ";}", "}", -1)
	s = strings.Replace(s, "\n", "", -1)
	return strings.TrimSpace(s)
}
