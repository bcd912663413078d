package min

import (
	"regexp"
	"strings"
)

var (
	// Comments starting with <!--[ are conditional markers and survive
	// untouched.
	reMarkupComment  = regexp.MustCompile(`(?s)<!--(?:[^\[].*?)?-->`)
	reMarkupIntertag = regexp.MustCompile(`>\s+<`)
	reMarkupRuns     = regexp.MustCompile(`\s+`)
)

// markup minifies tag-structured text.
func markup(s string) string {
	s = reMarkupComment.ReplaceAllString(s, "")
	s = reMarkupIntertag.ReplaceAllString(s, "><")
	s = reMarkupRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
