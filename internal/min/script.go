package min

import (
	"regexp"
	"strings"
)

// The tokenizing pass tracks where the cursor is so that comment and string
// contents are handled correctly while whitespace is collapsed.
type scriptState int

const (
	stNormal scriptState = iota
	stString
	stLineComment
	stBlockComment
)

var (
	// Structural punctuation that never needs surrounding whitespace.
	reScriptPunct = regexp.MustCompile(`\s*([{}\[\];:,<>=+\-*/%&|^!?()])\s*`)

	// Words that must not be concatenated onto whatever follows them once
	// the punctuation pass has eaten the separating space.
	reScriptWord = regexp.MustCompile(`\b(return|typeof|new|delete|throw|in|of|const|let|var|if|else|for|while|do|switch|case|break|continue|function|class|extends|async|await|yield|import|export|from|default)([^\s\w])`)

	reScriptNewlines = regexp.MustCompile(`\n+`)
)

// script minifies script text in two stages: a literal-aware tokenizing
// pass that strips comments and collapses whitespace runs, then generic
// normalization passes over the flattened result.
//
// The normalization passes run over the whole flattened buffer, string
// contents included: punctuation-adjacent whitespace inside a string that
// survived the first stage can still be rewritten. Known gap; typical UI
// assets don't hit it.
func script(s string) string {
	return normalize(tokenize(s))
}

// tokenize is a single pass over the input. It drops comments, collapses
// whitespace runs, and copies string literals verbatim. Hitting the end of
// input inside a string or comment is not an error: unterminated constructs
// pass through silently.
func tokenize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	state := stNormal
	var delim byte

	// Seed with a newline so leading whitespace collapses away
	last := byte('\n')

	emit := func(c byte) {
		b.WriteByte(c)
		last = c
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case stNormal:
			switch {
			case c == '/' && i+1 < len(s) && s[i+1] == '/':
				state = stLineComment
				i++

			case c == '/' && i+1 < len(s) && s[i+1] == '*':
				state = stBlockComment
				i++

			case c == '"' || c == '\'' || c == '`':
				state = stString
				delim = c
				emit(c)

			case c == ' ' || c == '\t':
				if last != ' ' && last != '\n' {
					emit(' ')
				}

			case c == '\n' || c == '\r':
				if last != '\n' && last != ' ' {
					emit('\n')
				}

			default:
				emit(c)
			}

		case stString:
			if c == '\\' {
				// Copy escapes uninterpreted, including an escaped
				// delimiter
				emit(c)
				if i+1 < len(s) {
					i++
					emit(s[i])
				}
			} else {
				emit(c)
				if c == delim {
					state = stNormal
				}
			}

		case stLineComment:
			if c == '\n' {
				emit('\n')
				state = stNormal
			}

		case stBlockComment:
			if c == '*' && i+1 < len(s) && s[i+1] == '/' {
				state = stNormal
				i++
			}
		}
	}

	return b.String()
}

// normalize squeezes the flattened output of tokenize.
func normalize(s string) string {
	s = reScriptPunct.ReplaceAllString(s, "$1")
	s = reScriptWord.ReplaceAllString(s, "$1 $2")
	s = reScriptNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
