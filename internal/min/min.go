// Package min implements the asset minifiers.
//
// These are not standards-compliant parsers. They only need to be safe
// enough for the assets this tool embeds: no ASTs, no validation, and a
// known precision gap (see script.go).
package min

import (
	"strings"
)

// Kind determines which minifier an asset is routed to.
type Kind int

const (
	// Opaque assets pass through untouched
	Opaque Kind = iota
	Script
	Style
	Markup
)

// KindForExt guesses an asset's kind from its file extension.
func KindForExt(ext string) Kind {
	switch strings.ToLower(ext) {
	case ".js":
		return Script
	case ".css", ".scss":
		return Style
	case ".html", ".htm":
		return Markup
	default:
		return Opaque
	}
}

// KindForName maps a config kind name to a Kind. Unknown names are Opaque.
func KindForName(name string) Kind {
	switch strings.ToLower(name) {
	case "js", "script":
		return Script
	case "css", "style":
		return Style
	case "html", "markup":
		return Markup
	default:
		return Opaque
	}
}

// Minify routes s to the minifier for the given kind. It cannot fail: the
// worst case is output that is larger than optimal, never an error.
func Minify(kind Kind, s string) string {
	switch kind {
	case Script:
		return script(s)
	case Style:
		return style(s)
	case Markup:
		return markup(s)
	default:
		return s
	}
}
