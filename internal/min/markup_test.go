package min

import (
	"testing"

	"github.com/thatguystone/cog/check"
)

func TestMarkupBasic(t *testing.T) {
	c := check.New(t)

	c.Equal(
		"<div><span>hi</span></div>",
		Minify(Markup, "<div>\n  <span>hi</span>\n</div>\n"))

	c.Equal(
		"<p>some text</p>",
		Minify(Markup, "<p>some\n   text</p>"))

	c.Equal("", Minify(Markup, ""))
}

func TestMarkupComments(t *testing.T) {
	c := check.New(t)

	c.Equal("a b", Minify(Markup, "a <!-- note --> b"))
	c.Equal(
		"<div></div>",
		Minify(Markup, "<div><!-- a\nmultiline\ncomment --></div>"))
}

func TestMarkupConditionalComments(t *testing.T) {
	c := check.New(t)

	// Conditional markers survive verbatim
	c.Equal(
		"<!--[if IE]>x<![endif]-->",
		Minify(Markup, "<!--[if IE]>x<![endif]-->"))

	c.Equal(
		"<!--[if lt IE 9]><script></script><![endif]-->",
		Minify(Markup, "<!-- old browsers --><!--[if lt IE 9]><script></script><![endif]-->"))
}
