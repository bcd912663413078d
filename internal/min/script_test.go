package min

import (
	"testing"

	"github.com/thatguystone/cog/check"
)

func TestScriptBasic(t *testing.T) {
	c := check.New(t)

	c.Equal(
		"if (x){return 1;}",
		Minify(Script, "if (x) {  return 1;  }"))

	c.Equal(
		"var a=1;var b=2;",
		Minify(Script, "var a = 1;\n\nvar b = 2;\n"))

	c.Equal("", Minify(Script, ""))
	c.Equal("", Minify(Script, "   \n\t\n  "))
}

func TestScriptComments(t *testing.T) {
	c := check.New(t)

	c.Equal(
		"var a=1;var b=2;",
		Minify(Script, "var a = 1; // set a\nvar b = 2;"))

	c.Equal(
		"a b",
		Minify(Script, "a /* multi\nline */ b"))

	c.Equal(
		"var x=1;",
		Minify(Script, "/* leading */ var x = 1; // trailing"))
}

func TestScriptStringLiteralSafety(t *testing.T) {
	c := check.New(t)

	// The tokenizing pass copies string contents verbatim, structural
	// whitespace included
	c.Equal(
		`var s = "a ; b";`,
		tokenize(`var s = "a ; b";`))

	c.Equal(
		`var s = 'it\'s';`,
		tokenize(`var s = 'it\'s';`))

	// Comment openers inside a string are content, not comments
	c.Equal(
		`var u = "http://x";`,
		tokenize(`var u = "http://x";`))

	// Template literals keep their internal runs through the whole
	// minifier
	c.Equal(
		"var t=`a  b`;",
		Minify(Script, "var t = `a  b`;"))
}

func TestScriptReservedWordSpacing(t *testing.T) {
	c := check.New(t)

	c.Equal("return -1;", Minify(Script, "return-1;"))
	c.Equal("return -1;", Minify(Script, "return - 1;"))
	c.Equal("x-1;", Minify(Script, "x-1;"))
	c.Equal("typeof x", Minify(Script, "typeof x"))
	c.Equal(`typeof "x"`, Minify(Script, `typeof"x"`))
}

func TestScriptUnterminated(t *testing.T) {
	c := check.New(t)

	// Unterminated constructs are passed through best-effort, never an
	// error
	c.Equal(`var s="abc`, Minify(Script, `var s = "abc`))
	c.Equal("a", Minify(Script, "a /* never closed"))
	c.Equal("a", Minify(Script, "a // to the bitter end"))
}

func TestScriptEscapes(t *testing.T) {
	c := check.New(t)

	c.Equal(
		`var s="a\"b";var t=1;`,
		Minify(Script, `var s = "a\"b"; var t = 1;`))

	// A trailing backslash at end of input is copied as-is
	c.Equal(`var s="x\`, Minify(Script, `var s = "x\`))
}
