// Package cheader renders compressed assets as a generated C header: one
// PROGMEM byte array plus a length constant per asset, declarations first,
// then definitions, everything in registry order.
package cheader

import (
	"bytes"
	"fmt"
	"strings"
)

// An Entry is one asset's worth of generated symbols.
type Entry struct {
	// Source file name, used in the telemetry comment
	Name string

	// C identifier the bytes are embedded under; <Symbol>_LEN holds the
	// byte count
	Symbol string

	// Size telemetry
	Original int
	Minified int

	// The bytes that end up in the array
	Compressed []byte
}

const banner = "// Auto-generated by webembed. DO NOT EDIT MANUALLY."

// Render produces the complete header text. The output is pure: the same
// entries always render to the same bytes.
func Render(entries []Entry) []byte {
	var b bytes.Buffer

	b.WriteString("#pragma once\n")
	b.WriteString("#include <Arduino.h>\n")
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\n")

	for _, e := range entries {
		fmt.Fprintf(&b,
			"\n// %s: original %d -> minified %d -> compressed %d bytes\n",
			e.Name, e.Original, e.Minified, len(e.Compressed))
		fmt.Fprintf(&b, "extern const uint8_t %s[] PROGMEM;\n", e.Symbol)
		fmt.Fprintf(&b, "extern const size_t %s_LEN;\n", e.Symbol)
	}

	b.WriteString("\n// Definitions\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "\nconst uint8_t %s[] PROGMEM = {\n", e.Symbol)
		fmt.Fprintf(&b, "        %s\n", hexBody(e.Compressed))
		b.WriteString("};\n")
		fmt.Fprintf(&b, "const size_t %s_LEN = sizeof(%s);\n",
			e.Symbol, e.Symbol)
	}

	return b.Bytes()
}

// hexBody formats data as two-digit hex tokens, sixteen to a line, indented
// to sit inside the array initializer.
func hexBody(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var lines []string
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}

		toks := make([]string, 0, 16)
		for _, c := range data[i:end] {
			toks = append(toks, fmt.Sprintf("0x%02x", c))
		}

		lines = append(lines, strings.Join(toks, ", "))
	}

	return strings.Join(lines, ",\n        ")
}
