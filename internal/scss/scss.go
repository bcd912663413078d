// Package scss wraps scss compilation
package scss

import (
	"bytes"

	libsass "github.com/wellington/go-libsass"
)

// Compile compiles src to plain css. The output still goes through the
// style minifier afterwards, so the style here doesn't matter much.
func Compile(src []byte, includePaths []string) ([]byte, error) {
	var buf bytes.Buffer

	comp, err := libsass.New(&buf, bytes.NewReader(src),
		libsass.IncludePaths(includePaths),
		libsass.OutputStyle(libsass.NESTED_STYLE))
	if err != nil {
		return nil, err
	}

	err = comp.Run()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
