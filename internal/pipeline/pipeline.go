// Package pipeline turns an ordered asset registry into the generated
// header text: minify, compress, encode, per asset, in registry order.
package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thatguystone/webembed/internal/cheader"
	"github.com/thatguystone/webembed/internal/gz"
	"github.com/thatguystone/webembed/internal/min"
	"github.com/thatguystone/webembed/internal/scss"
)

// An Asset is one named unit of input, owned by the pipeline for the
// duration of a run. Nothing here survives the run.
type Asset struct {
	Name   string
	Kind   min.Kind
	Symbol string
	Raw    []byte
}

// A Result carries the rendered header and per-asset telemetry.
type Result struct {
	Header  []byte
	Entries []cheader.Entry

	// The minified text of every asset, keyed by name. The debug server
	// serves these for preview.
	Minified map[string][]byte
}

type Options struct {
	// Include search path handed to the scss compiler
	IncludePaths []string
}

// Run processes assets strictly in the order given. Symbol layout in the
// output is part of the downstream contract, so the registry is never
// reordered. Any failure aborts the whole run: there is no partial header.
func Run(assets []Asset, opts Options) (*Result, error) {
	res := &Result{
		Minified: make(map[string][]byte, len(assets)),
	}

	seen := make(map[string]bool, len(assets))

	for _, a := range assets {
		if seen[a.Symbol] {
			return nil, fmt.Errorf("duplicate symbol %s (from %s)",
				a.Symbol, a.Name)
		}
		seen[a.Symbol] = true

		minified, err := minifyAsset(a, opts)
		if err != nil {
			return nil, err
		}

		// An empty asset embeds as a zero-length array, not as a gzip
		// container holding nothing
		var gzd []byte
		if len(minified) > 0 {
			gzd, err = gz.Compress(minified)
			if err != nil {
				return nil, fmt.Errorf("failed to compress %s: %v",
					a.Name, err)
			}
		}

		res.Minified[a.Name] = minified
		res.Entries = append(res.Entries, cheader.Entry{
			Name:       a.Name,
			Symbol:     a.Symbol,
			Original:   len(a.Raw),
			Minified:   len(minified),
			Compressed: gzd,
		})
	}

	res.Header = cheader.Render(res.Entries)

	return res, nil
}

func minifyAsset(a Asset, opts Options) ([]byte, error) {
	raw := a.Raw

	if a.Kind == min.Opaque {
		return raw, nil
	}

	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s is not valid UTF-8", a.Name)
	}

	if a.Kind == min.Style && strings.HasSuffix(a.Name, ".scss") {
		compiled, err := scss.Compile(raw, opts.IncludePaths)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %v", a.Name, err)
		}

		raw = compiled
	}

	return []byte(min.Minify(a.Kind, string(raw))), nil
}
