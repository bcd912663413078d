// Package locate resolves where asset sources live and where generated
// headers go. Installations differ (package-manager libdeps trees, local
// checkouts, example projects), so everything here is probe-in-order: the
// core pipeline only ever sees the resolved paths.
package locate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatguystone/cog/cfs"
)

// FirstDir returns the first candidate that exists as a directory.
func FirstDir(candidates []string) (string, error) {
	for _, dir := range candidates {
		if exists, _ := cfs.DirExists(dir); exists {
			return dir, nil
		}
	}

	return "", fmt.Errorf("no source directory found, searched: %v", candidates)
}

// Ascend walks up from start looking for rel to exist under an ancestor,
// for the checkout-somewhere-above-the-project layout.
func Ascend(start, rel string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, rel)
		if exists, _ := cfs.DirExists(candidate); exists {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// Destinations resolves the header path for every output directory that
// exists or can be created. Candidates that can't be created are dropped
// here; whatever survives becomes the write set, and the writer must then
// hit all of it.
func Destinations(outDirs []string, headerName string) []string {
	var paths []string
	for _, dir := range outDirs {
		// Relative outdirs resolve against the working directory; the
		// writer only sees absolute paths
		abs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}

		if err := os.MkdirAll(abs, 0755); err != nil {
			continue
		}

		paths = append(paths, filepath.Join(abs, headerName))
	}

	return paths
}
