// Package afs writes the generated artifact to the destination filesystem.
package afs

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// WriteAll writes b to every path, treating the whole set as one logical
// write: either every destination ends up with identical bytes, or the call
// fails. Output is staged to temp files first and only renamed into place
// once every stage succeeded, so a bad destination can't leave the set
// half-written without the caller hearing about it.
func WriteAll(fs billy.Filesystem, paths []string, b []byte) error {
	staged := make([]string, 0, len(paths))

	cleanup := func() {
		for _, tmp := range staged {
			fs.Remove(tmp)
		}
	}

	for _, path := range paths {
		err := fs.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to create dir for %s: %v", path, err)
		}

		tmp := path + ".tmp"
		err = util.WriteFile(fs, tmp, b, 0644)
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to stage %s: %v", path, err)
		}

		staged = append(staged, tmp)
	}

	for i, path := range paths {
		err := fs.Rename(staged[i], path)
		if err != nil {
			// Destinations committed before this one keep the new,
			// complete artifact; the rest of the temp files go away
			staged = staged[i:]
			cleanup()
			return fmt.Errorf("failed to commit %s: %v", path, err)
		}
	}

	return nil
}
