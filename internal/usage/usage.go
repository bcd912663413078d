// Package usage decides whether a project actually pulls in the embedded
// UI. Projects that never include it shouldn't pay for the generated
// header, so the whole pipeline is gated on this.
package usage

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

var srcExts = map[string]bool{
	".c":   true,
	".cc":  true,
	".cpp": true,
	".h":   true,
	".hpp": true,
	".ino": true,
}

// Uses reports whether any source file under dir contains one of the
// markers. Best effort: unreadable files and a missing dir just mean
// "doesn't use it".
func Uses(dir string, markers []string) bool {
	if len(markers) == 0 {
		return true
	}

	found := false

	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || found || info.IsDir() {
			return nil
		}

		if !srcExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil
		}

		for _, m := range markers {
			if bytes.Contains(b, []byte(m)) {
				found = true
				break
			}
		}

		return nil
	})

	return found
}
