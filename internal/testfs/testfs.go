// Package testfs provides the temp-dir test fixture that later cog
// revisions expose as check.FS; the cog revision pinned in go.mod
// predates that API.
package testfs

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/thatguystone/cog/check"
)

// FS is a temporary directory that test files are written into.
type FS struct {
	c    *check.C
	root string
}

// New creates a temp dir for the test and returns it along with a
// cleanup function that removes it.
func New(c *check.C) (*FS, func()) {
	root, err := ioutil.TempDir("", "webembed-test-")
	c.Must.Nil(err)

	fs := &FS{
		c:    c,
		root: root,
	}

	return fs, func() { os.RemoveAll(root) }
}

// Path returns the absolute path of the given file inside the temp dir.
func (fs *FS) Path(rel string) string {
	return filepath.Join(fs.root, rel)
}

// SWriteFile writes a string to the given file inside the temp dir,
// creating parent directories as needed.
func (fs *FS) SWriteFile(rel, contents string) {
	path := fs.Path(rel)

	err := os.MkdirAll(filepath.Dir(path), 0700)
	fs.c.Must.Nil(err)

	err = ioutil.WriteFile(path, []byte(contents), 0600)
	fs.c.Must.Nil(err)
}
