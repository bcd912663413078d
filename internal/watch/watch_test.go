package watch

import (
	"testing"
	"time"

	"github.com/thatguystone/cog/check"
	"github.com/thatguystone/webembed/internal/testfs"
)

func TestWatchBasic(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	fs.SWriteFile("dir/existing", "")

	w, err := New(fs.Path("dir"))
	c.Must.Nil(err)
	defer w.Stop()

	fs.SWriteFile("dir/test.ext", "test")

	select {
	case paths := <-w.Changed:
		c.True(HasExt(paths, ".ext"))
		c.False(HasExt(paths, ".merpmerp"))

	case <-time.After(time.Second):
		c.Fatal("did not get events")
	}
}

func TestWatchMissingDir(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	_, err := New(fs.Path("not-there"))
	c.NotNil(err)
}

func TestHasExt(t *testing.T) {
	c := check.New(t)

	c.True(HasExt([]string{"/a/b.js"}, ".css", ".js"))
	c.False(HasExt([]string{"/a/b.js"}, ".css"))
	c.False(HasExt(nil, ".js"))
}
