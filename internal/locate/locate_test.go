package locate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thatguystone/cog/check"
	"github.com/thatguystone/webembed/internal/testfs"
)

func TestFirstDir(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	fs.SWriteFile("second/marker", "")

	dir, err := FirstDir([]string{
		fs.Path("first"),
		fs.Path("second"),
		fs.Path("third"),
	})
	c.Must.Nil(err)
	c.Equal(fs.Path("second"), dir)
}

func TestFirstDirMissing(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	_, err := FirstDir([]string{fs.Path("nope")})
	c.NotNil(err)
	c.Contains(err.Error(), "nope")
}

func TestAscend(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	fs.SWriteFile("pkg/webui_src/index.html", "")
	fs.SWriteFile("pkg/example/deep/project/main.cpp", "")

	found, ok := Ascend(
		fs.Path("pkg/example/deep/project"),
		filepath.Join("webui_src"))
	c.Must.True(ok)
	c.Equal(fs.Path("pkg/webui_src"), found)

	_, ok = Ascend(fs.Path("pkg"), "does-not-exist")
	c.False(ok)
}

func TestDestinations(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	paths := Destinations([]string{
		fs.Path("out/a"),
		fs.Path("out/b/nested"),
	}, "Assets.h")

	c.Len(paths, 2)
	c.Equal(filepath.Join(fs.Path("out/a"), "Assets.h"), paths[0])
}

func TestDestinationsRelative(t *testing.T) {
	c := check.New(t)

	fs, clean := testfs.New(c)
	defer clean()

	wd, err := os.Getwd()
	c.Must.Nil(err)
	defer os.Chdir(wd)
	c.Must.Nil(os.Chdir(fs.Path("/")))

	paths := Destinations([]string{"gen/rel"}, "Assets.h")
	c.Must.Len(paths, 1)

	// Relative outdirs resolve against the working directory and come
	// back absolute, ready for a rooted writer
	c.True(filepath.IsAbs(paths[0]))
	c.True(strings.HasSuffix(paths[0],
		filepath.Join("gen", "rel", "Assets.h")))

	info, err := os.Stat(fs.Path("gen/rel"))
	c.Must.Nil(err)
	c.True(info.IsDir())
}
