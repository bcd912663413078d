package config

import (
	"fmt"
	"io/ioutil"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// An Asset names one input file and the symbol it embeds under.
type Asset struct {
	// File name, relative to the resolved source directory
	Name string

	// Minifier to use: js, css, or html. Guessed from the extension when
	// empty; anything unknown passes through unminified.
	Kind string

	// C identifier for the embedded bytes
	Symbol string
}

// C stands for "config".
type C struct {
	// Directories to probe, in order, for the asset sources
	SrcDirs []string

	// Directories that receive the generated header
	OutDirs []string

	// File name of the generated header
	HeaderName string

	// Project source tree scanned for usage markers
	ProjectDir string

	// Markers that show the project actually uses the embedded UI. Empty
	// disables the gate.
	UsageMarkers []string

	// Assets to embed, in declaration order. The order is a contract:
	// symbols appear in the header exactly in this order.
	Assets []Asset

	// Include search path for scss compilation
	IncludePaths []string

	// For debugging
	Watch     bool
	DebugAddr string
}

func New() *C {
	return &C{
		SrcDirs:    []string{"webui_src/"},
		OutDirs:    []string{"include/Generated/"},
		HeaderName: "WebUIAssets.h",
		ProjectDir: "src/",
		UsageMarkers: []string{
			"WebUI.h",
			"WebUIComponent",
		},
		Assets: []Asset{
			{Name: "index.html", Symbol: "WEBUI_HTML_GZ"},
			{Name: "style.css", Symbol: "WEBUI_CSS_GZ"},
			{Name: "app.js", Symbol: "WEBUI_JS_GZ"},
		},
		DebugAddr: ":8000",
	}
}

// Load extra configs on top of this config.
func (c *C) Load(files ...string) error {
	for _, file := range files {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read config file: %v", err)
		}

		err = yaml.Unmarshal(b, c)
		if err != nil {
			return fmt.Errorf("failed to unmarshal config file %s: %v", file, err)
		}
	}

	return nil
}

// InDir prefixes each non-absolute path in C with the given dir.
func (c C) InDir(dir string) *C {
	// The receiver is a copy, the slices aren't
	c.SrcDirs = append([]string(nil), c.SrcDirs...)
	c.OutDirs = append([]string(nil), c.OutDirs...)
	c.IncludePaths = append([]string(nil), c.IncludePaths...)

	pfx := []*string{
		&c.ProjectDir,
	}

	for i := range c.SrcDirs {
		pfx = append(pfx, &c.SrcDirs[i])
	}

	for i := range c.OutDirs {
		pfx = append(pfx, &c.OutDirs[i])
	}

	for i := range c.IncludePaths {
		pfx = append(pfx, &c.IncludePaths[i])
	}

	for _, p := range pfx {
		if !path.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}

	return &c
}
