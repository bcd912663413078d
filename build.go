package main

import (
	"fmt"
	"io/ioutil"
	"mime"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/thatguystone/webembed/internal"
	"github.com/thatguystone/webembed/internal/afs"
	"github.com/thatguystone/webembed/internal/config"
	"github.com/thatguystone/webembed/internal/errs"
	"github.com/thatguystone/webembed/internal/locate"
	"github.com/thatguystone/webembed/internal/min"
	"github.com/thatguystone/webembed/internal/pipeline"
	"github.com/thatguystone/webembed/internal/usage"
	"github.com/thatguystone/webembed/internal/watch"
)

type build struct {
	cfg *config.C
	log internal.Logger

	// Latest results, for the debug server
	mtx      sync.RWMutex
	header   []byte
	minified map[string][]byte
}

func newBuild(cfg *config.C, logf internal.LogFunc) *build {
	return &build{
		cfg: cfg,
		log: internal.NewLogger("webembed", logf),
	}
}

// build runs the whole pipeline once: locate, gate, read, minify, compress,
// render, write. Everything is synchronous and in registry order; a run
// either completes or aborts without touching any destination. Every run
// starts with a fresh error collector.
func (b *build) build() bool {
	e := errs.New(b.log)
	b.buildAll(e)
	return e.Ok()
}

func (b *build) buildAll(e *errs.E) {
	start := time.Now()

	srcDir, err := locate.FirstDir(b.cfg.SrcDirs)
	if err != nil {
		e.Errorf("sources", "%v", err)
		return
	}

	if !usage.Uses(b.cfg.ProjectDir, b.cfg.UsageMarkers) {
		b.log.Log("skipping: project does not use the embedded UI")
		return
	}

	assets := b.loadAssets(e, srcDir)
	if !e.Ok() {
		return
	}

	res, err := pipeline.Run(assets, pipeline.Options{
		IncludePaths: b.cfg.IncludePaths,
	})
	if err != nil {
		e.Errorf(srcDir, "%v", err)
		return
	}

	dsts := locate.Destinations(b.cfg.OutDirs, b.cfg.HeaderName)
	if len(dsts) == 0 {
		e.Errorf("destinations",
			"no usable output directory in %v", b.cfg.OutDirs)
		return
	}

	err = afs.WriteAll(osfs.New("/"), dsts, res.Header)
	if err != nil {
		e.Errorf("destinations", "%v", err)
		return
	}

	b.mtx.Lock()
	b.header = res.Header
	b.minified = res.Minified
	b.mtx.Unlock()

	for _, ent := range res.Entries {
		b.log.Log(fmt.Sprintf(
			"%s: original %d -> minified %d -> compressed %d bytes",
			ent.Name, ent.Original, ent.Minified, len(ent.Compressed)))
	}

	b.log.Log(fmt.Sprintf("embedded %d assets into %d destinations in %s",
		len(res.Entries), len(dsts), time.Since(start)))
}

func (b *build) loadAssets(e *errs.E, srcDir string) []pipeline.Asset {
	assets := make([]pipeline.Asset, 0, len(b.cfg.Assets))

	for _, a := range b.cfg.Assets {
		raw, err := ioutil.ReadFile(filepath.Join(srcDir, a.Name))
		if err != nil {
			// Keep going so one run reports every missing asset
			e.Errorf(a.Name, "missing asset: %v", err)
			continue
		}

		kind := min.KindForName(a.Kind)
		if a.Kind == "" {
			kind = min.KindForExt(filepath.Ext(a.Name))
		}

		assets = append(assets, pipeline.Asset{
			Name:   a.Name,
			Kind:   kind,
			Symbol: a.Symbol,
			Raw:    raw,
		})
	}

	return assets
}

// watchAndServe rebuilds whenever the asset sources change, optionally
// serving the latest minified output for eyeballing.
func (b *build) watchAndServe() {
	srcDir, err := locate.FirstDir(b.cfg.SrcDirs)
	if err != nil {
		panic(err)
	}

	w, err := watch.New(srcDir)
	if err != nil {
		panic(err)
	}

	defer w.Stop()

	if b.cfg.DebugAddr != "" {
		go b.serve()
	}

	for paths := range w.Changed {
		if !watch.HasExt(paths, ".html", ".htm", ".css", ".scss", ".js") {
			continue
		}

		b.log.Log("change detected, rebuilding...")
		b.build()
	}
}

func (b *build) serve() {
	l, err := net.Listen("tcp", b.cfg.DebugAddr)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Serving on %s ...\n", b.cfg.DebugAddr)

	server := http.Server{
		Handler: http.HandlerFunc(b.serveHTTP),
	}

	err = server.Serve(l)
	if err != nil {
		panic(err)
	}
}

// serveHTTP serves each asset's minified text at /<name>, and the generated
// header itself at /.
func (b *build) serveHTTP(w http.ResponseWriter, r *http.Request) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	internal.SetMustRevalidate(w)

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(b.header)
		return
	}

	body, ok := b.minified[name]
	if !ok {
		internal.HTTPError(w,
			fmt.Sprintf("no such asset: %s", name),
			http.StatusNotFound)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}

	w.Write(body)
}
