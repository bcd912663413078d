// webembed minifies web assets, gzips them, and renders them into a
// generated C header for inclusion in a firmware binary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/thatguystone/webembed/internal"
	"github.com/thatguystone/webembed/internal/config"
)

func main() {
	if !run(os.Args[1:], ".", log.Printf, false) {
		os.Exit(1)
	}
}

func run(args []string, baseDir string, logf internal.LogFunc, testing bool) bool {
	cfg := config.New()

	err := cfg.Load(args...)
	if err != nil {
		panic(fmt.Errorf("failed to load config: %v", err))
	}

	cfg = cfg.InDir(baseDir)

	b := newBuild(cfg, logf)

	ok := b.build()

	if cfg.Watch && !testing {
		b.watchAndServe()
		return true
	}

	return ok
}
