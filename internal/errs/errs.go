// Package errs collects build failures so a run can report everything it
// hit before exiting non-zero.
package errs

import (
	"fmt"

	"github.com/thatguystone/webembed/internal"
)

type E struct {
	failed bool
	log    internal.Logger
}

func New(log internal.Logger) *E {
	return &E{
		log: log,
	}
}

func (e *E) Errorf(name, format string, args ...interface{}) {
	e.failed = true
	e.log.Error(fmt.Errorf(format, args...), name)
}

func (e *E) Ok() bool {
	return !e.failed
}
