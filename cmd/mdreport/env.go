package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/term"

	mdreport "github.com/alnah/go-mdreport"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 80

// Environment holds injectable dependencies for testing.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	TermWidth   func() int
	NewPool     func(size int, opts ...mdreport.Option) Pool
	SetMaxProcs func(verbose bool, w io.Writer)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		TermWidth:   stdoutWidth,
		NewPool:     newPool,
		SetMaxProcs: setMaxProcs,
	}
}

// stdoutWidth returns the column count of the terminal on stdout.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Output is only shown in verbose mode.
func setMaxProcs(verbose bool, w io.Writer) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}
