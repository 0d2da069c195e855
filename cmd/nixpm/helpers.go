package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/nixpm/internal/log"
)

// showProgress reports whether a spinner may be drawn on stderr. Verbose
// command tracing shares stderr, so it turns the spinner off as well.
func showProgress(l *log.Logger) bool {
	if l.IsQuiet() || l.IsVerbose() {
		return false
	}
	return isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
