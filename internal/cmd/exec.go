package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/nixpm/internal/log"
)

// Result is the captured outcome of a process that ran to completion.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// StderrText returns trimmed stderr, for use in messages.
func (r Result) StderrText() string {
	return strings.TrimSpace(string(r.Stderr))
}

// Runner runs a named command with args in dir and captures its output.
// The error is non-nil only when the process could not be started or was
// stopped by ctx.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, dir, name string, args ...string) (Result, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	return f(ctx, dir, name, args...)
}

// Exec is the os/exec backed Runner.
type Exec struct{}

// Run executes name with args. An empty dir runs in the current working
// directory. Commands are logged through the context logger in verbose mode.
func (Exec) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		// A killed process reports an ExitError; the context error is the
		// real cause.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return Result{}, err
	}
	return res, nil
}
