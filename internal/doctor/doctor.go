package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/raphi011/nixpm/internal/cmd"
	"github.com/raphi011/nixpm/internal/config"
	"github.com/raphi011/nixpm/internal/log"
	"github.com/raphi011/nixpm/internal/platform"
)

// ErrConfigDir is returned by Run when the git repository directory cannot
// be derived from the Darwin packages path.
var ErrConfigDir = errors.New("could not determine config directory")

// Doctor runs the diagnostic checks. The zero value is not usable; create
// one with New and adjust the fields before calling Run.
type Doctor struct {
	Config   *config.Config
	Platform platform.Platform
	Runner   cmd.Runner
	Out      io.Writer

	// Timeout bounds every external command. Zero means no limit.
	Timeout time.Duration

	// Activity is called before a slow command with a short description and
	// returns a function called when the command finishes. Used to drive a
	// spinner; nil means no progress indication.
	Activity func(msg string) (stop func())
}

// New returns a Doctor for the running platform that executes real commands
// and writes its report to out.
func New(cfg *config.Config, out io.Writer) *Doctor {
	return &Doctor{
		Config:   cfg,
		Platform: platform.Current(),
		Runner:   cmd.Exec{},
		Out:      out,
		Timeout:  cfg.CommandTimeout(),
	}
}

// Run prints the report and returns the tally of check outcomes.
//
// Failed checks do not make Run return an error. It returns ErrConfigDir
// when the git directory cannot be derived, and the context error when ctx
// is cancelled; in both cases no further checks run.
func (d *Doctor) Run(ctx context.Context) (Summary, error) {
	r := newReporter(d.Out)
	l := log.FromContext(ctx)
	l.Debug("doctor", "platform", d.Platform, "timeout", d.Timeout)

	r.header("==> Checking configuration...")

	steps := []func(context.Context, *reporter) error{
		d.checkConfigPaths,
		d.checkCommands,
		d.checkGitRepo,
		d.checkSearch,
		d.checkPackageLists,
	}
	for _, step := range steps {
		if err := step(ctx, r); err != nil {
			r.flush()
			return r.summary, err
		}
		if err := ctx.Err(); err != nil {
			r.flush()
			return r.summary, err
		}
	}

	r.banner()
	l.Debug("doctor finished", "passed", r.summary.Passed, "warnings", r.summary.Warnings, "failures", r.summary.Failures)
	return r.summary, nil
}

// run executes a command under the configured timeout. A timeout is
// reported as "timed out after <d>".
func (d *Doctor) run(ctx context.Context, dir, name string, args ...string) (cmd.Result, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	res, err := d.Runner.Run(ctx, dir, name, args...)
	if err != nil && d.Timeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		return res, fmt.Errorf("timed out after %s", d.Timeout)
	}
	return res, err
}

// activity starts progress indication for msg and returns its stop function.
func (d *Doctor) activity(msg string) func() {
	if d.Activity == nil {
		return func() {}
	}
	if stop := d.Activity(msg); stop != nil {
		return stop
	}
	return func() {}
}
