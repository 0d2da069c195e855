package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/nixpm/internal/cmd"
)

// Repo runs git commands in Dir.
type Repo struct {
	Runner cmd.Runner
	Dir    string
}

// Status runs "git status". A non-zero exit code in the result, with a nil
// error, means Dir is not a git repository.
func (r Repo) Status(ctx context.Context) (cmd.Result, error) {
	return r.Runner.Run(ctx, r.Dir, "git", "status")
}

// IsDirty returns true if the work tree has uncommitted changes or untracked
// files. A failing "git status --porcelain" is an error, not clean.
func (r Repo) IsDirty(ctx context.Context) (bool, error) {
	res, err := r.Runner.Run(ctx, r.Dir, "git", "status", "--porcelain")
	if err != nil {
		return false, err
	}
	if !res.Success() {
		return false, exitError(res)
	}
	return strings.TrimSpace(string(res.Stdout)) != "", nil
}

// exitError describes a non-zero exit, preferring the first line of stderr.
func exitError(res cmd.Result) error {
	if msg := res.StderrText(); msg != "" {
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = msg[:i]
		}
		return errors.New(msg)
	}
	return fmt.Errorf("exit status %d", res.ExitCode)
}
