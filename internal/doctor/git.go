package doctor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/raphi011/nixpm/internal/cmd"
	"github.com/raphi011/nixpm/internal/git"
)

func (d *Doctor) checkGitRepo(ctx context.Context, r *reporter) error {
	r.section("Checking git repository:")

	dir, err := d.configDir()
	if err != nil {
		return err
	}

	repo := git.Repo{Runner: cmd.RunnerFunc(d.run), Dir: dir}

	r.label("Git repository status: ")
	res, err := repo.Status(ctx)
	switch {
	case err != nil:
		r.fail("Failed to check git status", "")
		return nil
	case !res.Success():
		r.fail("Not a git repository", "")
		return nil
	}
	r.pass("", "")

	r.label("Checking for uncommitted changes: ")
	dirty, err := repo.IsDirty(ctx)
	switch {
	case err != nil:
		r.fail("Failed to check for changes", err.Error())
	case dirty:
		r.warn("Uncommitted changes present")
	default:
		r.pass("Working directory clean", "")
	}
	return nil
}

// configDir returns the parent directory of the expanded Darwin packages
// path, which holds the configuration repository.
func (d *Doctor) configDir() (string, error) {
	path, err := d.Config.ExpandedPath(d.Config.DarwinPackagesPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigDir, err)
	}
	if path == "" {
		return "", ErrConfigDir
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if dir == path {
		// filesystem root has no parent
		return "", ErrConfigDir
	}
	return dir, nil
}
