//go:build integration

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs git in dir and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
	}
}

// setupConfigRepo creates a nix configuration repository holding files
// (relative path to content) with everything committed. Returns the repo path.
func setupConfigRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	repoPath := filepath.Join(resolvePath(t, t.TempDir()), "nix-config")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGit(t, repoPath, "init")
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	for name, content := range files {
		path := filepath.Join(repoPath, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	runGit(t, repoPath, "add", ".")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// stubCommands puts shell scripts named after each command on PATH. Each
// stub exits with the code in $NIXPM_STUB_EXIT (default 0).
func stubCommands(t *testing.T, names ...string) {
	t.Helper()

	bin := t.TempDir()
	script := "#!/bin/sh\nexit ${NIXPM_STUB_EXIT:-0}\n"
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(bin, name), []byte(script), 0755); err != nil {
			t.Fatalf("failed to write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}
