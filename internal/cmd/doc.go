// Package cmd is the process execution boundary for nixpm.
//
// Diagnostics shell out to git, nix, brew and the platform's executable
// lookup command instead of using Go libraries, so results match what the
// user's own shell would see (PATH, credential helpers, nix.conf, etc.).
//
// # Usage
//
//	var r cmd.Runner = cmd.Exec{}
//	res, err := r.Run(ctx, repoDir, "git", "status", "--porcelain")
//	if err != nil {
//	    // git could not be started, or ctx was cancelled / timed out
//	}
//	if res.ExitCode != 0 {
//	    // git ran and reported failure
//	}
//
// A non-zero exit status is not an error: callers that need to tell "ran
// and failed" apart from "could not run" inspect [Result.ExitCode].
// Tests substitute their own [Runner] to avoid touching real binaries.
package cmd
