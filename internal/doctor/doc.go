// Package doctor diagnoses a nixpm installation.
//
// [Doctor.Run] prints a report of five checks, in order:
//
//   - Configuration paths: the Linux, Darwin and Homebrew package lists exist.
//   - Required commands: git, nix, brew and make resolve on PATH.
//   - Git repository: the directory holding the Darwin package list is a git
//     repository, and its working tree is clean.
//   - Search: "nix search" (and "brew search" on macOS) run successfully.
//   - Package lists: the package lists parse and their sizes.
//
// Every check reports its own failures and the run continues. The only
// error Run returns for a broken setup is [ErrConfigDir], when the git
// repository directory cannot be derived from the Darwin package path.
//
// # Usage
//
//	d := doctor.New(cfg, os.Stdout)
//	d.Platform = platform.Current()
//	summary, err := d.Run(ctx)
//	if err == nil && !summary.Healthy() {
//		// at least one check failed
//	}
//
// External commands go through a [cmd.Runner], so tests substitute a fake
// and pin the platform to exercise the macOS-only checks anywhere.
package doctor
