// Package git queries the configuration repository through the git CLI.
//
// Commands go through a [cmd.Runner], so callers decide how git is executed
// (timeouts, verbose logging) and tests can answer without a real repository.
//
//   - [Repo.Status]: whether the directory is inside a git work tree
//   - [Repo.IsDirty]: whether there are uncommitted changes or untracked files
package git
