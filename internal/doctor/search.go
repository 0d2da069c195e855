package doctor

import (
	"context"
	"fmt"
)

// searchQuery is the package name used to smoke-test the search backends.
const searchQuery = "git"

// nixSearchArgs are the arguments for a flake-enabled JSON nixpkgs search.
func nixSearchArgs(query string) []string {
	return []string{
		"--extra-experimental-features", "nix-command",
		"--extra-experimental-features", "flakes",
		"search", "nixpkgs", query,
		"--json",
	}
}

func (d *Doctor) checkSearch(ctx context.Context, r *reporter) error {
	r.section("Testing search functionality:")

	r.label("Testing Nix search: ")
	d.checkBackend(ctx, r, "nix search", "Searching nixpkgs", "nix", nixSearchArgs(searchQuery)...)

	if d.Platform.IsDarwin() {
		r.label("Testing Homebrew search: ")
		d.checkBackend(ctx, r, "brew search", "Searching Homebrew", "brew", "search", searchQuery)
	}
	return nil
}

// checkBackend completes the pending label with the search outcome. Only
// the exit status counts; results are not inspected.
func (d *Doctor) checkBackend(ctx context.Context, r *reporter, what, activity, name string, args ...string) {
	stop := d.activity(activity)
	res, err := d.run(ctx, "", name, args...)
	stop()

	switch {
	case err != nil:
		r.fail("Search failed", fmt.Sprintf("failed to execute %s: %v", what, err))
	case !res.Success():
		r.fail("Search returned no results", "")
	default:
		r.pass("", "")
	}
}
