package doctor

import "context"

// RequiredCommand is an executable nixpm shells out to.
type RequiredCommand struct {
	Name    string
	Purpose string
}

// RequiredCommands lists the executables checked by the doctor, in order.
var RequiredCommands = []RequiredCommand{
	{"git", "Required for version control"},
	{"nix", "Required for package management"},
	{"brew", "Required for Homebrew package management (macOS only)"},
	{"make", "Required for running installation commands"},
}

func (d *Doctor) checkCommands(ctx context.Context, r *reporter) error {
	r.section("Checking required commands:")

	lookup := d.Platform.LookupCommand()
	for _, c := range RequiredCommands {
		r.label("%-10s (%s): ", c.Name, c.Purpose)

		res, err := d.run(ctx, "", lookup, c.Name)
		switch {
		case err != nil:
			r.fail("Failed to check", "")
		case !res.Success():
			r.fail("Not found", "")
		default:
			r.pass("", "")
		}
	}
	return nil
}
