package doctor

import (
	"context"
	"os"

	"github.com/raphi011/nixpm/internal/log"
)

func (d *Doctor) checkConfigPaths(ctx context.Context, r *reporter) error {
	r.section("Checking configuration paths:")

	paths := []struct {
		name     string
		template string
	}{
		{"Linux packages path", d.Config.LinuxPackagesPath},
		{"Darwin packages path", d.Config.DarwinPackagesPath},
		{"Homebrew packages path", d.Config.HomebrewPackagesPath},
	}

	for _, p := range paths {
		expanded, err := d.Config.ExpandedPath(p.template)
		if err != nil {
			r.label("%s (%s): ", p.name, p.template)
			r.fail("Could not expand path", err.Error())
			continue
		}

		r.label("%s (%s): ", p.name, expanded)
		if _, err := os.Stat(expanded); err != nil {
			log.FromContext(ctx).Debug("stat failed", "path", expanded, "err", err)
			r.fail("File not found", "")
			continue
		}
		r.pass("", "")
	}
	return nil
}
