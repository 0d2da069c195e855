package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/nixpm/internal/log"
	"github.com/raphi011/nixpm/internal/nix"
)

// Attribute paths read from the package lists
const (
	SystemPackagesAttr = "environment.systemPackages"
	BrewsAttr          = "homebrew.brews"
	CasksAttr          = "homebrew.casks"
)

func (d *Doctor) checkPackageLists(ctx context.Context, r *reporter) error {
	r.section("Checking package lists:")

	template := d.Config.LinuxPackagesPath
	if d.Platform.IsDarwin() {
		template = d.Config.DarwinPackagesPath
	}

	r.label("Reading Nix packages: ")
	if src, err := d.readList(ctx, template); err != nil {
		r.fail("Failed to read file", err.Error())
	} else {
		countList(r, src, SystemPackagesAttr, "packages")
	}

	if !d.Platform.IsDarwin() {
		return nil
	}

	// Both Homebrew lists live in one file, read once.
	src, readErr := d.readList(ctx, d.Config.HomebrewPackagesPath)

	lists := []struct {
		label string
		attr  string
		noun  string
	}{
		{"Reading Homebrew formulae: ", BrewsAttr, "formulae"},
		{"Reading Homebrew casks: ", CasksAttr, "casks"},
	}
	for _, l := range lists {
		r.label("%s", l.label)
		if readErr != nil {
			r.fail("Failed to read file", readErr.Error())
			continue
		}
		countList(r, src, l.attr, l.noun)
	}
	return nil
}

func (d *Doctor) readList(ctx context.Context, template string) (string, error) {
	path, err := d.Config.ExpandedPath(template)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("read package list", "path", path, "bytes", len(data))
	return string(data), nil
}

// countList completes the pending label with the size of the list at attr.
func countList(r *reporter, src, attr, noun string) {
	values, err := nix.ArrayValues(src, attr)
	if err != nil {
		r.fail("Failed to parse", explainParseError(src, err))
		return
	}
	r.pass("", fmt.Sprintf("%d %s found", len(values), noun))
}
