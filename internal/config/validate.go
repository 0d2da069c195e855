package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"default", "dracula", "nord", "none"}
)

// Validate checks all configured values.
func (c *Config) Validate() error {
	if err := ValidatePath(c.LinuxPackagesPath, "linux_packages_path"); err != nil {
		return err
	}
	if err := ValidatePath(c.DarwinPackagesPath, "darwin_packages_path"); err != nil {
		return err
	}
	if err := ValidatePath(c.HomebrewPackagesPath, "homebrew_packages_path"); err != nil {
		return err
	}
	if _, err := parseTimeout(c.Doctor.Timeout); err != nil {
		return err
	}
	return validateEnum(c.Theme.Name, "theme.name", ValidThemeNames)
}

// parseTimeout parses doctor.timeout. Empty and "0" mean no timeout.
func parseTimeout(s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid doctor.timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid doctor.timeout %q: must not be negative", s)
	}
	return d, nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
