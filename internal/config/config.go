package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DoctorConfig holds settings for "nixpm doctor"
type DoctorConfig struct {
	Timeout string `toml:"timeout"` // per-command timeout, e.g. "2m"; "0" disables
}

// ThemeConfig holds UI theme configuration
type ThemeConfig struct {
	Name string `toml:"name"` // "default", "dracula", "nord" or "none"
}

// Config holds the nixpm configuration.
// Package paths are kept as written (possibly starting with ~); use
// ExpandedPath to resolve them.
type Config struct {
	LinuxPackagesPath    string       `toml:"linux_packages_path"`
	DarwinPackagesPath   string       `toml:"darwin_packages_path"`
	HomebrewPackagesPath string       `toml:"homebrew_packages_path"`
	Doctor               DoctorConfig `toml:"doctor"`
	Theme                ThemeConfig  `toml:"theme"`
}

// ErrConfigExists is returned by Init when the config file is already present
var ErrConfigExists = errors.New("config file already exists")

// Defaults for an unconfigured installation
const (
	DefaultLinuxPackagesPath    = "~/.config/nix-config/linux/packages.nix"
	DefaultDarwinPackagesPath   = "~/.config/nix-config/darwin/packages.nix"
	DefaultHomebrewPackagesPath = "~/.config/nix-config/darwin/homebrew.nix"
	DefaultDoctorTimeout        = "2m"
)

// Environment variables that override config file values
const (
	EnvConfigPath           = "NIXPM_CONFIG"
	EnvLinuxPackagesPath    = "NIXPM_LINUX_PACKAGES"
	EnvDarwinPackagesPath   = "NIXPM_DARWIN_PACKAGES"
	EnvHomebrewPackagesPath = "NIXPM_HOMEBREW_PACKAGES"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		LinuxPackagesPath:    DefaultLinuxPackagesPath,
		DarwinPackagesPath:   DefaultDarwinPackagesPath,
		HomebrewPackagesPath: DefaultHomebrewPackagesPath,
		Doctor: DoctorConfig{
			Timeout: DefaultDoctorTimeout,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// ExpandedPath resolves a path template from this config into a usable path.
func (c *Config) ExpandedPath(template string) (string, error) {
	return ExpandPath(template)
}

// CommandTimeout returns the per-command timeout for doctor checks.
// Zero means no timeout. Values are validated by Load.
func (c *Config) CommandTimeout() time.Duration {
	d, err := parseTimeout(c.Doctor.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "packages.nix")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return home, nil
	}
	return path, nil
}

// Path returns the path to the config file.
// NIXPM_CONFIG takes precedence over ~/.config/nixpm/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nixpm", "config.toml"), nil
}

// Load reads config from Path().
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default()), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given file, then applies environment
// overrides. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return applyEnv(Default()), fmt.Errorf("failed to read config file: %w", err)
	}

	// Decoding into the defaults keeps unset keys at their default value
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return applyEnv(Default()), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return applyEnv(Default()), err
	}
	return cfg, nil
}

// applyEnv overrides package paths from the environment
func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvLinuxPackagesPath); v != "" {
		cfg.LinuxPackagesPath = v
	}
	if v := os.Getenv(EnvDarwinPackagesPath); v != "" {
		cfg.DarwinPackagesPath = v
	}
	if v := os.Getenv(EnvHomebrewPackagesPath); v != "" {
		cfg.HomebrewPackagesPath = v
	}
	return cfg
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns a pointer to Default() if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

const defaultConfig = `# nixpm configuration

# Package lists. Paths must be absolute or start with ~
# Environment overrides: NIXPM_LINUX_PACKAGES, NIXPM_DARWIN_PACKAGES,
# NIXPM_HOMEBREW_PACKAGES
#
# The directory containing darwin_packages_path is expected to be the git
# repository holding your configuration.
linux_packages_path = "~/.config/nix-config/linux/packages.nix"
darwin_packages_path = "~/.config/nix-config/darwin/packages.nix"
homebrew_packages_path = "~/.config/nix-config/darwin/homebrew.nix"

# Diagnostics ("nixpm doctor")
[doctor]
# Maximum time a single external command (git, nix search, ...) may run.
# Use "0" to wait forever.
timeout = "2m"

# Colors
[theme]
# Available: "default", "dracula", "nord", "none"
name = "default"
`

// DefaultConfigContent returns the commented default config file.
func DefaultConfigContent() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
