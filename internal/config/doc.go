// Package config handles loading and validation of nixpm configuration.
//
// Configuration is read from ~/.config/nixpm/config.toml (or the file named
// by NIXPM_CONFIG) with environment variable overrides for package paths.
//
// # Configuration Sources (highest priority first)
//
//   - NIXPM_LINUX_PACKAGES, NIXPM_DARWIN_PACKAGES, NIXPM_HOMEBREW_PACKAGES
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - linux_packages_path: Nix file with environment.systemPackages on Linux
//   - darwin_packages_path: Nix file with environment.systemPackages on macOS;
//     its directory is the configuration git repository
//   - homebrew_packages_path: Nix file with homebrew.brews and homebrew.casks
//   - doctor.timeout: per-command timeout for diagnostics (default: "2m")
//   - theme.name: color theme (default, dracula, nord, none)
//
// # Path Validation
//
// Package paths must be absolute or start with ~ (no relative paths like
// "packages.nix") to avoid confusion about the working directory. Paths are
// stored as written and expanded on use with [Config.ExpandedPath].
package config
