package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if cfg.LinuxPackagesPath != DefaultLinuxPackagesPath {
		t.Errorf("LinuxPackagesPath = %q, want %q", cfg.LinuxPackagesPath, DefaultLinuxPackagesPath)
	}
	if cfg.DarwinPackagesPath != DefaultDarwinPackagesPath {
		t.Errorf("DarwinPackagesPath = %q, want %q", cfg.DarwinPackagesPath, DefaultDarwinPackagesPath)
	}
	if cfg.HomebrewPackagesPath != DefaultHomebrewPackagesPath {
		t.Errorf("HomebrewPackagesPath = %q, want %q", cfg.HomebrewPackagesPath, DefaultHomebrewPackagesPath)
	}
	if got := cfg.CommandTimeout(); got != 2*time.Minute {
		t.Errorf("CommandTimeout() = %v, want 2m", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestDefaultConfigContentMatchesDefault(t *testing.T) {
	t.Parallel()
	var cfg Config
	if _, err := toml.Decode(DefaultConfigContent(), &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("default config file = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) error = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFrom(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_File(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
linux_packages_path = "/etc/nix-config/linux.nix"
darwin_packages_path = "~/nix/darwin.nix"

[doctor]
timeout = "30s"

[theme]
name = "nord"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.LinuxPackagesPath != "/etc/nix-config/linux.nix" {
		t.Errorf("LinuxPackagesPath = %q", cfg.LinuxPackagesPath)
	}
	if cfg.DarwinPackagesPath != "~/nix/darwin.nix" {
		t.Errorf("DarwinPackagesPath = %q, want unexpanded template", cfg.DarwinPackagesPath)
	}
	// unset keys keep their default
	if cfg.HomebrewPackagesPath != DefaultHomebrewPackagesPath {
		t.Errorf("HomebrewPackagesPath = %q, want default", cfg.HomebrewPackagesPath)
	}
	if got := cfg.CommandTimeout(); got != 30*time.Second {
		t.Errorf("CommandTimeout() = %v, want 30s", got)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("Theme.Name = %q, want nord", cfg.Theme.Name)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", `linux_packages_path = `, "failed to parse config file"},
		{"relative linux path", `linux_packages_path = "packages.nix"`, "linux_packages_path must be absolute"},
		{"relative darwin path", `darwin_packages_path = "./darwin.nix"`, "darwin_packages_path must be absolute"},
		{"relative homebrew path", `homebrew_packages_path = "../brew.nix"`, "homebrew_packages_path must be absolute"},
		{"bad timeout", "[doctor]\ntimeout = \"soon\"", "invalid doctor.timeout"},
		{"negative timeout", "[doctor]\ntimeout = \"-1s\"", "must not be negative"},
		{"unknown theme", "[theme]\nname = \"solarized\"", `invalid theme.name "solarized"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := LoadFrom(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("LoadFrom() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFrom() error = %q, want to contain %q", err, tt.wantErr)
			}
			if cfg != Default() {
				t.Errorf("LoadFrom() on error = %+v, want defaults", cfg)
			}
		})
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLinuxPackagesPath, "/env/linux.nix")
	t.Setenv(EnvDarwinPackagesPath, "/env/darwin.nix")
	t.Setenv(EnvHomebrewPackagesPath, "/env/homebrew.nix")

	path := writeConfig(t, `linux_packages_path = "/file/linux.nix"`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.LinuxPackagesPath != "/env/linux.nix" {
		t.Errorf("LinuxPackagesPath = %q, want env override", cfg.LinuxPackagesPath)
	}
	if cfg.DarwinPackagesPath != "/env/darwin.nix" {
		t.Errorf("DarwinPackagesPath = %q, want env override", cfg.DarwinPackagesPath)
	}
	if cfg.HomebrewPackagesPath != "/env/homebrew.nix" {
		t.Errorf("HomebrewPackagesPath = %q, want env override", cfg.HomebrewPackagesPath)
	}
}

func TestLoadFrom_EnvOverrideValidated(t *testing.T) {
	t.Setenv(EnvDarwinPackagesPath, "relative/darwin.nix")

	if _, err := LoadFrom(writeConfig(t, "")); err == nil {
		t.Error("LoadFrom() with relative env path error = nil, want error")
	}
}

func TestPath(t *testing.T) {
	t.Run("NIXPM_CONFIG wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/tmp/custom-nixpm.toml")
		got, err := Path()
		if err != nil {
			t.Fatalf("Path() error = %v", err)
		}
		if got != "/tmp/custom-nixpm.toml" {
			t.Errorf("Path() = %q, want %q", got, "/tmp/custom-nixpm.toml")
		}
	})

	t.Run("default location", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvConfigPath, "")
		t.Setenv("HOME", home)
		got, err := Path()
		if err != nil {
			t.Fatalf("Path() error = %v", err)
		}
		want := filepath.Join(home, ".config", "nixpm", "config.toml")
		if got != want {
			t.Errorf("Path() = %q, want %q", got, want)
		}
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv(EnvConfigPath, path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init(false) error = %v", err)
	}
	if got != path {
		t.Errorf("Init() path = %q, want %q", got, path)
	}

	if _, err := Init(false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("Init(false) on existing file error = %v, want ErrConfigExists", err)
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(true) on existing file error = %v, want nil", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom(initialized) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("initialized config = %+v, want defaults", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/nix/darwin.nix", filepath.Join(home, "nix", "darwin.nix")},
		{"/etc/nixos/configuration.nix", "/etc/nixos/configuration.nix"},
		{"~other/file.nix", "~other/file.nix"},
	}

	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Errorf("ExpandPath(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	cfg := Default()
	got, err := cfg.ExpandedPath(cfg.DarwinPackagesPath)
	if err != nil {
		t.Fatalf("ExpandedPath() error = %v", err)
	}
	if want := filepath.Join(home, ".config", "nix-config", "darwin", "packages.nix"); got != want {
		t.Errorf("ExpandedPath() = %q, want %q", got, want)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~", false},
		{"~/nix/packages.nix", false},
		{"/etc/nixos/packages.nix", false},
		{"packages.nix", true},
		{".", true},
		{"../packages.nix", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "linux_packages_path")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestCommandTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
	}{
		{"", 0},
		{"0", 0},
		{"90s", 90 * time.Second},
		{"1h", time.Hour},
		{"garbage", 0},
	}

	for _, tt := range tests {
		cfg := Config{Doctor: DoctorConfig{Timeout: tt.timeout}}
		if got := cfg.CommandTimeout(); got != tt.want {
			t.Errorf("CommandTimeout(%q) = %v, want %v", tt.timeout, got, tt.want)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}

	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{LinuxPackagesPath: "/x/linux.nix"}
	ctx := WithConfig(context.Background(), cfg)
	if got := FromContext(ctx); got != cfg {
		t.Error("FromContext did not return the stored config")
	}

	if got := FromContext(context.Background()); *got != Default() {
		t.Errorf("FromContext(empty) = %+v, want defaults", *got)
	}
}
