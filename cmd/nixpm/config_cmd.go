package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/nixpm/internal/config"
	"github.com/raphi011/nixpm/internal/output"
	"github.com/raphi011/nixpm/internal/ui/static"
	"github.com/raphi011/nixpm/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage nixpm configuration.

Config file: ~/.config/nixpm/config.toml (override with NIXPM_CONFIG)`,
		Example: `  nixpm config init   # Create default config
  nixpm config show   # Show effective config
  nixpm config path   # Print config file location`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  nixpm config init      # Create config
  nixpm config init -f   # Overwrite existing config
  nixpm config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfigContent())
				return nil
			}

			path, err := config.Init(force)
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Lists each package list with its configured value, the expanded path and
whether the file exists. Environment overrides are already applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			path, err := config.Path()
			if err != nil {
				return err
			}
			note := ""
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				note = styles.MutedStyle.Render(" (not found, using defaults)")
			}
			out.Printf("Config file: %s%s\n\n", path, note)

			out.Print(static.RenderPaths(pathRows(cfg)))
			out.Println()
			out.Printf("doctor.timeout: %s\n", cfg.Doctor.Timeout)
			out.Printf("theme.name:     %s\n", cfg.Theme.Name)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}

// pathRows describes the configured package lists in config file order.
func pathRows(cfg *config.Config) []static.PathRow {
	settings := []struct {
		key, value string
	}{
		{"linux_packages_path", cfg.LinuxPackagesPath},
		{"darwin_packages_path", cfg.DarwinPackagesPath},
		{"homebrew_packages_path", cfg.HomebrewPackagesPath},
	}

	rows := make([]static.PathRow, 0, len(settings))
	for _, s := range settings {
		row := static.PathRow{Setting: s.key, Template: s.value}
		if expanded, err := cfg.ExpandedPath(s.value); err == nil && expanded != "" {
			row.Expanded = expanded
			_, statErr := os.Stat(expanded)
			row.Exists = statErr == nil
		}
		rows = append(rows, row)
	}
	return rows
}
