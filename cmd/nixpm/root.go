package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/nixpm/internal/config"
	"github.com/raphi011/nixpm/internal/log"
	"github.com/raphi011/nixpm/internal/output"
	"github.com/raphi011/nixpm/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// newRootCmd builds the command tree. Commands read the config and the
// printer from the context passed to ExecuteContext.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nixpm",
		Short: "Declarative package manager for Nix and Homebrew",
		Long: `nixpm manages package lists kept in a git-tracked Nix configuration.

Linux packages come from nixpkgs; on macOS packages come from nixpkgs
(nix-darwin) and Homebrew.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			// Logger depends on parsed flags (stderr for diagnostics)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet)))
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(cfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &cfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, output.New(os.Stdout))

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'nixpm -h' for help")
		cancel()
		os.Exit(1)
	}
}
