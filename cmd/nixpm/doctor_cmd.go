package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/nixpm/internal/config"
	"github.com/raphi011/nixpm/internal/doctor"
	"github.com/raphi011/nixpm/internal/log"
	"github.com/raphi011/nixpm/internal/output"
	"github.com/raphi011/nixpm/internal/platform"
	"github.com/raphi011/nixpm/internal/ui/progress"
)

func newDoctorCmd() *cobra.Command {
	var (
		strict       bool
		timeout      time.Duration
		platformName string
		copyReport   bool
	)

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the nixpm setup for problems",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Check the nixpm setup for problems.

Checks:
- Configured package list files exist
- Required commands are installed (git, nix, brew, make)
- The configuration directory is a clean git repository
- nix search (and brew search on macOS) work
- Package lists can be parsed

Failed checks are reported but do not change the exit status unless
--strict is given.`,
		Example: `  nixpm doctor                    # Run all checks
  nixpm doctor --strict           # Exit non-zero if a check fails
  nixpm doctor --timeout 30s      # Give up on slow commands sooner
  nixpm doctor --platform darwin  # Check the macOS setup from Linux
  nixpm doctor --copy             # Copy the report to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			d := doctor.New(cfg, out.Writer())

			if cmd.Flags().Changed("timeout") {
				if timeout < 0 {
					return fmt.Errorf("--timeout must not be negative, got %s", timeout)
				}
				d.Timeout = timeout
			}

			if platformName != "" {
				p, err := platform.Parse(platformName)
				if err != nil {
					return err
				}
				d.Platform = p
			}

			var report bytes.Buffer
			if copyReport {
				d.Out = io.MultiWriter(out.Writer(), &colorprofile.Writer{Forward: &report, Profile: colorprofile.NoTTY})
			}

			if showProgress(l) {
				d.Activity = progress.Activity(os.Stderr)
			}

			summary, err := d.Run(ctx)
			if err != nil {
				return err
			}

			if copyReport {
				if err := clipboard.WriteAll(report.String()); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Println("Report copied to clipboard")
				}
			}

			if strict && !summary.Healthy() {
				return fmt.Errorf("%d check(s) failed", summary.Failures)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any check fails")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-command timeout, 0 waits forever (default from config)")
	cmd.Flags().StringVar(&platformName, "platform", "", "Check as if running on this OS (darwin, linux)")
	cmd.Flags().BoolVar(&copyReport, "copy", false, "Copy the report to the clipboard without colors")

	cmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return platform.ValidOverrides, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
