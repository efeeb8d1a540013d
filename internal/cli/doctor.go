package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mqtt-plugin/libstage/internal/config"
	"github.com/mqtt-plugin/libstage/internal/manifest"
	"github.com/mqtt-plugin/libstage/internal/platform"
	"github.com/mqtt-plugin/libstage/internal/rules"
)

var (
	doctorAll     bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false, "Check every supported platform, not just the target")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a project file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the third-party library layout",
	Long: `Doctor verifies that the third-party library directory provides every include
path, library search path and runtime artifact the target platform needs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failures := 0

		if checkManifest != "" {
			n, err := runManifestCheck(out, checkManifest)
			if err != nil {
				return err
			}
			failures += n
		}

		s := config.Current()
		targets := []platform.Target{currentTarget(s)}
		if doctorAll {
			targets = platform.All()
		}
		for _, t := range targets {
			failures += runLayoutCheck(out, t, s)
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

func runLayoutCheck(out io.Writer, t platform.Target, s config.Settings) int {
	results := rules.Check(t, s.Layout())
	if len(results) == 0 {
		fmt.Fprintf(out, "[SKIP] %s: platform not supported\n", t.ID())
		return 0
	}
	for _, r := range results {
		if r.OK {
			fmt.Fprintf(out, "[OK]   %s %s: %s\n", t.ID(), r.Kind, r.Path)
			continue
		}
		fmt.Fprintf(out, "[FAIL] %s %s: %s (%s)\n", t.ID(), r.Kind, r.Path, r.Detail)
	}
	return rules.Failed(results)
}

func runManifestCheck(out io.Writer, path string) (int, error) {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return 0, fmt.Errorf("validating %s: %w", path, err)
	}
	if result.Valid {
		fmt.Fprintf(out, "[OK]   project file %s is valid\n", path)
		return 0, nil
	}
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(out, "[FAIL] project file %s: %s: %s\n", path, loc, issue.Message)
	}
	return len(result.Issues), nil
}
