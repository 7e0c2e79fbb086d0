package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	nextCurrentFlag         string
	nextFailOnUnchangedFlag bool
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Compute the next semantic version",
	Long: `Compute the next semantic version from the conventional commits
recorded since the last release tag.

The baseline is the highest semver tag in the repository, or the
configured initial_version when no tag exists. Use --current to supply
the baseline explicitly.`,
	Example: `  # Next version from the latest tag
  semrel next

  # Next version against an explicit baseline
  semrel next --current v1.2.3

  # Exit with code 2 when nothing warrants a release (for CI gates)
  semrel next --fail-on-unchanged`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNext(cmd)
	},
}

func init() {
	nextCmd.GroupID = GroupRelease
	rootCmd.AddCommand(nextCmd)

	nextCmd.Flags().StringVar(&nextCurrentFlag, "current", "", "Baseline version override (default: latest release tag)")
	nextCmd.Flags().BoolVar(&nextFailOnUnchangedFlag, "fail-on-unchanged", false, "Exit non-zero when no release is needed")
}

func runNext(cmd *cobra.Command) error {
	plan, cfg, err := evaluate(nextCurrentFlag)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cfg.TagPrefix+plan.NextVersion.String())

	if nextFailOnUnchangedFlag && !plan.ReleaseNeeded {
		return NewExitError(ExitNoRelease)
	}
	return nil
}
