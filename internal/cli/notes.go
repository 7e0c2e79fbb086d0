package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notesCurrentFlag string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Render the release notes document",
	Long: `Render the categorized markdown release notes for the commits recorded
since the last release tag.

Commits are grouped by conventional-commit type in a fixed order, with
breaking changes listed first regardless of their declared type. The
output is deterministic for a given history.`,
	Example: `  # Notes for the pending release
  semrel notes

  # Notes against an explicit baseline
  semrel notes --current v1.2.3

  # Pipe into a file for a release PR
  semrel notes > RELEASE_NOTES.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, _, err := evaluate(notesCurrentFlag)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), plan.Notes)
		return nil
	},
}

func init() {
	notesCmd.GroupID = GroupRelease
	rootCmd.AddCommand(notesCmd)

	notesCmd.Flags().StringVar(&notesCurrentFlag, "current", "", "Baseline version override (default: latest release tag)")
}
