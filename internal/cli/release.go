package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/raveheart1/semrel/internal/config"
	"github.com/raveheart1/semrel/internal/errors"
	"github.com/raveheart1/semrel/internal/github"
	"github.com/raveheart1/semrel/internal/output"
	"github.com/raveheart1/semrel/internal/release"
)

var (
	releasePublishFlag bool
	releaseDryRunFlag  bool
	releaseFromAPIFlag bool
	releaseCurrentFlag string
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Evaluate and optionally publish a release",
	Long: `Evaluate the pending release: parse the commits since the last release,
resolve the next version, and render the release notes.

Without --publish this is a dry run that prints the plan and the notes
document. With --publish the release is created on GitHub using the
configured remote and the SEMREL_GITHUB_TOKEN credential.

History is read from the local repository by default; --from-api reads
it from the GitHub API instead, which avoids needing a full clone.`,
	Example: `  # Dry run: show what would be released
  semrel release

  # Publish the release to GitHub
  semrel release --publish

  # Evaluate from GitHub API history (e.g. in a shallow CI checkout)
  semrel release --from-api --publish`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd)
	},
}

func init() {
	releaseCmd.GroupID = GroupRelease
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().BoolVar(&releasePublishFlag, "publish", false, "Create the release on GitHub")
	releaseCmd.Flags().BoolVar(&releaseDryRunFlag, "dry-run", false, "Never publish, even with --publish set")
	releaseCmd.Flags().BoolVar(&releaseFromAPIFlag, "from-api", false, "Read commit history from the GitHub API instead of the local repository")
	releaseCmd.Flags().StringVar(&releaseCurrentFlag, "current", "", "Baseline version override (default: latest release tag)")
}

func runRelease(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plan, err := releasePlan(cmd, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output.PrintPlanSummary(out, plan)

	if !plan.ReleaseNeeded {
		// Zero relevant commits is a successful outcome, not a failure.
		output.PrintNoRelease(out)
		return nil
	}

	if releaseDryRunFlag || !releasePublishFlag {
		fmt.Fprintln(out)
		fmt.Fprint(out, plan.Notes)
		return nil
	}

	if cfg.GithubToken == "" {
		return errors.NewMissingTokenError()
	}
	client, err := remoteClient(cfg)
	if err != nil {
		return err
	}

	spin := newSpinner(fmt.Sprintf(" Publishing release %s...", plan.Tag))
	spin.Start()
	url, err := client.PublishRelease(cmd.Context(), github.Release{
		Tag:        plan.Tag,
		Name:       plan.Tag,
		Notes:      plan.Notes,
		Draft:      cfg.Draft,
		Prerelease: cfg.Prerelease,
	})
	spin.Stop()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Remote,
			"publishing release",
			"Check that SEMREL_GITHUB_TOKEN has repo scope",
			"Check that the tag does not already exist")
	}

	output.PrintPublished(out, url)
	return nil
}

// releasePlan computes the plan from the source selected by --from-api.
func releasePlan(cmd *cobra.Command, cfg *config.Configuration) (release.Plan, error) {
	if releaseFromAPIFlag {
		spin := newSpinner(" Fetching history from GitHub...")
		spin.Start()
		plan, err := evaluateRemote(cmd.Context(), cfg, releaseCurrentFlag)
		spin.Stop()
		return plan, err
	}
	plan, _, err := evaluate(releaseCurrentFlag)
	return plan, err
}

func newSpinner(suffix string) *spinner.Spinner {
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = suffix
	return spin
}
