// Package cli implements the semrel command-line interface on cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/semrel/internal/config"
	"github.com/raveheart1/semrel/internal/errors"
	"github.com/raveheart1/semrel/internal/gitlog"
)

// Command group IDs for help output organization.
const (
	GroupGettingStarted = "getting-started"
	GroupRelease        = "release"
	GroupConfiguration  = "configuration"
)

var (
	configFlag string
	repoFlag   string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "semrel",
	Short: "Semantic versions and release notes from conventional commits",
	Long: `semrel computes the next semantic version for a repository from the
conventional commits recorded since its last release, renders categorized
release notes, and can publish the result as a GitHub release.

Commit headers of the form "type(scope)!: description" drive the version
decision: breaking changes bump the major version, feat commits the minor,
fix commits the patch. Everything else leaves the version untouched.

Source: https://github.com/raveheart1/semrel`,
	Example: `  # Show the next version for the current repository
  semrel next

  # Print the release notes document
  semrel notes

  # Evaluate and publish a GitHub release
  semrel release --publish`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			gitlog.SetDebugLogger(func(format string, a ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
			})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the project config file")
	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", "", "Path to the git repository (default: working directory)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)
}

// Execute runs the root command. Structured errors are printed to
// stderr; ExitErrors pass through silently so main can map them to a
// process exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if _, ok := err.(*ExitError); ok {
		return err
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintSimpleError(err, errors.Runtime)
	}
	return err
}

// loadConfig loads configuration honoring the global flags.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			fmt.Sprintf("Check the syntax of %s", config.ProjectConfigName),
			"Run 'semrel init' to generate a fresh config")
	}
	if repoFlag != "" {
		cfg.RepoPath = repoFlag
	}
	return cfg, nil
}
