package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/semrel/internal/config"
	"github.com/raveheart1/semrel/internal/errors"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .semrel.yml config",
	Long: `Write a fully commented .semrel.yml to the current directory so the
available options are discoverable. Existing files are left alone unless
--force is given.`,
	Example: `  semrel init
  semrel init --force`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func init() {
	initCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command) error {
	if _, err := os.Stat(config.ProjectConfigName); err == nil && !initForceFlag {
		return errors.New(errors.Argument,
			fmt.Sprintf("%s already exists", config.ProjectConfigName),
			"Pass --force to overwrite it")
	}

	if err := os.WriteFile(config.ProjectConfigName, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.ProjectConfigName)
	return nil
}
