package cli

import (
	"github.com/spf13/cobra"
	"github.com/startproject-labs/startproject/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Python project skeletons: a directory named after the
project with a setup.py manifest inside it.

Run '` + branding.CLIName() + ` create <project_name>' to start a new project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
