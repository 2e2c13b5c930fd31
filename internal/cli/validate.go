package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/startproject-labs/startproject/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a project file against the schema",
	Long: `Validate a YAML or TOML project file, as accepted by 'create --from',
and list every schema issue found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s %s\n", green("Valid"), path)
			return nil
		}

		fmt.Fprintf(out, "%s %s\n", yellow("Invalid"), path)
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(out, "  - %s\n", msg)
		}
		return fmt.Errorf("project file %s has %d issue(s)", path, len(result.Issues))
	},
}
