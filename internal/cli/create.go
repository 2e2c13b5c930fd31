package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/startproject-labs/startproject/internal/branding"
	"github.com/startproject-labs/startproject/internal/config"
	"github.com/startproject-labs/startproject/internal/manifest"
	"github.com/startproject-labs/startproject/internal/project"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

var (
	createPackageName     string
	createVersion         string
	createDescription     string
	createAuthor          string
	createAuthorEmail     string
	createInstallRequires string
	createDestDir         string
	createFrom            string
)

func init() {
	defaults := project.DefaultValues()
	f := createCmd.Flags()
	f.StringVar(&createPackageName, "package_name", "", "Package name used for imports (default: project name with dashes converted to underscores)")
	f.StringVar(&createVersion, "version", defaults.Version, "Starting version number")
	f.StringVar(&createDescription, "description", defaults.Description, "A one-line summary about the project")
	f.StringVar(&createAuthor, "author", defaults.Author, "Author name of this project")
	f.StringVar(&createAuthorEmail, "author_email", defaults.AuthorEmail, "Author email of this project")
	f.StringVar(&createInstallRequires, "install_requires", "", "Comma-separated list of required packages")
	f.StringVar(&createDestDir, "dest_dir", "", "Directory to create the project in (default: current directory)")
	f.StringVar(&createFrom, "from", "", "Read project fields from a YAML or TOML file (a relative dest_dir is resolved against the file's directory)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project_name>",
	Short: "Create a project directory with a setup.py",
	Long: `Create <project_name> in the destination directory and write a setup.py into it.

Unless --package_name is given, the project name is also used as the package
name, with dashes converted to underscores. The package name must be a valid
Python identifier. The directory keeps the project name as given.

Each field is taken from the first source that sets it: flags, the --from
project file, user settings (` + branding.CLIName() + ` config), built-in defaults.
A flag given an empty value still counts as set.`,
	Example: `  ` + branding.CLIName() + ` create sample
  ` + branding.CLIName() + ` create my-lib --author "Jane Doe" --install_requires requests,click
  ` + branding.CLIName() + ` create my-lib --from project.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return err
	}

	opts := optionsFromFlags(cmd.Flags())
	if createFrom != "" {
		pf, err := manifest.ParseFile(createFrom)
		if err != nil {
			return err
		}
		opts = opts.WithFallback(pf.Options())
	}
	opts = opts.WithFallback(config.ProjectDefaults())

	result, err := project.Create(args[0], opts)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// optionsFromFlags copies only the flags the user set, so that unset flags
// fall through to the project file and user settings.
func optionsFromFlags(flags *pflag.FlagSet) project.Options {
	var opts project.Options
	if flags.Changed("package_name") {
		opts.PackageName = project.String(createPackageName)
	}
	if flags.Changed("version") {
		opts.Version = project.String(createVersion)
	}
	if flags.Changed("description") {
		opts.Description = project.String(createDescription)
	}
	if flags.Changed("author") {
		opts.Author = project.String(createAuthor)
	}
	if flags.Changed("author_email") {
		opts.AuthorEmail = project.String(createAuthorEmail)
	}
	if flags.Changed("install_requires") {
		opts.InstallRequires = parseRequirements(createInstallRequires)
	}
	if flags.Changed("dest_dir") {
		opts.DestDir = project.String(createDestDir)
	}
	return opts
}

// parseRequirements splits a comma-separated list. Empty input yields an
// empty, non-nil slice.
func parseRequirements(s string) []string {
	parts := strings.Split(s, ",")
	reqs := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			reqs = append(reqs, trimmed)
		}
	}
	return reqs
}

func printResult(w io.Writer, result *project.Result) {
	fmt.Fprintf(w, "%s %s at %s/ (package %s)\n", green("Created"), result.ProjectName, result.ProjectDir, result.Config.Name)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Warnings:"))
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}
