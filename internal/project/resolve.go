package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/startproject-labs/startproject/internal/scaffold"
)

// Resolve validates projectName and opts and returns the manifest
// configuration together with the directory the project will live in.
// It has no side effects beyond reading the working directory when
// opts.DestDir is unset or empty.
func Resolve(projectName string, opts Options) (*scaffold.ProjectConfig, string, error) {
	if err := validateProjectName(projectName); err != nil {
		return nil, "", err
	}

	packageName := projectName
	if name := valueOf(opts.PackageName); name != "" {
		packageName = name
	}
	packageName = NormalizeName(packageName)
	if err := ValidateIdentifier(packageName); err != nil {
		return nil, "", err
	}

	destDir := valueOf(opts.DestDir)
	if destDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("getting current directory: %w", err)
		}
		destDir = cwd
	}

	defaults := DefaultValues()
	cfg := &scaffold.ProjectConfig{
		Name:            packageName,
		Version:         orDefault(opts.Version, defaults.Version),
		Description:     orDefault(opts.Description, defaults.Description),
		Author:          orDefault(opts.Author, defaults.Author),
		AuthorEmail:     orDefault(opts.AuthorEmail, defaults.AuthorEmail),
		Packages:        scaffold.PackagesExpr,
		InstallRequires: JoinRequirements(opts.InstallRequires),
	}

	return cfg, filepath.Join(destDir, projectName), nil
}

// JoinRequirements joins requirement names with commas, keeping their order
// and duplicates. A nil or empty slice yields "".
func JoinRequirements(reqs []string) string {
	return strings.Join(reqs, ",")
}
