package project

import (
	"github.com/startproject-labs/startproject/internal/platform"
	"github.com/startproject-labs/startproject/internal/scaffold"
)

// Result holds the outcome of a project creation.
type Result struct {
	ProjectName string // as given, also the directory name
	ProjectDir  string
	Config      *scaffold.ProjectConfig
	Files       []string
	Warnings    []string
}

// Create resolves opts, creates <DestDir>/<projectName> and writes setup.py
// into it. The directory must not exist yet. A failed write leaves the
// empty directory in place.
func Create(projectName string, opts Options) (*Result, error) {
	cfg, projectDir, err := Resolve(projectName, opts)
	if err != nil {
		return nil, err
	}

	if err := platform.CreateDir(projectDir); err != nil {
		return nil, classifyFSError("creating project directory", projectDir, err)
	}

	file, err := scaffold.WriteSetupPy(projectDir, cfg)
	if err != nil {
		return nil, classifyFSError("writing manifest in", projectDir, err)
	}

	return &Result{
		ProjectName: projectName,
		ProjectDir:  projectDir,
		Config:      cfg,
		Files:       []string{file},
		Warnings:    checkVersion(cfg.Version),
	}, nil
}
