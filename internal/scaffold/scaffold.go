package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/startproject-labs/startproject/internal/platform"
)

// SetupPyFile is the name of the manifest written into every project.
const SetupPyFile = "setup.py"

// PackagesExpr is rendered verbatim as the packages= argument.
const PackagesExpr = "find_packages()"

//go:embed templates/setup.py.tmpl
var setupPyTemplate string

var setupPy = template.Must(template.New(SetupPyFile).Parse(setupPyTemplate))

// ProjectConfig holds all template variables of the setup.py manifest.
// Values are substituted without escaping.
type ProjectConfig struct {
	Name            string // Package name, e.g., "sample_1"
	Version         string // e.g., "0.1"
	Description     string // One-line summary
	Author          string
	AuthorEmail     string // Rendered only when non-empty
	Packages        string // Python expression, normally PackagesExpr
	InstallRequires string // Pre-joined, e.g., "first,second"
}

// RenderSetupPy returns the manifest text for cfg. It has no side effects.
func RenderSetupPy(cfg *ProjectConfig) (string, error) {
	var buf bytes.Buffer
	if err := setupPy.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("executing template %s: %w", SetupPyFile, err)
	}
	return buf.String(), nil
}

// WriteSetupPy renders cfg and writes it to <dir>/setup.py, replacing any
// existing file. It returns the name of the written file relative to dir.
func WriteSetupPy(dir string, cfg *ProjectConfig) (string, error) {
	text, err := RenderSetupPy(cfg)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(dir, SetupPyFile)
	if err := platform.WriteText(outPath, text); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return SetupPyFile, nil
}
