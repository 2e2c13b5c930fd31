package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// DetectFormat picks the decoder for path from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported project file %s: extension must be .yaml, .yml or .toml", path)
	}
}

// ParseFile reads, validates and decodes a project file. Schema violations
// are returned as a single error listing every issue. A relative dest_dir is
// resolved against the directory containing the file.
func ParseFile(path string) (*ProjectFile, error) {
	data, format, result, err := validateFile(path)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid project file %s: %s", path, result.Summary())
	}

	pf, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}

	if pf.DestDir != nil && *pf.DestDir != "" && !filepath.IsAbs(*pf.DestDir) {
		resolved := filepath.Join(filepath.Dir(path), *pf.DestDir)
		pf.DestDir = &resolved
	}
	return pf, nil
}

// Decode unmarshals data in the given format. It does not validate.
func Decode(data []byte, format Format) (*ProjectFile, error) {
	var pf ProjectFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("unmarshaling YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&pf); err != nil {
			return nil, fmt.Errorf("unmarshaling TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return &pf, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
