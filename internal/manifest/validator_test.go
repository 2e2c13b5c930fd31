package manifest

import (
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-project.yaml", "valid-project.toml", "empty.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid: %s", result.Summary())
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
		desc    string
	}{
		{"invalid-unknown-key.yaml", "additionalProperties", "unknown key"},
		{"invalid-version-number.yaml", "type", "unquoted YAML version is a number"},
		{"invalid-requires-type.toml", "type", "requirements given as a string"},
		{"invalid-package-name.yaml", "pattern", "package name starts with a digit"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no %q issue for %s: %s", tt.keyword, tt.file, result.Summary())
			}
		})
	}
}

func TestValidateFile_IssuePath(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-version-number.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if result.Issues[0].Path != "/version" {
		t.Errorf("Path = %q, want %q", result.Issues[0].Path, "/version")
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidate_UnknownFormat(t *testing.T) {
	_, err := Validate([]byte("{}"), Format("ini"))
	if err == nil {
		t.Fatal("expected error for unknown format, got nil")
	}
}

func TestSummary(t *testing.T) {
	r := &ValidationResult{Issues: []ValidationIssue{
		{Path: "/version", Message: "got number, want string"},
		{Message: "root problem"},
	}}
	want := "/version: got number, want string; root problem"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
