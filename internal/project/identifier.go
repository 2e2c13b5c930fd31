package project

import (
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// pythonKeywords are the hard keywords of Python 3. Soft keywords such as
// "match" and "type" are valid identifiers and are not listed.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// NormalizeName rewrites every hyphen in name to an underscore.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// ValidateIdentifier returns an InvalidName error unless name can be used
// as a Python package name.
func ValidateIdentifier(name string) error {
	if name == "" {
		return invalidName("package name is empty")
	}
	if !identifierPattern.MatchString(name) {
		return invalidName("invalid package name %q: must match pattern [A-Za-z_][A-Za-z0-9_]*", name)
	}
	if pythonKeywords[name] {
		return invalidName("invalid package name %q: reserved Python keyword", name)
	}
	return nil
}

// validateProjectName checks that name can be used as a single directory name.
func validateProjectName(name string) error {
	switch {
	case name == "":
		return invalidName("project name is empty")
	case name == "." || name == "..":
		return invalidName("invalid project name %q", name)
	case strings.ContainsAny(name, `/\`):
		return invalidName("invalid project name %q: must not contain a path separator", name)
	}
	return nil
}
