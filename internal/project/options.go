package project

// Options are the optional overrides of a project. A nil field means "not
// set" and is filled from Defaults by Resolve; a non-nil pointer to "" is an
// explicit empty value.
type Options struct {
	PackageName     *string  // manifest name; nil or "" means the project name
	Version         *string
	Description     *string
	Author          *string
	AuthorEmail     *string
	InstallRequires []string // requirement names in order
	DestDir         *string  // parent directory; nil or "" means the working directory
}

// Defaults names the value every unset field resolves to.
type Defaults struct {
	Version     string
	Description string
	Author      string
	AuthorEmail string
}

// DefaultValues returns the built-in defaults.
func DefaultValues() Defaults {
	return Defaults{
		Version: "0.1",
	}
}

// String returns a pointer to s, for filling Options fields.
func String(s string) *string {
	return &s
}

// WithFallback returns a copy of o in which every unset field is taken from
// fallback. Layering flags over a project file over user settings is a chain
// of WithFallback calls.
func (o Options) WithFallback(fallback Options) Options {
	out := o
	if out.PackageName == nil {
		out.PackageName = fallback.PackageName
	}
	if out.Version == nil {
		out.Version = fallback.Version
	}
	if out.Description == nil {
		out.Description = fallback.Description
	}
	if out.Author == nil {
		out.Author = fallback.Author
	}
	if out.AuthorEmail == nil {
		out.AuthorEmail = fallback.AuthorEmail
	}
	if out.InstallRequires == nil {
		out.InstallRequires = fallback.InstallRequires
	}
	if out.DestDir == nil {
		out.DestDir = fallback.DestDir
	}
	return out
}

func orDefault(value *string, def string) string {
	if value != nil {
		return *value
	}
	return def
}

// valueOf returns *value, or "" when value is nil.
func valueOf(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
