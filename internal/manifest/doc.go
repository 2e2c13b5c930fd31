// Package manifest handles parsing and validation of project description
// files. A project file carries the same optional fields as the command-line
// flags (package name, version, author, requirements, ...) in YAML or TOML,
// and is validated against an embedded JSON Schema before it is used.
package manifest
