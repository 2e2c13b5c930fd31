// Package project resolves the options of a new Python project into a
// scaffold.ProjectConfig and creates the project on disk: one directory named
// after the project and a setup.py inside it.
//
// The directory always uses the project name exactly as given, while the
// manifest name is the package name with hyphens rewritten to underscores.
// Names that are not valid Python identifiers after that rewrite are rejected
// before anything is created.
package project
