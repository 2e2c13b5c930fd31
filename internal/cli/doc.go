// Package cli defines the Cobra command tree for the startproject CLI. The
// root command creates a project; each other file registers one subcommand
// (config, version). Commands delegate to internal packages for the work and
// only handle flag parsing and output formatting.
package cli
