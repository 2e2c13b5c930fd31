// Package config manages user-level settings stored at ~/.startproject/config.yaml.
// The settings supply defaults for the metadata of every generated project
// (author, author email, version, description) and can be overridden with
// STARTPROJECT_* environment variables.
package config
