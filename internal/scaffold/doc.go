// Package scaffold renders the setup.py manifest of a new Python project from
// an embedded text template and writes it into the project directory. It
// powers the "startproject" root command; option resolution and directory
// creation live in the project package.
package scaffold
