package platform

import (
	"os"
)

// CreateDir creates a single directory. The parent must already exist and
// the directory itself must not; an existing path is reported as
// fs.ErrExist by the returned *PathError.
func CreateDir(path string) error {
	return os.Mkdir(path, 0755)
}

// WriteText creates or truncates the file at path and writes text to it.
func WriteText(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
