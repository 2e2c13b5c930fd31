package manifest

import "github.com/startproject-labs/startproject/internal/project"

// Format identifies the encoding of a project file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ProjectFile is the decoded content of a project description file. Keys
// absent from the file stay nil; a key set to "" is an explicit empty value.
type ProjectFile struct {
	PackageName     *string  `yaml:"package_name,omitempty" toml:"package_name,omitempty" json:"package_name,omitempty"`
	Version         *string  `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
	Description     *string  `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Author          *string  `yaml:"author,omitempty" toml:"author,omitempty" json:"author,omitempty"`
	AuthorEmail     *string  `yaml:"author_email,omitempty" toml:"author_email,omitempty" json:"author_email,omitempty"`
	InstallRequires []string `yaml:"install_requires,omitempty" toml:"install_requires,omitempty" json:"install_requires,omitempty"`
	DestDir         *string  `yaml:"dest_dir,omitempty" toml:"dest_dir,omitempty" json:"dest_dir,omitempty"`
}

// Options converts the file into project options. Unset fields stay unset.
func (f *ProjectFile) Options() project.Options {
	return project.Options{
		PackageName:     f.PackageName,
		Version:         f.Version,
		Description:     f.Description,
		Author:          f.Author,
		AuthorEmail:     f.AuthorEmail,
		InstallRequires: f.InstallRequires,
		DestDir:         f.DestDir,
	}
}
