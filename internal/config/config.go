package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/startproject-labs/startproject/internal/branding"
	"github.com/startproject-labs/startproject/internal/project"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyAuthor      = "author"
	KeyAuthorEmail = "author_email"
	KeyVersion     = "version"
	KeyDescription = "description"
)

// Keys lists every supported setting.
var Keys = []string{KeyAuthor, KeyAuthorEmail, KeyVersion, KeyDescription}

// Dir returns the path to the config directory (~/.startproject/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.startproject/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; an unreadable or malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// EnvVars returns the environment variable that overrides each key.
func EnvVars() []string {
	vars := make([]string, 0, len(Keys))
	for _, key := range Keys {
		vars = append(vars, branding.EnvVar(key))
	}
	return vars
}

// ValidateKey rejects keys that no project field reads.
func ValidateKey(key string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ProjectDefaults returns the user's settings as project options, to be
// used as the last fallback before the built-in defaults.
func ProjectDefaults() project.Options {
	return project.Options{
		Version:     lookup(KeyVersion),
		Description: lookup(KeyDescription),
		Author:      lookup(KeyAuthor),
		AuthorEmail: lookup(KeyAuthorEmail),
	}
}

// lookup returns nil for keys set neither in the file nor the environment.
func lookup(key string) *string {
	if !viper.IsSet(key) {
		return nil
	}
	return project.String(viper.GetString(key))
}
