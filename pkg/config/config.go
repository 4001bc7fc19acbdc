// Package config loads optional scan configuration from a .promptpack.yaml
// file, overlaying the compiled-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"promptpack/pkg/scan"
)

// FileName is the configuration file looked up in the scan root when no
// explicit path is given.
const FileName = ".promptpack.yaml"

// Configuration holds the file-configurable subset of scan options. Pointer
// and nil-slice fields distinguish "not set" from an explicit value.
type Configuration struct {
	Output       string                 `mapstructure:"output"`
	Exclude      ExclusionConfiguration `mapstructure:"exclude"`
	Tokens       TokenConfiguration     `mapstructure:"tokens"`
	Clipboard    *bool                  `mapstructure:"clipboard"`
	UseGitignore *bool                  `mapstructure:"use_gitignore"`
}

// ExclusionConfiguration overrides the compiled-in exclusion sets. A nil
// slice keeps the default set; a present (possibly empty) list replaces it.
type ExclusionConfiguration struct {
	Dirs       []string `mapstructure:"dirs"`
	Files      []string `mapstructure:"files"`
	Extensions []string `mapstructure:"extensions"`
}

// TokenConfiguration controls token estimation defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// Load reads configuration for a scan rooted at workingDirectory. When
// explicitPath is empty the file is looked up in the scan root; a missing
// file is not an error, so a zero-argument run needs no configuration.
func Load(workingDirectory, explicitPath string) (Configuration, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(workingDirectory, FileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workingDirectory, path)
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return Configuration{}, nil
		}
		return Configuration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return Configuration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return Configuration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var configuration Configuration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return Configuration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return configuration, nil
}

// Apply overlays the configuration onto scan arguments. Only fields the file
// actually set are applied; command-line flags applied afterwards win over
// both.
func (configuration Configuration) Apply(args *scan.Arguments) {
	if configuration.Output != "" {
		args.Output = configuration.Output
	}
	if configuration.Exclude.Dirs != nil {
		args.ExcludedDirs = configuration.Exclude.Dirs
	}
	if configuration.Exclude.Files != nil {
		args.ExcludedFiles = configuration.Exclude.Files
	}
	if configuration.Exclude.Extensions != nil {
		args.ExcludedExtensions = configuration.Exclude.Extensions
	}
	if configuration.Tokens.Enabled != nil {
		args.CountTokens = *configuration.Tokens.Enabled
	}
	if configuration.Tokens.Model != "" {
		args.TokenModel = configuration.Tokens.Model
	}
	if configuration.Clipboard != nil {
		args.CopyToClip = *configuration.Clipboard
	}
	if configuration.UseGitignore != nil {
		args.UseGitignore = *configuration.UseGitignore
	}
}
