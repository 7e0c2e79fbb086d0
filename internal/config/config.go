// Package config provides hierarchical configuration management for
// semrel using koanf. Configuration is loaded with priority:
// environment variables (SEMREL_*) > project config (.semrel.yml) >
// defaults. A legacy JSON project config (.semrel.json) is still
// accepted with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// ProjectConfigName is the YAML project config file name.
	ProjectConfigName = ".semrel.yml"
	// LegacyProjectConfigName is the deprecated JSON config file name.
	LegacyProjectConfigName = ".semrel.json"

	envPrefix = "SEMREL_"
)

// Configuration represents the semrel CLI configuration.
type Configuration struct {
	// TagPrefix is prepended to versions when forming tag names and
	// release titles. Default "v".
	TagPrefix string `koanf:"tag_prefix"`

	// InitialVersion is the baseline used when the repository has no
	// prior release. Default "0.0.0".
	InitialVersion string `koanf:"initial_version"`

	// RepoPath points at the local repository. Empty means the current
	// working directory.
	RepoPath string `koanf:"repo_path"`

	// Remote identifies the GitHub repository as "owner/name". Required
	// for publishing and for API-backed history.
	Remote string `koanf:"remote"`

	// GithubToken authenticates GitHub API calls. Usually supplied via
	// the SEMREL_GITHUB_TOKEN environment variable rather than a file.
	GithubToken string `koanf:"github_token"`

	// GithubAPIURL overrides the API base URL for GitHub Enterprise.
	GithubAPIURL string `koanf:"github_api_url"`

	// Draft creates published releases as drafts.
	Draft bool `koanf:"draft"`

	// Prerelease marks published releases as prereleases.
	Prerelease bool `koanf:"prerelease"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .semrel.yml in the working directory).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from defaults, the project config file, and
// the environment. projectConfigPath may be empty to use the default
// location.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	loadDefaults(k)

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project config, preferring YAML over the
// legacy JSON format. A custom path is used verbatim when supplied.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	if customPath != "" {
		return loadYAMLConfig(k, customPath)
	}

	if fileExists(ProjectConfigName) {
		return loadYAMLConfig(k, ProjectConfigName)
	}

	if fileExists(LegacyProjectConfigName) {
		if err := k.Load(file.Provider(LegacyProjectConfigName), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy config %s: %w", LegacyProjectConfigName, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: using deprecated JSON config at %s\n", LegacyProjectConfigName)
			fmt.Fprintf(warningWriter, "  Run 'semrel init' and move your settings to %s.\n\n", ProjectConfigName)
		}
	}
	return nil
}

// loadYAMLConfig validates YAML syntax first so parse failures point at
// the config file rather than at koanf internals.
func loadYAMLConfig(k *koanf.Koanf, path string) error {
	if err := validateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating config %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envTransform converts environment variable names to config keys.
// Example: SEMREL_GITHUB_TOKEN -> github_token.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
