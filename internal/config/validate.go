package config

import (
	"fmt"
	"os"
	"strings"

	goyaml "gopkg.in/yaml.v3"

	"github.com/raveheart1/semrel/internal/semver"
)

// Validate checks that a loaded configuration is internally consistent.
func Validate(cfg *Configuration) error {
	if _, err := semver.Parse(cfg.InitialVersion); err != nil {
		return fmt.Errorf("invalid initial_version %q: %w", cfg.InitialVersion, err)
	}

	if cfg.Remote != "" {
		owner, name, ok := strings.Cut(cfg.Remote, "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			return fmt.Errorf("invalid remote %q: expected owner/name", cfg.Remote)
		}
	}

	return nil
}

// validateYAMLSyntax parses the file as generic YAML so syntax errors
// surface with the file path before any schema handling.
func validateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var doc any
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML syntax: %w", err)
	}
	return nil
}
