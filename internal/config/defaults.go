package config

// GetDefaults returns the default configuration values as koanf keys.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"tag_prefix":      "v",
		"initial_version": "0.0.0",
		"repo_path":       "",
		"remote":          "",
		"github_token":    "",
		"github_api_url":  "",
		"draft":           false,
		"prerelease":      false,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// written by 'semrel init' to help users discover the options.
func GetDefaultConfigTemplate() string {
	return `# semrel configuration
# Values here are overridden by SEMREL_* environment variables
# (e.g. SEMREL_TAG_PREFIX, SEMREL_REMOTE).

tag_prefix: v              # Prepended to versions when forming tag names
initial_version: 0.0.0     # Baseline when the repository has no release tag
repo_path: ""              # Local repository path (empty = working directory)

# GitHub publishing
remote: ""                 # "owner/name" of the GitHub repository
github_api_url: ""         # API base URL override for GitHub Enterprise
draft: false               # Create releases as drafts
prerelease: false          # Mark releases as prereleases

# The API token is read from the SEMREL_GITHUB_TOKEN environment
# variable; keep it out of this file.
`
}
