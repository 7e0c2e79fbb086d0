package errors

import "fmt"

// Prebuilt errors for the failure points callers hit most often.

// NewNotARepositoryError reports a path that is not inside a git
// repository.
func NewNotARepositoryError(path string, cause error) *CLIError {
	return WrapWithMessage(cause, Repository,
		fmt.Sprintf("no git repository found at %q", displayPath(path)),
		"Run semrel from inside a git repository",
		"Or point at one with --repo <path>",
	)
}

// NewInvalidVersionError reports an unparseable version string.
func NewInvalidVersionError(version string, cause error) *CLIError {
	return WrapWithMessage(cause, Argument,
		fmt.Sprintf("invalid version %q", version),
		"Use the X.Y.Z form, with or without a leading 'v' (e.g. v1.2.3)",
	)
}

// NewMissingRemoteError reports that a GitHub operation was requested
// without a configured remote.
func NewMissingRemoteError() *CLIError {
	return New(Configuration,
		"no GitHub remote configured",
		"Set remote: owner/name in .semrel.yml",
		"Or export SEMREL_REMOTE=owner/name",
	)
}

// NewMissingTokenError reports that publishing was requested without
// credentials.
func NewMissingTokenError() *CLIError {
	return New(Configuration,
		"no GitHub token available for publishing",
		"Export SEMREL_GITHUB_TOKEN with a token that has repo scope",
	)
}

func displayPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
