// Package notes renders a categorized markdown release-notes document
// from parsed commits. Output is deterministic: a fixed category order,
// input order preserved within each category, and no timestamps.
package notes

import (
	"fmt"
	"strings"

	"github.com/raveheart1/semrel/internal/commit"
)

// FallbackLine is the entire document when no category has any commits.
const FallbackLine = "No significant changes."

// Category keys that do not correspond to a commit type. Breaking
// commits are pulled out of their nominal type's bucket; unrecognized
// types collapse into the catch-all bucket.
const (
	keyBreaking = "breaking"
	keyOther    = "other"
)

// categories is the fixed, non-configurable rendering order.
var categories = []struct {
	key     string
	heading string
}{
	{keyBreaking, "Breaking Changes"},
	{"feat", "New Features"},
	{"fix", "Bug Fixes"},
	{"perf", "Performance"},
	{"docs", "Documentation"},
	{"build", "Build System"},
	{"ci", "CI/CD"},
	{"test", "Tests"},
	{"refactor", "Code Refactoring"},
	{"style", "Code Style"},
	{"chore", "Chores"},
	{keyOther, "Other Changes"},
}

// Generate renders the release notes for version (as it should appear
// in the title, tag prefix included). Empty categories are omitted; an
// input with no commits at all renders only the fallback line.
func Generate(commits []commit.Commit, version string) string {
	if len(commits) == 0 {
		return FallbackLine + "\n"
	}

	groups := groupByCategory(commits)

	var b strings.Builder
	fmt.Fprintf(&b, "# Release %s\n", version)

	for _, cat := range categories {
		entries := groups[cat.key]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", cat.heading)
		for _, c := range entries {
			b.WriteString(formatEntry(c))
		}
	}

	return b.String()
}

// Classify returns the single category key for a commit. Breaking
// commits always land in the breaking bucket regardless of their
// declared type; this is deliberately a separate fallback point from
// the parser's TypeOther.
func Classify(c commit.Commit) string {
	if c.Breaking {
		return keyBreaking
	}
	if commit.IsKnownType(c.Type) {
		return c.Type
	}
	return keyOther
}

// groupByCategory folds the commits into a category-to-commits mapping,
// preserving input order within each bucket.
func groupByCategory(commits []commit.Commit) map[string][]commit.Commit {
	groups := make(map[string][]commit.Commit)
	for _, c := range commits {
		key := Classify(c)
		groups[key] = append(groups[key], c)
	}
	return groups
}

// formatEntry renders one bullet line: a bold scope prefix when the
// scope is non-empty, the description, then the short hash.
func formatEntry(c commit.Commit) string {
	if c.Scope != "" {
		return fmt.Sprintf("- **%s**: %s (%s)\n", c.Scope, c.Description, c.Hash)
	}
	return fmt.Sprintf("- %s (%s)\n", c.Description, c.Hash)
}
