package commit

import (
	"regexp"
	"strings"
)

// breakingMarker in a commit body flags a breaking change even when the
// header carries no "!" suffix.
const breakingMarker = "BREAKING CHANGE"

// shortHashLen is the fixed display width for commit hashes. Tokens
// shorter than this pass through unmodified.
const shortHashLen = 7

// headerPattern matches a conventional commit header:
// "type(scope)!: description" with scope and "!" optional. The scope
// capture accepts path-like segments ("a/b/c") and cannot consume the
// trailing "!" or ":".
var headerPattern = regexp.MustCompile(`^([A-Za-z]+)(?:\(([^)]+)\))?(!)?:\s*(.+)$`)

// Parse turns a raw commit into a structured Commit. It never fails:
// headers that do not match the conventional format produce a commit
// with TypeOther, no scope, and the full header as the description.
func Parse(raw Raw) Commit {
	header, body := splitMessage(raw.Message)

	c := Commit{
		Hash:   ShortHash(raw.Hash),
		Body:   body,
		Author: raw.AuthorName,
	}

	if m := headerPattern.FindStringSubmatch(header); m != nil {
		c.Type = m[1]
		c.Scope = m[2]
		c.Breaking = m[3] == "!"
		c.Description = m[4]
	} else {
		c.Type = TypeOther
		c.Description = header
	}

	// A body marker upgrades the breaking flag but never downgrades a
	// header-detected one.
	if strings.Contains(body, breakingMarker) {
		c.Breaking = true
	}

	return c
}

// ParseAll parses every raw commit in order.
func ParseAll(raws []Raw) []Commit {
	commits := make([]Commit, len(raws))
	for i, raw := range raws {
		commits[i] = Parse(raw)
	}
	return commits
}

// splitMessage separates a commit message into its header (first line)
// and body (everything after, trimmed).
func splitMessage(message string) (header, body string) {
	header, body, _ = strings.Cut(message, "\n")
	return strings.TrimSpace(header), strings.TrimSpace(body)
}

// ShortHash truncates an identifying token to 7 characters. Shorter
// tokens are returned as-is rather than padded or rejected.
func ShortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}
