// Package commit parses raw git commit messages into structured
// conventional-commit records. Parsing never fails: messages that do not
// follow the conventional format degrade to the "other" type with the
// full header as the description.
package commit

// Raw is a single commit as supplied by a history collaborator
// (local git log or the GitHub API), before any parsing.
type Raw struct {
	Hash       string
	Message    string
	AuthorName string
}

// Commit is the parsed, immutable form of a Raw record.
type Commit struct {
	// Hash is the identifying token truncated to 7 characters.
	Hash string
	// Type is the conventional-commit type identifier. Unknown
	// identifiers pass through verbatim; headers that do not match the
	// conventional format get TypeOther.
	Type string
	// Scope is the optional qualifier from the header, possibly
	// path-like ("core/api"). Empty when absent.
	Scope string
	// Description is the header text after the type/scope/bang prefix,
	// or the entire header for non-conventional messages.
	Description string
	// Body is the message text after the first line, trimmed.
	Body string
	// Breaking is set by a "!" header marker or a BREAKING CHANGE body
	// marker, independent of Type.
	Breaking bool
	// Author is the commit author's display name, informational only.
	Author string
}

// TypeOther is assigned when a header does not match the conventional
// commit format at all.
const TypeOther = "other"

// Conventional-commit types semrel recognizes. Types outside this set
// still parse (the identifier is kept verbatim) but are grouped under
// "Other Changes" in release notes and never affect the version.
var knownTypes = map[string]struct{}{
	"feat":     {},
	"fix":      {},
	"perf":     {},
	"docs":     {},
	"build":    {},
	"ci":       {},
	"test":     {},
	"refactor": {},
	"style":    {},
	"chore":    {},
}

// IsKnownType reports whether t is part of the recognized
// conventional-commit vocabulary.
func IsKnownType(t string) bool {
	_, ok := knownTypes[t]
	return ok
}
