// Package release composes the commit parser, version resolver, and
// notes generator into a single release evaluation. The composition is
// a pure function over already-fetched history: no I/O, no shared
// state, safe to invoke any number of times.
package release

import (
	"github.com/raveheart1/semrel/internal/commit"
	"github.com/raveheart1/semrel/internal/notes"
	"github.com/raveheart1/semrel/internal/semver"
)

// Plan is the computed outcome of one release evaluation.
type Plan struct {
	// Commits are the parsed records, in input order.
	Commits []commit.Commit
	// CurrentVersion is the baseline the resolution started from.
	CurrentVersion semver.Version
	// NextVersion is the resolved next version. Equal to CurrentVersion
	// when no commit warrants a bump.
	NextVersion semver.Version
	// Tag is NextVersion with the configured tag prefix applied.
	Tag string
	// ReleaseNeeded is true iff NextVersion differs from CurrentVersion.
	ReleaseNeeded bool
	// Notes is the rendered markdown release-notes document.
	Notes string
}

// Compute runs the three core stages in order: parse, resolve, render.
// Raws flow through untouched otherwise; an empty input yields an
// unchanged version, ReleaseNeeded=false, and the fallback notes line.
func Compute(raws []commit.Raw, current semver.Version, tagPrefix string) Plan {
	commits := commit.ParseAll(raws)
	next := semver.Resolve(commits, current)
	tag := tagPrefix + next.String()

	return Plan{
		Commits:        commits,
		CurrentVersion: current,
		NextVersion:    next,
		Tag:            tag,
		ReleaseNeeded:  semver.ReleaseNeeded(current, next),
		Notes:          notes.Generate(commits, tag),
	}
}
