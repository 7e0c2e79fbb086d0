package semver

import "github.com/raveheart1/semrel/internal/commit"

// Resolve reduces a set of parsed commits and the current version to
// the next version. Precedence is strict and short-circuiting: the
// single highest impact level found wins and lower levels are ignored,
// so impacts never accumulate. Each level is an early-exit scan rather
// than a counter.
//
//	breaking commit  -> bump major
//	else feat commit -> bump minor
//	else fix commit  -> bump patch
//	else             -> unchanged
//
// An empty commit list returns the current version unchanged; callers
// must not read that as an implicit patch bump.
func Resolve(commits []commit.Commit, current Version) Version {
	for _, c := range commits {
		if c.Breaking {
			return current.BumpMajor()
		}
	}
	for _, c := range commits {
		if c.Type == "feat" {
			return current.BumpMinor()
		}
	}
	for _, c := range commits {
		if c.Type == "fix" {
			return current.BumpPatch()
		}
	}
	return current
}

// ReleaseNeeded reports whether the resolved next version differs from
// the current one under tuple equality.
func ReleaseNeeded(current, next Version) bool {
	return current != next
}
