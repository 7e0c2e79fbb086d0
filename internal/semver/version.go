// Package semver implements the three-component version tuple and the
// bump-resolution rule that reduces a commit history to a single next
// version.
package semver

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is an ordered (major, minor, patch) tuple. The zero value is
// 0.0.0, the baseline for repositories with no prior release.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse reads a dotted version string, accepting an optional "v" prefix
// ("v1.2.3" and "1.2.3" are equivalent). The prefix is stripped before
// any arithmetic; missing components default to zero.
func Parse(s string) (Version, error) {
	parsed, err := goversion.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parsing version %q: %w", s, err)
	}
	seg := parsed.Segments()
	return Version{Major: seg[0], Minor: seg[1], Patch: seg[2]}, nil
}

// MustParse is Parse for literals in fixtures and defaults; it panics on
// invalid input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the bare dotted form without a "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BumpMajor increments the major component and zeroes the rest.
func (v Version) BumpMajor() Version {
	return Version{Major: v.Major + 1}
}

// BumpMinor increments the minor component and zeroes the patch.
func (v Version) BumpMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// BumpPatch increments the patch component.
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}
