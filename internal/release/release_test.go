package release

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raveheart1/semrel/internal/commit"
	"github.com/raveheart1/semrel/internal/notes"
	"github.com/raveheart1/semrel/internal/semver"
)

func TestCompute_FeatureAndFixRoundTrip(t *testing.T) {
	t.Parallel()

	raws := []commit.Raw{
		{Hash: "aaaaaaaaaaaa", Message: "feat(auth): add login", AuthorName: "Dev One"},
		{Hash: "bbbbbbbbbbbb", Message: "fix: null pointer", AuthorName: "Dev Two"},
		{Hash: "cccccccccccc", Message: "chore: bump deps", AuthorName: "Dev One"},
	}

	plan := Compute(raws, semver.MustParse("1.2.3"), "v")

	assert.Equal(t, "1.3.0", plan.NextVersion.String())
	assert.Equal(t, "v1.3.0", plan.Tag)
	assert.True(t, plan.ReleaseNeeded)

	assert.Contains(t, plan.Notes, "## New Features")
	assert.Contains(t, plan.Notes, "- **auth**: add login (aaaaaaa)")
	assert.Contains(t, plan.Notes, "## Bug Fixes")
	assert.Contains(t, plan.Notes, "- null pointer (bbbbbbb)")
	assert.Contains(t, plan.Notes, "## Chores")
	assert.Equal(t, 1, strings.Count(plan.Notes, "bump deps"), "entries are never duplicated across sections")
}

func TestCompute_BreakingHeaderMarker(t *testing.T) {
	t.Parallel()

	raws := []commit.Raw{
		{Hash: "aaaaaaaaaaaa", Message: "feat(core)!: rework API"},
	}

	plan := Compute(raws, semver.MustParse("2.5.0"), "v")

	assert.Equal(t, "3.0.0", plan.NextVersion.String())
	assert.True(t, plan.ReleaseNeeded)
	assert.Contains(t, plan.Notes, "## Breaking Changes")
	assert.NotContains(t, plan.Notes, "## New Features")
}

func TestCompute_BreakingBodyMarker(t *testing.T) {
	t.Parallel()

	raws := []commit.Raw{
		{Hash: "aaaaaaaaaaaa", Message: "fix: patch thing\n\nBREAKING CHANGE: removes endpoint"},
	}

	plan := Compute(raws, semver.MustParse("1.0.0"), "v")

	assert.Equal(t, "2.0.0", plan.NextVersion.String(), "body marker drives a major bump")
	assert.Contains(t, plan.Notes, "## Breaking Changes")
	assert.NotContains(t, plan.Notes, "## Bug Fixes")
}

func TestCompute_EmptyHistory(t *testing.T) {
	t.Parallel()

	plan := Compute(nil, semver.MustParse("0.4.0"), "v")

	assert.Equal(t, "0.4.0", plan.NextVersion.String())
	assert.False(t, plan.ReleaseNeeded, "zero commits is not an implicit patch bump")
	assert.Equal(t, notes.FallbackLine+"\n", plan.Notes)
}

func TestCompute_NeutralTypesOnly(t *testing.T) {
	t.Parallel()

	raws := []commit.Raw{
		{Hash: "aaaaaaaaaaaa", Message: "docs: describe flags"},
		{Hash: "bbbbbbbbbbbb", Message: "style: gofmt"},
	}

	plan := Compute(raws, semver.MustParse("0.4.0"), "v")

	assert.Equal(t, semver.MustParse("0.4.0"), plan.NextVersion)
	assert.False(t, plan.ReleaseNeeded)
	assert.Contains(t, plan.Notes, "## Documentation", "notes still render even when no release is needed")
}

func TestCompute_EmptyTagPrefix(t *testing.T) {
	t.Parallel()

	raws := []commit.Raw{{Hash: "aaaaaaaaaaaa", Message: "fix: thing"}}
	plan := Compute(raws, semver.MustParse("1.0.0"), "")

	assert.Equal(t, "1.0.1", plan.Tag)
	assert.Contains(t, plan.Notes, "# Release 1.0.1")
}
