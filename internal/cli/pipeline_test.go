package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRepo creates a fixture repository with the given commit messages
// applied in order, returning the directory and the last commit hash.
func buildRepo(t *testing.T, messages ...string) (string, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	var last plumbing.Hash
	for i, message := range messages {
		name := filepath.Join(dir, "file"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte(message), 0o644))
		_, err = wt.Add(filepath.Base(name))
		require.NoError(t, err)
		last, err = wt.Commit(message, &git.CommitOptions{
			Author: &object.Signature{Name: "Test", Email: "t@example.com", When: time.Now()},
		})
		require.NoError(t, err)
	}
	return dir, last
}

// runCommand executes the root command with args and captures output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables are package globals; reset them so one test's
	// flags never leak into the next.
	configFlag = ""
	repoFlag = ""
	nextCurrentFlag = ""
	nextFailOnUnchangedFlag = false
	notesCurrentFlag = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestNextCmd_FixtureRepo(t *testing.T) {
	dir, tagged := buildRepo(t, "feat: initial")
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.2.3", tagged, nil)
	require.NoError(t, err)

	// Add commits after the release.
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fix.txt"), []byte("x"), 0o644))
	_, err = wt.Add("fix.txt")
	require.NoError(t, err)
	_, err = wt.Commit("fix: null pointer", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	out, err := runCommand(t, "next", "--repo", dir)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.4\n", out)
}

func TestNextCmd_CurrentOverride(t *testing.T) {
	dir, _ := buildRepo(t, "feat(auth): add login", "fix: null pointer", "chore: bump deps")

	out, err := runCommand(t, "next", "--repo", dir, "--current", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "v1.3.0\n", out)
}

func TestNextCmd_InvalidCurrent(t *testing.T) {
	dir, _ := buildRepo(t, "feat: one")

	_, err := runCommand(t, "next", "--repo", dir, "--current", "banana")
	assert.Error(t, err)
}

func TestNotesCmd_FixtureRepo(t *testing.T) {
	dir, _ := buildRepo(t, "feat(auth): add login", "fix: null pointer", "chore: bump deps")

	out, err := runCommand(t, "notes", "--repo", dir, "--current", "1.2.3")
	require.NoError(t, err)

	assert.Contains(t, out, "# Release v1.3.0")
	assert.Contains(t, out, "## New Features")
	assert.Contains(t, out, "- **auth**: add login")
	assert.Contains(t, out, "## Bug Fixes")
	assert.Contains(t, out, "- null pointer")
	assert.Contains(t, out, "## Chores")
}

func TestNextCmd_NotARepository(t *testing.T) {
	_, err := runCommand(t, "next", "--repo", t.TempDir())
	assert.Error(t, err)
}
