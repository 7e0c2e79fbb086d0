// Package gitlog reads release baselines and commit history from a
// local git repository. It uses the go-git library exclusively, so no
// git CLI installation is required.
package gitlog

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	goversion "github.com/hashicorp/go-version"

	"github.com/raveheart1/semrel/internal/commit"
	"github.com/raveheart1/semrel/internal/semver"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for gitlog operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened local git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository at path, or the current working directory
// when path is empty. DetectDotGit is enabled, so any directory inside
// the repository works.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[gitlog] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repository{repo: repo}, nil
}

// ReleaseTag identifies the most recent release baseline in the
// repository.
type ReleaseTag struct {
	// Name is the full tag name as found, prefix included ("v1.2.3").
	Name string
	// Version is the parsed tuple.
	Version semver.Version
	// Commit is the hash of the commit the tag points at.
	Commit plumbing.Hash
}

// LatestReleaseTag returns the highest semantic-version tag, resolving
// both lightweight and annotated tags to their commit. Tags that do not
// parse as versions are skipped. Returns nil when the repository has no
// release tags.
func (r *Repository) LatestReleaseTag() (*ReleaseTag, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var best *ReleaseTag
	var bestOrder *goversion.Version

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		parsed, err := goversion.NewVersion(name)
		if err != nil {
			logDebug("[gitlog] skipping non-version tag %s", name)
			return nil
		}

		hash, err := r.resolveTagCommit(ref)
		if err != nil {
			return err
		}

		if bestOrder == nil || parsed.GreaterThan(bestOrder) {
			seg := parsed.Segments()
			best = &ReleaseTag{
				Name:    name,
				Version: semver.Version{Major: seg[0], Minor: seg[1], Patch: seg[2]},
				Commit:  hash,
			}
			bestOrder = parsed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if best != nil {
		logDebug("[gitlog] latest release tag %s -> %s", best.Name, best.Commit)
	} else {
		logDebug("[gitlog] no release tags found")
	}
	return best, nil
}

// resolveTagCommit maps a tag ref to its commit hash. Annotated tags
// point at a tag object that must be dereferenced; lightweight tags
// point at the commit directly.
func (r *Repository) resolveTagCommit(ref *plumbing.Reference) (plumbing.Hash, error) {
	tag, err := r.repo.TagObject(ref.Hash())
	switch err {
	case nil:
		c, err := tag.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("dereferencing tag %s: %w", ref.Name().Short(), err)
		}
		return c.Hash, nil
	case plumbing.ErrObjectNotFound:
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, fmt.Errorf("reading tag %s: %w", ref.Name().Short(), err)
	}
}

// CommitsSince returns the commits reachable from HEAD, newest first,
// stopping before the given baseline commit. Pass plumbing.ZeroHash to
// walk the full history.
func (r *Repository) CommitsSince(since plumbing.Hash) ([]commit.Raw, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	var raws []commit.Raw
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == since {
			return storer.ErrStop
		}
		raws = append(raws, commit.Raw{
			Hash:       c.Hash.String(),
			Message:    c.Message,
			AuthorName: c.Author.Name,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	logDebug("[gitlog] collected %d commits since %s", len(raws), since)
	return raws, nil
}

// History returns the latest release tag (nil when none exists) and the
// raw commits recorded since it, newest first.
func (r *Repository) History() (*ReleaseTag, []commit.Raw, error) {
	tag, err := r.LatestReleaseTag()
	if err != nil {
		return nil, nil, err
	}

	since := plumbing.ZeroHash
	if tag != nil {
		since = tag.Commit
	}

	raws, err := r.CommitsSince(since)
	if err != nil {
		return nil, nil, err
	}
	return tag, raws, nil
}
