// Package github implements the remote collaborators: fetching commit
// history from the GitHub API and publishing releases. Failures here
// are real errors and must stay distinguishable from a successful run
// that found no relevant commits.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/raveheart1/semrel/internal/commit"
)

// Client wraps the GitHub API for a single owner/name pair.
type Client struct {
	gh    *gh.Client
	owner string
	repo  string
}

// NewClient builds a client for api.github.com. An empty token gives
// anonymous access, enough for reading public repositories but not for
// publishing.
func NewClient(owner, repo, token string) *Client {
	c := gh.NewClient(nil)
	if token != "" {
		c = c.WithAuthToken(token)
	}
	return &Client{gh: c, owner: owner, repo: repo}
}

// NewEnterpriseClient points the client at a GitHub Enterprise base URL.
func NewEnterpriseClient(baseURL, owner, repo, token string) (*Client, error) {
	c := gh.NewClient(nil)
	if token != "" {
		c = c.WithAuthToken(token)
	}
	c, err := c.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("configuring enterprise URL %s: %w", baseURL, err)
	}
	return &Client{gh: c, owner: owner, repo: repo}, nil
}

// ParseRemote splits an "owner/name" remote identifier.
func ParseRemote(remote string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(remote, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid remote %q: expected owner/name", remote)
	}
	return owner, name, nil
}

// LatestReleaseTag returns the tag name of the latest published
// release, or "" when the repository has none. A missing release is not
// an error; every other API failure is.
func (c *Client) LatestReleaseTag(ctx context.Context) (string, error) {
	rel, resp, err := c.gh.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("fetching latest release for %s/%s: %w", c.owner, c.repo, err)
	}
	return rel.GetTagName(), nil
}

// CommitsSinceTag returns the commits between tag and HEAD via the
// compare API, oldest first as GitHub reports them. When tag is empty
// the full commit list is returned instead.
func (c *Client) CommitsSinceTag(ctx context.Context, tag string) ([]commit.Raw, error) {
	if tag == "" {
		return c.allCommits(ctx)
	}

	var raws []commit.Raw
	opts := &gh.ListOptions{PerPage: 100}
	for {
		cmp, resp, err := c.gh.Repositories.CompareCommits(ctx, c.owner, c.repo, tag, "HEAD", opts)
		if err != nil {
			return nil, fmt.Errorf("comparing %s...HEAD for %s/%s: %w", tag, c.owner, c.repo, err)
		}
		for _, rc := range cmp.Commits {
			raws = append(raws, toRaw(rc))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return raws, nil
}

func (c *Client) allCommits(ctx context.Context) ([]commit.Raw, error) {
	var raws []commit.Raw
	opts := &gh.CommitsListOptions{ListOptions: gh.ListOptions{PerPage: 100}}
	for {
		commits, resp, err := c.gh.Repositories.ListCommits(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing commits for %s/%s: %w", c.owner, c.repo, err)
		}
		for _, rc := range commits {
			raws = append(raws, toRaw(rc))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return raws, nil
}

func toRaw(rc *gh.RepositoryCommit) commit.Raw {
	return commit.Raw{
		Hash:       rc.GetSHA(),
		Message:    rc.GetCommit().GetMessage(),
		AuthorName: rc.GetCommit().GetAuthor().GetName(),
	}
}

// Release describes a release to publish.
type Release struct {
	Tag        string
	Name       string
	Notes      string
	Draft      bool
	Prerelease bool
}

// PublishRelease creates the release on GitHub and returns its HTML
// URL. The tag is created by GitHub at the repository's default branch
// HEAD if it does not already exist.
func (c *Client) PublishRelease(ctx context.Context, rel Release) (string, error) {
	created, _, err := c.gh.Repositories.CreateRelease(ctx, c.owner, c.repo, &gh.RepositoryRelease{
		TagName:    gh.String(rel.Tag),
		Name:       gh.String(rel.Name),
		Body:       gh.String(rel.Notes),
		Draft:      gh.Bool(rel.Draft),
		Prerelease: gh.Bool(rel.Prerelease),
	})
	if err != nil {
		return "", fmt.Errorf("creating release %s for %s/%s: %w", rel.Tag, c.owner, c.repo, err)
	}
	return created.GetHTMLURL(), nil
}
