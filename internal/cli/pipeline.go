package cli

import (
	"context"

	"github.com/raveheart1/semrel/internal/config"
	"github.com/raveheart1/semrel/internal/errors"
	"github.com/raveheart1/semrel/internal/github"
	"github.com/raveheart1/semrel/internal/gitlog"
	"github.com/raveheart1/semrel/internal/release"
	"github.com/raveheart1/semrel/internal/semver"
)

// evaluate loads config, reads local history, and computes the release
// plan. currentOverride, when non-empty, replaces the tag-derived
// baseline version.
func evaluate(currentOverride string) (release.Plan, *config.Configuration, error) {
	cfg, err := loadConfig()
	if err != nil {
		return release.Plan{}, nil, err
	}

	repo, err := gitlog.Open(cfg.RepoPath)
	if err != nil {
		return release.Plan{}, nil, errors.NewNotARepositoryError(cfg.RepoPath, err)
	}

	tag, raws, err := repo.History()
	if err != nil {
		return release.Plan{}, nil, errors.WrapWithMessage(err, errors.Repository,
			"reading commit history",
			"Make sure the repository has at least one commit")
	}

	var current semver.Version
	switch {
	case currentOverride != "":
		current, err = semver.Parse(currentOverride)
		if err != nil {
			return release.Plan{}, nil, errors.NewInvalidVersionError(currentOverride, err)
		}
	case tag != nil:
		current = tag.Version
	default:
		// Config validation guarantees initial_version parses.
		current = semver.MustParse(cfg.InitialVersion)
	}

	return release.Compute(raws, current, cfg.TagPrefix), cfg, nil
}

// evaluateRemote computes the release plan from GitHub API history
// instead of a local clone.
func evaluateRemote(ctx context.Context, cfg *config.Configuration, currentOverride string) (release.Plan, error) {
	client, err := remoteClient(cfg)
	if err != nil {
		return release.Plan{}, err
	}

	tag, err := client.LatestReleaseTag(ctx)
	if err != nil {
		return release.Plan{}, errors.WrapWithMessage(err, errors.Remote,
			"fetching the latest release",
			"Check the remote setting and your network connection")
	}

	raws, err := client.CommitsSinceTag(ctx, tag)
	if err != nil {
		return release.Plan{}, errors.WrapWithMessage(err, errors.Remote,
			"fetching commit history",
			"Check the remote setting and your network connection")
	}

	var current semver.Version
	switch {
	case currentOverride != "":
		current, err = semver.Parse(currentOverride)
		if err != nil {
			return release.Plan{}, errors.NewInvalidVersionError(currentOverride, err)
		}
	case tag != "":
		current, err = semver.Parse(tag)
		if err != nil {
			return release.Plan{}, errors.WrapWithMessage(err, errors.Remote,
				"parsing the latest release tag",
				"The latest GitHub release tag is not a semantic version")
		}
	default:
		current = semver.MustParse(cfg.InitialVersion)
	}

	return release.Compute(raws, current, cfg.TagPrefix), nil
}

// remoteClient builds a GitHub client from configuration.
func remoteClient(cfg *config.Configuration) (*github.Client, error) {
	if cfg.Remote == "" {
		return nil, errors.NewMissingRemoteError()
	}
	owner, name, err := github.ParseRemote(cfg.Remote)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Set remote to the \"owner/name\" form in .semrel.yml")
	}

	if cfg.GithubAPIURL != "" {
		client, err := github.NewEnterpriseClient(cfg.GithubAPIURL, owner, name, cfg.GithubToken)
		if err != nil {
			return nil, errors.Wrap(err, errors.Configuration,
				"Check the github_api_url setting")
		}
		return client, nil
	}
	return github.NewClient(owner, name, cfg.GithubToken), nil
}
