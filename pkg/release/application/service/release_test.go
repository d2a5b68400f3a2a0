package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tss-calculator/go-lib/pkg/infrastructure/logger"

	"github.com/tss-calculator/ship/pkg/release/application/model"
	"github.com/tss-calculator/ship/pkg/release/application/service"
)

type fakeGitProvider struct {
	branch    string
	message   string
	remoteURL string
	err       error
	calls     int
}

func (git *fakeGitProvider) CurrentBranch(context.Context) (model.Branch, error) {
	git.calls++
	return git.branch, git.err
}

func (git *fakeGitProvider) HeadCommitMessage(context.Context) (string, error) {
	git.calls++
	return git.message, git.err
}

func (git *fakeGitProvider) RemoteURL(context.Context) (string, error) {
	git.calls++
	return git.remoteURL, git.err
}

func newService(strategy model.MergeStrategy, git service.GitProvider) service.Release {
	config := model.DefaultRelease()
	config.MergeStrategy = strategy
	return service.NewReleaseService(config, "0.5.2", logger.NewTextLogger(), git)
}

func TestPrepareSameBranch(t *testing.T) {
	git := &fakeGitProvider{branch: "master", remoteURL: "https://github.com/algolia/shipjs"}
	release := newService(model.DefaultMergeStrategy(), git)

	prepared, err := release.Prepare(context.Background(), service.PrepareRequest{
		CurrentVersion: "0.1.0",
		NextVersion:    "0.1.1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReleaseContext{
		CurrentVersion:    "0.1.0",
		NextVersion:       "0.1.1",
		BaseBranch:        "master",
		StagingBranch:     "releases/v0.1.1",
		DestinationBranch: "master",
		RepoURL:           "https://github.com/algolia/shipjs",
	}, prepared.Context)
	assert.Equal(t, "chore: release v0.1.1", prepared.CommitMessage)
	assert.Equal(t, "chore: release v0.1.1", prepared.PullRequestTitle)
	assert.True(t, strings.HasPrefix(prepared.PullRequestBody, "chore: release v0.1.1\n\n## Release Summary\n"))
	assert.Contains(t, prepared.PullRequestBody, "(https://github.com/algolia/shipjs/compare/v0.1.0...releases/v0.1.1)")
}

func TestPrepareReleaseBranch(t *testing.T) {
	git := &fakeGitProvider{}
	release := newService(model.MergeStrategy{
		ToReleaseBranch: []model.BranchMapping{{Base: "develop", Destination: "release/stable"}},
	}, git)

	prepared, err := release.Prepare(context.Background(), service.PrepareRequest{
		CurrentVersion: "1.0.0",
		NextVersion:    "1.1.0",
		BaseBranch:     "develop",
		StagingBranch:  "staging",
		RepoURL:        "https://github.com/org/repo",
	})
	require.NoError(t, err)
	assert.Zero(t, git.calls)
	assert.Equal(t, "release/stable", prepared.Context.DestinationBranch)
	assert.Equal(t, "chore: prepare v1.1.0", prepared.CommitMessage)
	assert.Equal(t, "chore: release v1.1.0", prepared.PullRequestTitle)
	assert.Contains(t, prepared.PullRequestBody, "- Merge: `staging` → `release/stable`")
	assert.NotContains(t, prepared.PullRequestBody, "/compare/")
}

func TestPrepareRejectsUnknownBaseBranch(t *testing.T) {
	release := newService(model.MergeStrategy{
		ToSameBranch:    []model.Branch{"master"},
		ToReleaseBranch: []model.BranchMapping{{Base: "dev", Destination: "release/legacy"}},
	}, &fakeGitProvider{branch: "feature"})

	_, err := release.Prepare(context.Background(), service.PrepareRequest{CurrentVersion: "1.0.0", NextVersion: "1.0.1"})
	require.Error(t, err)
	assert.Equal(t, "branch feature does not match the merge strategy, expected one of [master, dev]", err.Error())
}

func TestAuthorize(t *testing.T) {
	strategy := model.MergeStrategy{
		ToSameBranch:    []model.Branch{"master"},
		ToReleaseBranch: []model.BranchMapping{{Base: "develop", Destination: "release/stable"}},
	}

	t.Run("reads git state", func(t *testing.T) {
		git := &fakeGitProvider{branch: "release/stable", message: "chore: release v1.2.0"}
		authorization, err := newService(strategy, git).Authorize(context.Background(), service.AuthorizeRequest{CurrentVersion: "1.2.0"})
		require.NoError(t, err)
		assert.True(t, authorization.Allowed())
		assert.Equal(t, 2, git.calls)
	})

	t.Run("explicit values", func(t *testing.T) {
		git := &fakeGitProvider{}
		authorization, err := newService(strategy, git).Authorize(context.Background(), service.AuthorizeRequest{
			CurrentVersion: "1.2.0",
			CurrentBranch:  "develop",
			CommitMessage:  toOptString("chore: release v1.2.0"),
		})
		require.NoError(t, err)
		assert.Zero(t, git.calls)
		assert.Equal(t, model.Reject(model.BranchMismatch, "The current branch needs to be one of [master, release/stable]"), authorization)
	})

	t.Run("empty commit message is not read from git", func(t *testing.T) {
		git := &fakeGitProvider{message: "chore: release v1.2.0"}
		authorization, err := newService(strategy, git).Authorize(context.Background(), service.AuthorizeRequest{
			CurrentVersion: "1.2.0",
			CurrentBranch:  "master",
			CommitMessage:  toOptString(""),
		})
		require.NoError(t, err)
		assert.Zero(t, git.calls)
		assert.Equal(t, model.Reject(model.MessageMismatch,
			"The commit message should have started with the following:\nchore: release v1.2.0"), authorization)
	})

	t.Run("git failure", func(t *testing.T) {
		git := &fakeGitProvider{err: errors.New("not a git repository")}
		_, err := newService(strategy, git).Authorize(context.Background(), service.AuthorizeRequest{CurrentVersion: "1.2.0"})
		assert.EqualError(t, err, "not a git repository")
	})
}

func toOptString(v string) *string {
	return &v
}
