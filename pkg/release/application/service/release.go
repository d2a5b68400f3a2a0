package service

import (
	"context"
	"fmt"
	"strings"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/tss-calculator/ship/pkg/release/application/format"
	"github.com/tss-calculator/ship/pkg/release/application/model"
)

type GitProvider interface {
	CurrentBranch(ctx context.Context) (model.Branch, error)
	HeadCommitMessage(ctx context.Context) (string, error)
	RemoteURL(ctx context.Context) (string, error)
}

type PrepareRequest struct {
	CurrentVersion model.Version
	NextVersion    model.Version
	// Empty branches and URL are resolved through git.
	BaseBranch    model.Branch
	StagingBranch model.Branch
	RepoURL       string
}

type Prepared struct {
	Context          model.ReleaseContext
	CommitMessage    string
	PullRequestTitle string
	PullRequestBody  string
}

type AuthorizeRequest struct {
	CurrentVersion model.Version
	// Empty branch and nil message are read from git. An empty message is checked as is.
	CurrentBranch model.Branch
	CommitMessage *string
}

type Release interface {
	Prepare(ctx context.Context, request PrepareRequest) (Prepared, error)
	Authorize(ctx context.Context, request AuthorizeRequest) (model.Authorization, error)
}

func NewReleaseService(
	config model.Release,
	toolVersion model.Version,
	logger applogger.Logger,
	gitProvider GitProvider,
) Release {
	return &release{
		config:      config,
		toolVersion: toolVersion,
		logger:      logger,
		gitProvider: gitProvider,
	}
}

type release struct {
	config      model.Release
	toolVersion model.Version

	logger      applogger.Logger
	gitProvider GitProvider
}

func (service release) Prepare(ctx context.Context, request PrepareRequest) (Prepared, error) {
	releaseContext, err := service.releaseContext(ctx, request)
	if err != nil {
		return Prepared{}, err
	}
	strategy := service.config.MergeStrategy
	service.logger.Info(fmt.Sprintf("prepare release v%v from \"%v\"", releaseContext.NextVersion, releaseContext.BaseBranch))
	return Prepared{
		Context: releaseContext,
		CommitMessage: format.CommitMessage(format.CommitMessageParams{
			Version:       releaseContext.NextVersion,
			MergeStrategy: strategy,
			BaseBranch:    releaseContext.BaseBranch,
		}),
		PullRequestTitle: format.PullRequestTitle(format.TitleParams{Version: releaseContext.NextVersion}),
		PullRequestBody: format.PullRequestMessage(format.PullRequestParams{
			FormatPullRequestTitle: format.PullRequestTitle,
			RepoURL:                releaseContext.RepoURL,
			BaseBranch:             releaseContext.BaseBranch,
			StagingBranch:          releaseContext.StagingBranch,
			DestinationBranch:      releaseContext.DestinationBranch,
			MergeStrategy:          strategy,
			CurrentVersion:         releaseContext.CurrentVersion,
			NextVersion:            releaseContext.NextVersion,
			ToolVersion:            service.toolVersion,
		}),
	}, nil
}

func (service release) Authorize(ctx context.Context, request AuthorizeRequest) (model.Authorization, error) {
	var err error
	if request.CurrentBranch == "" {
		request.CurrentBranch, err = service.gitProvider.CurrentBranch(ctx)
		if err != nil {
			return model.Authorization{}, err
		}
	}
	if request.CommitMessage == nil {
		message, err := service.gitProvider.HeadCommitMessage(ctx)
		if err != nil {
			return model.Authorization{}, err
		}
		request.CommitMessage = &message
	}
	authorization := format.ShouldRelease(format.ShouldReleaseParams{
		CommitMessage:          *request.CommitMessage,
		CurrentVersion:         request.CurrentVersion,
		CurrentBranch:          request.CurrentBranch,
		MergeStrategy:          service.config.MergeStrategy,
		FormatPullRequestTitle: format.PullRequestTitle,
	})
	if authorization.Allowed() {
		service.logger.Info(fmt.Sprintf("release v%v on \"%v\" is authorized", request.CurrentVersion, request.CurrentBranch))
	} else {
		service.logger.Info(fmt.Sprintf("skip release v%v on \"%v\" (%v)", request.CurrentVersion, request.CurrentBranch, authorization.Kind))
	}
	return authorization, nil
}

func (service release) releaseContext(ctx context.Context, request PrepareRequest) (model.ReleaseContext, error) {
	var err error
	baseBranch := request.BaseBranch
	if baseBranch == "" {
		baseBranch, err = service.gitProvider.CurrentBranch(ctx)
		if err != nil {
			return model.ReleaseContext{}, err
		}
	}
	resolution := service.config.MergeStrategy.Resolve(baseBranch)
	if resolution.Kind == model.NoMatch {
		return model.ReleaseContext{}, fmt.Errorf(
			"branch %v does not match the merge strategy, expected one of [%v]",
			baseBranch, strings.Join(service.config.MergeStrategy.BaseBranches(), ", "),
		)
	}
	repoURL := request.RepoURL
	if repoURL == "" {
		repoURL = service.config.RepoURL
	}
	if repoURL == "" {
		repoURL, err = service.gitProvider.RemoteURL(ctx)
		if err != nil {
			return model.ReleaseContext{}, err
		}
	}
	stagingBranch := request.StagingBranch
	if stagingBranch == "" {
		stagingBranch = service.config.StagingBranchPrefix + request.NextVersion
	}
	return model.ReleaseContext{
		CurrentVersion:    request.CurrentVersion,
		NextVersion:       request.NextVersion,
		BaseBranch:        baseBranch,
		StagingBranch:     stagingBranch,
		DestinationBranch: resolution.Destination,
		RepoURL:           repoURL,
	}, nil
}
