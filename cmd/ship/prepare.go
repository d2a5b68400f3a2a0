package main

import (
	stdcontext "context"
	"fmt"
	"io"

	"github.com/tss-calculator/ship/pkg/release/application/service"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/dependency"
)

type prepareFlags struct {
	version       string
	nextVersion   string
	baseBranch    string
	stagingBranch string
	repoURL       string
}

func prepare(ctx stdcontext.Context, out io.Writer, flags prepareFlags) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	prepared, err := dependencyContainer.Release().Prepare(ctx, service.PrepareRequest{
		CurrentVersion: flags.version,
		NextVersion:    flags.nextVersion,
		BaseBranch:     flags.baseBranch,
		StagingBranch:  flags.stagingBranch,
		RepoURL:        flags.repoURL,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "commit: %s\nstaging: %s\ndestination: %s\n\n%s\n",
		prepared.CommitMessage, prepared.Context.StagingBranch, prepared.Context.DestinationBranch, prepared.PullRequestBody)
	return err
}
