package main

import (
	stdcontext "context"

	"github.com/tss-calculator/ship/pkg/release/application/service"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/dependency"
)

// shouldRelease reads the commit message from git when commitMessage is nil.
func shouldRelease(ctx stdcontext.Context, version, branch string, commitMessage *string) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	authorization, err := dependencyContainer.Release().Authorize(ctx, service.AuthorizeRequest{
		CurrentVersion: version,
		CurrentBranch:  branch,
		CommitMessage:  commitMessage,
	})
	if err != nil {
		return err
	}
	return authorization.Err()
}

func optionalFlag(isSet bool, value string) *string {
	if !isSet {
		return nil
	}
	return &value
}
