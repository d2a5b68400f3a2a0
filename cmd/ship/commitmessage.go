package main

import (
	stdcontext "context"
	"fmt"
	"io"

	"github.com/tss-calculator/ship/pkg/release/application/format"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/dependency"
)

func commitMessage(ctx stdcontext.Context, out io.Writer, version, baseBranch string) error {
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, format.CommitMessage(format.CommitMessageParams{
		Version:       version,
		MergeStrategy: dependencyContainer.Config().MergeStrategy,
		BaseBranch:    baseBranch,
	}))
	return err
}
