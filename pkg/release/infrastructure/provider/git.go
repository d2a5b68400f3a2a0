package provider

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/tss-calculator/ship/pkg/release/application/model"
	"github.com/tss-calculator/ship/pkg/release/application/service"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/command"
)

func NewGitProvider(workDir string, runner command.Runner) service.GitProvider {
	return &gitProvider{
		workDir: workDir,
		runner:  runner,
	}
}

type gitProvider struct {
	workDir string
	runner  command.Runner
}

func (provider gitProvider) CurrentBranch(ctx context.Context) (model.Branch, error) {
	branch, err := provider.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	return branch, errors.Wrap(err, "failed to get current branch")
}

func (provider gitProvider) HeadCommitMessage(ctx context.Context) (string, error) {
	message, err := provider.git(ctx, "log", "-1", "--pretty=%B")
	return message, errors.Wrap(err, "failed to get last commit message")
}

func (provider gitProvider) RemoteURL(ctx context.Context) (string, error) {
	url, err := provider.git(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", errors.Wrap(err, "failed to get origin url")
	}
	return NormalizeRemoteURL(url), nil
}

func (provider gitProvider) git(ctx context.Context, args ...string) (string, error) {
	return provider.runner.Execute(ctx, command.Command{
		WorkDir:    provider.workDir,
		Executable: "git",
		Args:       args,
	})
}

// NormalizeRemoteURL turns a git remote into the https URL of the repository page.
func NormalizeRemoteURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(url, ".git")
	if strings.HasPrefix(url, "git@") {
		host, path, found := strings.Cut(strings.TrimPrefix(url, "git@"), ":")
		if found {
			return "https://" + host + "/" + path
		}
	}
	if strings.HasPrefix(url, "ssh://git@") {
		return "https://" + strings.TrimPrefix(url, "ssh://git@")
	}
	return url
}
