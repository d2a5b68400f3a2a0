package format

import (
	"github.com/tss-calculator/ship/pkg/release/application/model"
)

const (
	releasePrefix = "chore: release v"
	preparePrefix = "chore: prepare v"
)

type TitleParams struct {
	Version model.Version
}

// TitleFormatter produces the pull request title, which is also the expected trigger commit message.
type TitleFormatter func(params TitleParams) string

func PullRequestTitle(params TitleParams) string {
	return releasePrefix + params.Version
}

type CommitMessageParams struct {
	Version       model.Version
	MergeStrategy model.MergeStrategy
	BaseBranch    model.Branch
}

// CommitMessage only releases when the commit lands on the base branch itself.
// Otherwise the commit prepares a release that the destination branch will carry.
func CommitMessage(params CommitMessageParams) string {
	if params.MergeStrategy.Resolve(params.BaseBranch).Kind == model.SameBranch {
		return releasePrefix + params.Version
	}
	return preparePrefix + params.Version
}

func titleFormatterOrDefault(formatter TitleFormatter) TitleFormatter {
	if formatter == nil {
		return PullRequestTitle
	}
	return formatter
}
