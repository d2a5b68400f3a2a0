package format

import (
	"strings"

	"github.com/tss-calculator/ship/pkg/release/application/model"
)

type ShouldReleaseParams struct {
	CommitMessage          string
	CurrentVersion         model.Version
	CurrentBranch          model.Branch
	MergeStrategy          model.MergeStrategy
	FormatPullRequestTitle TitleFormatter
}

// ShouldRelease decides whether the observed commit triggers a release.
// A wrong commit message is reported before a wrong branch.
func ShouldRelease(params ShouldReleaseParams) model.Authorization {
	expected := titleFormatterOrDefault(params.FormatPullRequestTitle)(TitleParams{Version: params.CurrentVersion})
	if !strings.HasPrefix(params.CommitMessage, expected) {
		return model.Reject(model.MessageMismatch,
			"The commit message should have started with the following:\n"+expected)
	}
	if params.MergeStrategy.ResolveTrigger(params.CurrentBranch).Kind == model.NoMatch {
		return model.Reject(model.BranchMismatch,
			"The current branch needs to be one of ["+strings.Join(params.MergeStrategy.AllowedBranches(), ", ")+"]")
	}
	return model.Approve()
}
