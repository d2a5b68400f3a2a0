package format

import (
	"fmt"
	"strings"

	"github.com/tss-calculator/ship/pkg/release/application/model"
)

const (
	guideURL    = "https://github.com/algolia/shipjs/blob/master/GUIDE.md#mergestrategy"
	homepageURL = "https://github.com/algolia/shipjs"
	assetsURL   = "https://raw.githubusercontent.com/algolia/shipjs/v%s/assets/%s"
	triggerCmd  = "shipjs trigger"
)

type PullRequestParams struct {
	FormatPullRequestTitle TitleFormatter
	RepoURL                string
	BaseBranch             model.Branch
	StagingBranch          model.Branch
	DestinationBranch      model.Branch
	MergeStrategy          model.MergeStrategy
	CurrentVersion         model.Version
	NextVersion            model.Version
	// ToolVersion tags the image assets linked from the merge instructions.
	ToolVersion model.Version
}

// PullRequestMessage renders the pull request body. The text is user facing; keep it byte stable.
func PullRequestMessage(params PullRequestParams) string {
	title := titleFormatterOrDefault(params.FormatPullRequestTitle)(TitleParams{Version: params.NextVersion})
	resolution := params.MergeStrategy.Resolve(params.BaseBranch)

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString("\n")
	b.WriteString("## Release Summary\n")
	fmt.Fprintf(&b, "- Version change: `v%s` → `v%s`\n", params.CurrentVersion, params.NextVersion)
	fmt.Fprintf(&b, "- Merge: `%s` → `%s`\n", params.StagingBranch, params.DestinationBranch)
	if resolution.Kind == model.SameBranch {
		fmt.Fprintf(&b, "- [Compare the changes between the versions](%s/compare/v%s...%s)\n",
			params.RepoURL, params.CurrentVersion, params.StagingBranch)
		writeSquashAndMerge(&b, title, params.ToolVersion)
	} else {
		writeMergeCommit(&b, title, params.ToolVersion)
	}
	b.WriteString("\n")
	b.WriteString("---\n")
	fmt.Fprintf(&b, "_This pull request is automatically generated by [Ship.js](%s)_", homepageURL)
	return b.String()
}

func writeSquashAndMerge(b *strings.Builder, title string, toolVersion model.Version) {
	fmt.Fprintf(b, "> :warning: When merging this pull request, you need to **_\"Squash and merge\"_** and make sure the title starts with `%s`.\n", title)
	writeTriggerNotice(b, title)
	fmt.Fprintf(b, "> ![Squash and merge](%s)\n", fmt.Sprintf(assetsURL, toolVersion, "squash-and-merge.png"))
}

func writeMergeCommit(b *strings.Builder, title string, toolVersion model.Version) {
	fmt.Fprintf(b, "> :warning:\uFE0F When merging this pull request, you need to **_\"Merge pull request(Create a merge commit)\"_** and also, you must modify the title to start with `%s`.\n", title)
	writeTriggerNotice(b, title)
	fmt.Fprintf(b, "> ![Merge pull request](%s)\n", fmt.Sprintf(assetsURL, toolVersion, "merge-pull-request.png"))
}

func writeTriggerNotice(b *strings.Builder, title string) {
	fmt.Fprintf(b, "> After that, a commit `%s` will be added and `%s` will be able to trigger the release based on the commit.\n", title, triggerCmd)
	fmt.Fprintf(b, "> Fore more information, please refer to the mergeStrategy section of the [guide](%s).\n", guideURL)
}
