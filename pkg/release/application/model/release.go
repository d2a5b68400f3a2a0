package model

const DefaultStagingBranchPrefix = "releases/v"

type Release struct {
	MergeStrategy       MergeStrategy
	StagingBranchPrefix string
	RepoURL             string
}

func DefaultRelease() Release {
	return Release{
		MergeStrategy:       DefaultMergeStrategy(),
		StagingBranchPrefix: DefaultStagingBranchPrefix,
	}
}
