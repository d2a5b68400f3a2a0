package model

type Version = string

// ReleaseContext bundles the values of a single release invocation.
type ReleaseContext struct {
	CurrentVersion    Version
	NextVersion       Version
	BaseBranch        Branch
	StagingBranch     Branch
	DestinationBranch Branch
	RepoURL           string
}
