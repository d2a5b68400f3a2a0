package model

type Branch = string

type BranchMapping struct {
	Base        Branch
	Destination Branch
}

// MergeStrategy maps base branches to release behavior.
// A base branch is expected in at most one of the two collections.
type MergeStrategy struct {
	ToSameBranch    []Branch
	ToReleaseBranch []BranchMapping
}

func DefaultMergeStrategy() MergeStrategy {
	return MergeStrategy{ToSameBranch: []Branch{"master"}}
}

type ResolutionKind int

const (
	NoMatch ResolutionKind = iota
	SameBranch
	ToReleaseBranch
)

func (kind ResolutionKind) String() string {
	switch kind {
	case SameBranch:
		return "same-branch"
	case ToReleaseBranch:
		return "release-branch"
	default:
		return "no-match"
	}
}

type Resolution struct {
	Kind        ResolutionKind
	Destination Branch
}

// Resolve matches a base branch: ToSameBranch is checked before the keys of ToReleaseBranch.
func (strategy MergeStrategy) Resolve(branch Branch) Resolution {
	if strategy.isSameBranch(branch) {
		return Resolution{Kind: SameBranch, Destination: branch}
	}
	for _, mapping := range strategy.ToReleaseBranch {
		if mapping.Base == branch {
			return Resolution{Kind: ToReleaseBranch, Destination: mapping.Destination}
		}
	}
	return Resolution{Kind: NoMatch}
}

// ResolveTrigger matches the branch a release commit landed on.
// Under the release-branch strategy that is the destination, not the base.
func (strategy MergeStrategy) ResolveTrigger(branch Branch) Resolution {
	if strategy.isSameBranch(branch) {
		return Resolution{Kind: SameBranch, Destination: branch}
	}
	for _, mapping := range strategy.ToReleaseBranch {
		if mapping.Destination == branch {
			return Resolution{Kind: ToReleaseBranch, Destination: mapping.Destination}
		}
	}
	return Resolution{Kind: NoMatch}
}

// AllowedBranches lists the branches a release commit may land on, in declared order.
func (strategy MergeStrategy) AllowedBranches() []Branch {
	branches := make([]Branch, 0, len(strategy.ToSameBranch)+len(strategy.ToReleaseBranch))
	branches = append(branches, strategy.ToSameBranch...)
	for _, mapping := range strategy.ToReleaseBranch {
		branches = append(branches, mapping.Destination)
	}
	return branches
}

// BaseBranches lists the branches a release may be prepared on, in declared order.
func (strategy MergeStrategy) BaseBranches() []Branch {
	branches := make([]Branch, 0, len(strategy.ToSameBranch)+len(strategy.ToReleaseBranch))
	branches = append(branches, strategy.ToSameBranch...)
	for _, mapping := range strategy.ToReleaseBranch {
		branches = append(branches, mapping.Base)
	}
	return branches
}

func (strategy MergeStrategy) isSameBranch(branch Branch) bool {
	for _, b := range strategy.ToSameBranch {
		if b == branch {
			return true
		}
	}
	return false
}
