package model

type RejectionKind int

const (
	Approved RejectionKind = iota
	MessageMismatch
	BranchMismatch
)

func (kind RejectionKind) String() string {
	switch kind {
	case Approved:
		return "approved"
	case MessageMismatch:
		return "message-mismatch"
	case BranchMismatch:
		return "branch-mismatch"
	default:
		return "unknown"
	}
}

// Authorization is the outcome of checking a commit against the merge strategy.
// Reason is empty when the release is approved.
type Authorization struct {
	Kind   RejectionKind
	Reason string
}

func Approve() Authorization {
	return Authorization{Kind: Approved}
}

func Reject(kind RejectionKind, reason string) Authorization {
	return Authorization{Kind: kind, Reason: reason}
}

func (a Authorization) Allowed() bool {
	return a.Kind == Approved
}

func (a Authorization) Err() error {
	if a.Allowed() {
		return nil
	}
	return &RejectionError{Kind: a.Kind, Reason: a.Reason}
}

type RejectionError struct {
	Kind   RejectionKind
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}
