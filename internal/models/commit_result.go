package models

// CommitStatus represents the outcome of a commit attempt
type CommitStatus interface {
	isCommitStatus()
}

type commitStatusCommitted struct{}
type commitStatusPushed struct{}
type commitStatusSkipped struct{ Reason string }
type commitStatusFailed struct{ Error string }

func (commitStatusCommitted) isCommitStatus() {}
func (commitStatusPushed) isCommitStatus()    {}
func (commitStatusSkipped) isCommitStatus()   {}
func (commitStatusFailed) isCommitStatus()    {}

// CommitStatus variants
var (
	// Committed indicates the commit was created
	Committed CommitStatus = commitStatusCommitted{}
	// Pushed indicates the commit was created and pushed to the remote
	Pushed CommitStatus = commitStatusPushed{}
)

// SkippedCommit creates a CommitStatus for an aborted attempt with a reason
func SkippedCommit(reason string) CommitStatus {
	return commitStatusSkipped{Reason: reason}
}

// FailedCommit creates a CommitStatus for a failed attempt with an error message
func FailedCommit(err string) CommitStatus {
	return commitStatusFailed{Error: err}
}

// CommitResult records the outcome of one commit attempt
type CommitResult struct {
	// Repo is the repository the commit targeted
	Repo RepoInfo
	// Status of the attempt
	Status CommitStatus
	// Hash is the short hash of the new commit, if one was created
	Hash string
	// Files that were staged for the commit
	Files []string
	// FallbackClient is the name of the secondary client, when staging or
	// committing only succeeded through it
	FallbackClient string
	// PushError carries a push failure that did not invalidate the commit
	PushError string
}

// IsStatusCommitted returns true if status is Committed
func IsStatusCommitted(s CommitStatus) bool {
	_, ok := s.(commitStatusCommitted)
	return ok
}

// IsStatusPushed returns true if status is Pushed
func IsStatusPushed(s CommitStatus) bool {
	_, ok := s.(commitStatusPushed)
	return ok
}

// IsStatusSkipped returns true if status is Skipped
func IsStatusSkipped(s CommitStatus) bool {
	_, ok := s.(commitStatusSkipped)
	return ok
}

// IsStatusFailed returns true if status is Failed
func IsStatusFailed(s CommitStatus) bool {
	_, ok := s.(commitStatusFailed)
	return ok
}

// IsStatusSuccess returns true if status is Committed or Pushed
func IsStatusSuccess(s CommitStatus) bool {
	return IsStatusCommitted(s) || IsStatusPushed(s)
}

// GetStatusReason returns the reason string for Skipped or Failed statuses
func GetStatusReason(s CommitStatus) string {
	if skipped, ok := s.(commitStatusSkipped); ok {
		return skipped.Reason
	}
	if failed, ok := s.(commitStatusFailed); ok {
		return failed.Error
	}
	return ""
}
