package models

// CommitInfo contains information about a commit made through the tool
type CommitInfo struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Message is the first line of the commit message
	Message string
	// Files are the paths included in the commit
	Files []string
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message string, files []string) CommitInfo {
	return CommitInfo{
		Hash:    hash,
		Message: message,
		Files:   files,
	}
}
