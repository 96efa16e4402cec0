package models

// RepoInfo contains information about a git repository
type RepoInfo struct {
	// Path to the repository root
	Path string
	// DisplayName (e.g., "attuned-web")
	DisplayName string
	// Branch currently checked out
	Branch string
}

// NewRepoInfo creates a new RepoInfo
func NewRepoInfo(path, displayName, branch string) RepoInfo {
	return RepoInfo{
		Path:        path,
		DisplayName: displayName,
		Branch:      branch,
	}
}

// Valid reports whether the handle points at a repository root
func (r RepoInfo) Valid() bool {
	return r.Path != ""
}
