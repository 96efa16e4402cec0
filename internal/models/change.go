package models

// ChangeType classifies how a file differs from HEAD
type ChangeType int

const (
	// ChangeModified indicates the file content changed
	ChangeModified ChangeType = iota
	// ChangeAdded indicates the file is newly added to the index
	ChangeAdded
	// ChangeDeleted indicates the file was removed
	ChangeDeleted
	// ChangeRenamed indicates the file was moved
	ChangeRenamed
	// ChangeCopied indicates the file was copied from another path
	ChangeCopied
	// ChangeUntracked indicates the file is not tracked by git
	ChangeUntracked
	// ChangeIgnored indicates the file matches an ignore rule
	ChangeIgnored
	// ChangeIntentToAdd indicates the file was added with --intent-to-add
	ChangeIntentToAdd
	// ChangeConflict indicates the file has unresolved merge conflicts
	ChangeConflict
)

// String returns the display form of a ChangeType
func (t ChangeType) String() string {
	switch t {
	case ChangeModified:
		return "modified"
	case ChangeAdded:
		return "added"
	case ChangeDeleted:
		return "deleted"
	case ChangeRenamed:
		return "renamed"
	case ChangeCopied:
		return "copied"
	case ChangeUntracked:
		return "untracked"
	case ChangeIgnored:
		return "ignored"
	case ChangeIntentToAdd:
		return "intent-to-add"
	case ChangeConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Category is the status bucket a change was reported under
type Category int

const (
	// CategoryUntracked covers files git has never seen
	CategoryUntracked Category = iota
	// CategoryStaged covers index (cached) changes
	CategoryStaged
	// CategoryUnstaged covers working-tree changes
	CategoryUnstaged
)

// String returns the display form of a Category
func (c Category) String() string {
	switch c {
	case CategoryUntracked:
		return "untracked"
	case CategoryStaged:
		return "staged"
	case CategoryUnstaged:
		return "unstaged"
	default:
		return "unknown"
	}
}

// ChangeRecord is a single changed file as reported by a VCS client.
// Records are recomputed on every enumeration and never persisted.
type ChangeRecord struct {
	// Path is the absolute path of the file
	Path string
	// OldPath is the original path for renames and copies
	OldPath string
	// Type classifies the change
	Type ChangeType
	// Category is the status bucket the change came from
	Category Category
}

// NewChangeRecord creates a new ChangeRecord
func NewChangeRecord(path string, changeType ChangeType, category Category) ChangeRecord {
	return ChangeRecord{
		Path:     path,
		Type:     changeType,
		Category: category,
	}
}
