// Package svn provides a Go interface to Subversion working copies and
// repositories by wrapping the svn command-line client.
// Reports are requested in the client's XML output mode and parsed into
// plain value structs - consumers of this package never see raw XML.
package svn

// Status is a working-copy item state as reported by the client.
type Status string

const (
	StatusNone        Status = "none"
	StatusAdded       Status = "added"
	StatusConflicted  Status = "conflicted"
	StatusDeleted     Status = "deleted"
	StatusIgnored     Status = "ignored"
	StatusModified    Status = "modified"
	StatusReplaced    Status = "replaced"
	StatusExternal    Status = "external"
	StatusUnversioned Status = "unversioned"
	StatusMissing     Status = "missing"
	StatusObstructed  Status = "obstructed"
)

// statusFrom maps a reported item value onto the closed status set.
// Anything the client reports outside that set becomes StatusNone.
func statusFrom(s string) Status {
	switch Status(s) {
	case StatusAdded, StatusConflicted, StatusDeleted, StatusIgnored,
		StatusModified, StatusReplaced, StatusExternal,
		StatusUnversioned, StatusMissing, StatusObstructed:
		return Status(s)
	default:
		return StatusNone
	}
}

// NodeKind discriminates files from directories in info and list reports.
type NodeKind string

const (
	KindFile NodeKind = "file"
	KindDir  NodeKind = "dir"
)

// kindFrom validates a reported kind, falling back to def when the value
// is missing or unrecognized.
func kindFrom(s string, def NodeKind) NodeKind {
	switch NodeKind(s) {
	case KindFile, KindDir:
		return NodeKind(s)
	default:
		return def
	}
}

// PathAction is the change applied to one path within a revision.
type PathAction string

const (
	ActionAdded    PathAction = "added"
	ActionDeleted  PathAction = "deleted"
	ActionModified PathAction = "modified"
	ActionReplaced PathAction = "replaced"
)

// actionFrom maps the client's one-letter action code onto PathAction.
// Unknown or missing codes become ActionModified.
func actionFrom(s string) PathAction {
	switch s {
	case "A":
		return ActionAdded
	case "D":
		return ActionDeleted
	case "M":
		return ActionModified
	case "R":
		return ActionReplaced
	default:
		return ActionModified
	}
}

// CommitInfo is the last-commit metadata attached to a status or list entry.
type CommitInfo struct {
	Revision int64
	Author   string
	Date     string
}

// LockInfo describes a repository lock held on a path.
type LockInfo struct {
	Owner   string
	Comment string
	Date    string
}

// StatusEntry is one path in a working-copy status report.
// Commit and Lock are nil when the report carried no such sub-node.
// IsDirectory is never set by the parser; deleted or missing paths cannot
// be classified without filesystem access, which is the caller's job.
type StatusEntry struct {
	Path        string
	Status      Status
	PropsStatus Status // empty unless the properties state differs from none
	IsDirectory bool
	Commit      *CommitInfo
	Lock        *LockInfo
}

// StatusResult is a parsed working-copy status report.
// Entries preserve report order and are not guaranteed sorted.
type StatusResult struct {
	Path     string // queried root
	Entries  []StatusEntry
	Revision int64 // base revision of the queried target, 0 when absent
}

// LogPath is one changed path within a log entry.
type LogPath struct {
	Action           PathAction
	Path             string
	CopyFromPath     string
	CopyFromRevision int64
}

// LogEntry is a single commit in a history report.
type LogEntry struct {
	Revision int64
	Author   string // "unknown" when the commit was anonymous
	Date     string
	Message  string
	Paths    []LogPath
}

// LogResult is a parsed history report. Entries are sorted strictly
// descending by revision regardless of report order. StartRevision and
// EndRevision are the minimum and maximum revisions in the set, both 0
// when the set is empty.
type LogResult struct {
	Entries       []LogEntry
	StartRevision int64
	EndRevision   int64
}

// InfoResult describes a single versioned node.
type InfoResult struct {
	Path                string
	URL                 string
	RepositoryRoot      string
	RepositoryUUID      string
	Revision            int64
	Kind                NodeKind
	LastChangedAuthor   string
	LastChangedRevision int64
	LastChangedDate     string
	WorkingCopyRoot     string // empty when the target is not inside a working copy
}

// ListEntry is one node in a repository listing.
type ListEntry struct {
	Name     string
	Path     string
	Kind     NodeKind
	Size     int64 // files only, 0 for directories
	Revision int64
	Author   string
	Date     string
}

// ListResult is a parsed repository listing.
type ListResult struct {
	Path    string
	Entries []ListEntry
}
