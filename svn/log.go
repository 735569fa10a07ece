package svn

import (
	"sort"
	"strings"

	"github.com/svnview/svnview/svn/internal/coerce"
)

// UnknownAuthor is substituted for commits the repository recorded without
// an author, so every entry stays displayable.
const UnknownAuthor = "unknown"

// ParseLog parses an XML history report. Empty or whitespace input yields
// an empty result. Entries come back sorted strictly descending by
// revision regardless of report order.
func ParseLog(raw string) (*LogResult, error) {
	if strings.TrimSpace(raw) == "" {
		return &LogResult{}, nil
	}

	root, err := parseReport(raw)
	if err != nil {
		return nil, err
	}

	result := &LogResult{}
	for _, e := range root.children("logentry") {
		result.Entries = append(result.Entries, logEntry(e))
	}

	if len(result.Entries) == 0 {
		return result, nil
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		return result.Entries[i].Revision > result.Entries[j].Revision
	})
	result.EndRevision = result.Entries[0].Revision
	result.StartRevision = result.Entries[len(result.Entries)-1].Revision
	return result, nil
}

func logEntry(e *node) LogEntry {
	entry := LogEntry{
		Revision: coerce.NonNeg(e.str("revision"), 0),
		Author:   coerce.Str(e.str("author"), UnknownAuthor),
		Date:     e.str("date"),
		Message:  logMessage(e),
	}

	if paths := e.child("paths"); paths != nil {
		for _, p := range paths.children("path") {
			entry.Paths = append(entry.Paths, logPath(p))
		}
	}
	return entry
}

// logMessage probes the two tag names the client has used for the commit
// message across versions; the first non-empty match wins.
func logMessage(e *node) string {
	if msg := e.str("msg"); msg != "" {
		return msg
	}
	return e.str("message")
}

func logPath(p *node) LogPath {
	// The changed path appears as element text in current reports and
	// under a path attribute in older ones; text content wins.
	return LogPath{
		Action:           actionFrom(p.str("action")),
		Path:             coerce.Str(p.text(), p.str("path")),
		CopyFromPath:     p.str("copyfrom-path"),
		CopyFromRevision: coerce.NonNeg(p.str("copyfrom-rev"), 0),
	}
}
