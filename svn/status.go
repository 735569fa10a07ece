package svn

import (
	"strings"

	"github.com/svnview/svnview/svn/internal/coerce"
)

// ParseStatus parses an XML status report for the working copy rooted at
// path. Empty or whitespace input is a legitimate fully-clean result, as
// is a report without a target node - some client versions omit it when
// nothing is modified.
func ParseStatus(path, raw string) (*StatusResult, error) {
	if strings.TrimSpace(raw) == "" {
		return &StatusResult{Path: path}, nil
	}

	root, err := parseReport(raw)
	if err != nil {
		return nil, err
	}

	target := root.child("target")
	if target == nil {
		return &StatusResult{Path: path}, nil
	}

	result := &StatusResult{
		Path:     path,
		Revision: coerce.NonNeg(target.str("revision"), 0),
	}

	for _, e := range target.children("entry") {
		result.Entries = append(result.Entries, statusEntry(e))
	}
	return result, nil
}

func statusEntry(e *node) StatusEntry {
	entry := StatusEntry{
		Path:   e.str("path"),
		Status: StatusNone,
	}

	ws := e.child("wc-status")
	if ws == nil {
		return entry
	}

	entry.Status = statusFrom(ws.str("item"))
	if props := statusFrom(ws.str("props")); props != StatusNone {
		entry.PropsStatus = props
	}

	if c := ws.child("commit"); c != nil {
		entry.Commit = &CommitInfo{
			Revision: coerce.NonNeg(c.str("revision"), 0),
			Author:   c.str("author"),
			Date:     c.str("date"),
		}
	}

	if l := ws.child("lock"); l != nil {
		entry.Lock = &LockInfo{
			Owner:   l.str("owner"),
			Comment: l.str("comment"),
			Date:    l.str("created"),
		}
	}
	return entry
}
