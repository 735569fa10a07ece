package svn

import (
	"strings"

	"github.com/svnview/svnview/svn/internal/coerce"
)

// ParseInfo parses an XML info report. Unlike status and log there is no
// legitimate empty result: info describes exactly one existing node, so
// empty input or a report without an entry fails with *EmptyInputError.
// An unrecognized node kind defaults to dir; assuming directory scope is
// the safer direction for callers acting on the answer.
func ParseInfo(raw string) (*InfoResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &EmptyInputError{Op: "info"}
	}

	root, err := parseReport(raw)
	if err != nil {
		return nil, err
	}

	entry := root.child("entry")
	if entry == nil {
		return nil, &EmptyInputError{Op: "info"}
	}

	result := &InfoResult{
		Path:     entry.str("path"),
		URL:      entry.str("url"),
		Revision: coerce.NonNeg(entry.str("revision"), 0),
		Kind:     kindFrom(entry.str("kind"), KindDir),
	}

	if repo := entry.child("repository"); repo != nil {
		result.RepositoryRoot = repo.str("root")
		result.RepositoryUUID = repo.str("uuid")
	}

	if commit := entry.child("commit"); commit != nil {
		result.LastChangedRevision = coerce.NonNeg(commit.str("revision"), 0)
		result.LastChangedAuthor = commit.str("author")
		result.LastChangedDate = commit.str("date")
	}

	// Present only when the target lives inside a checked-out working
	// copy rather than being a bare repository URL.
	if wc := entry.child("wc-info"); wc != nil {
		result.WorkingCopyRoot = wc.str("wcroot-abspath")
	}

	return result, nil
}
