package svn

import (
	"strings"

	"github.com/svnview/svnview/svn/internal/coerce"
)

// ParseList parses an XML repository listing. Empty or whitespace input
// is an empty listing. The report root is normally a lists element
// wrapping one list per queried target; a bare list root is accepted too.
func ParseList(path, raw string) (*ListResult, error) {
	if strings.TrimSpace(raw) == "" {
		return &ListResult{Path: path}, nil
	}

	root, err := parseReport(raw)
	if err != nil {
		return nil, err
	}

	list := root
	if root.name() != "list" {
		if list = root.child("list"); list == nil {
			return &ListResult{Path: path}, nil
		}
	}

	result := &ListResult{Path: path}
	base := list.str("path")
	for _, e := range list.children("entry") {
		result.Entries = append(result.Entries, listEntry(e, base))
	}
	return result, nil
}

func listEntry(e *node, base string) ListEntry {
	entry := ListEntry{
		Name: e.str("name"),
		Kind: kindFrom(e.str("kind"), KindFile),
	}

	entry.Path = entry.Name
	if base != "" {
		entry.Path = base + "/" + entry.Name
	}

	// Directories have no size; the report omits the element and the
	// field stays 0.
	if entry.Kind == KindFile {
		entry.Size = coerce.NonNeg(e.str("size"), 0)
	}

	if c := e.child("commit"); c != nil {
		entry.Revision = coerce.NonNeg(c.str("revision"), 0)
		entry.Author = c.str("author")
		entry.Date = c.str("date")
	}
	return entry
}
