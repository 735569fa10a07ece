package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/svnview/svnview/svn"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	revisionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	authorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func statusStyle(s svn.Status) lipgloss.Style {
	switch s {
	case svn.StatusAdded:
		return addedStyle
	case svn.StatusDeleted, svn.StatusMissing:
		return deletedStyle
	case svn.StatusModified, svn.StatusReplaced:
		return modifiedStyle
	case svn.StatusConflicted, svn.StatusObstructed:
		return conflictStyle
	default:
		return dimStyle
	}
}

func renderStatus(w io.Writer, result *svn.StatusResult) {
	fmt.Fprintf(w, "%s %s\n",
		headerStyle.Render(result.Path),
		revisionStyle.Render(fmt.Sprintf("r%d", result.Revision)))

	if len(result.Entries) == 0 {
		fmt.Fprintln(w, dimStyle.Render("working copy is clean"))
		return
	}

	for _, e := range result.Entries {
		line := fmt.Sprintf("%-12s %s", e.Status, e.Path)
		if e.PropsStatus != "" {
			line += dimStyle.Render(fmt.Sprintf("  [props %s]", e.PropsStatus))
		}
		if e.Lock != nil {
			line += dimStyle.Render("  [locked by " + e.Lock.Owner + "]")
		}
		fmt.Fprintln(w, statusStyle(e.Status).Render(line))
	}
}

func renderLog(w io.Writer, result *svn.LogResult) {
	if len(result.Entries) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no history"))
		return
	}

	for _, e := range result.Entries {
		fmt.Fprintf(w, "%s %s %s\n",
			revisionStyle.Render(fmt.Sprintf("r%d", e.Revision)),
			authorStyle.Render(e.Author),
			dimStyle.Render(e.Date))
		if e.Message != "" {
			fmt.Fprintf(w, "  %s\n", e.Message)
		}
		for _, p := range e.Paths {
			fmt.Fprintf(w, "  %s %s\n", pathActionLabel(p.Action), p.Path)
		}
		fmt.Fprintln(w)
	}
}

func pathActionLabel(a svn.PathAction) string {
	switch a {
	case svn.ActionAdded:
		return addedStyle.Render("A")
	case svn.ActionDeleted:
		return deletedStyle.Render("D")
	case svn.ActionReplaced:
		return modifiedStyle.Render("R")
	default:
		return modifiedStyle.Render("M")
	}
}

func renderInfo(w io.Writer, result *svn.InfoResult) {
	fmt.Fprintf(w, "%s %s (%s)\n",
		headerStyle.Render(result.Path),
		revisionStyle.Render(fmt.Sprintf("r%d", result.Revision)),
		result.Kind)
	fmt.Fprintf(w, "URL:             %s\n", result.URL)
	fmt.Fprintf(w, "Repository root: %s\n", result.RepositoryRoot)
	fmt.Fprintf(w, "Repository UUID: %s\n", result.RepositoryUUID)
	fmt.Fprintf(w, "Last changed:    %s by %s on %s\n",
		revisionStyle.Render(fmt.Sprintf("r%d", result.LastChangedRevision)),
		authorStyle.Render(result.LastChangedAuthor),
		result.LastChangedDate)
	if result.WorkingCopyRoot != "" {
		fmt.Fprintf(w, "Working copy:    %s\n", result.WorkingCopyRoot)
	}
}

func renderList(w io.Writer, result *svn.ListResult) {
	fmt.Fprintln(w, headerStyle.Render(result.Path))
	for _, e := range result.Entries {
		name := e.Name
		if e.Kind == svn.KindDir {
			name = authorStyle.Render(name + "/")
		}
		fmt.Fprintf(w, "%s %8d  %-10s %s\n",
			revisionStyle.Render(fmt.Sprintf("r%-6d", e.Revision)),
			e.Size,
			authorStyle.Render(e.Author),
			name)
	}
}
