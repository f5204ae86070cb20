package tui

import (
	"fmt"
	"strings"

	"github.com/m-hosseinpour/bidi-markdown/internal/service"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

func (m editorModel) View() string {
	switch m.mode {
	case modeEdit:
		return m.viewEdit()
	case modeNameNew:
		return m.viewName("New document name")
	case modeNameRename:
		return m.viewName("Rename document")
	case modeConfirmDelete:
		return m.viewConfirm()
	default:
		return m.viewList()
	}
}

func (m editorModel) viewList() string {
	var b strings.Builder

	header := titleStyle.Render("bidi-markdown")
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	if len(m.docs) == 0 {
		b.WriteString("No documents\n")
	}
	for i, doc := range m.docs {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s  %s", cursor, doc.Name, helpStyle.Render(service.RemotePath(doc.Name)))
		if doc.ID == m.activeID {
			line = activeStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter edit  n new  r rename  d delete  s push  p pull  c copy html  q quit"))
	return appStyle.Render(b.String())
}

func (m editorModel) viewEdit() string {
	var b strings.Builder

	doc, _ := m.selected()
	b.WriteString(titleStyle.Render(doc.Name) + "\n\n")
	b.WriteString(m.content.View() + "\n\n")
	b.WriteString(helpStyle.Render("esc back to list"))

	return appStyle.Render(b.String())
}

func (m editorModel) viewName(title string) string {
	content := title + "\n\n" + m.name.View() + "\n\n" + helpStyle.Render("enter confirm  esc cancel")
	return appStyle.Render(overlayBoxStyle.Render(content))
}

func (m editorModel) viewConfirm() string {
	doc, _ := m.selected()
	content := fmt.Sprintf("Delete %q?\n\n", doc.Name)
	content += "y yes    n no"
	return appStyle.Render(overlayBoxStyle.Render(content))
}

func syncSummary(verb string, result models.SyncResult) string {
	return fmt.Sprintf("%s: %d succeeded, %d failed, %d skipped",
		verb, len(result.Succeeded), len(result.Failed), len(result.Skipped))
}
