// Package tui is the interactive terminal frontend: a document list with an
// editing pane, wired to the document service for state and to the sync
// service for push and pull.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/service"
)

type TUI struct {
	services *service.Services
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run blocks inside the bubbletea event loop until the user quits. The final
// editor buffer is flushed into the active document before Run returns, so
// callers only need the usual document service Close.
func (t *TUI) Run(ctx context.Context) error {
	model := newEditorModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(editorModel); ok {
		result.captureBuffer()
	}
	return nil
}
