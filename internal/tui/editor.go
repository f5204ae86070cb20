package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/m-hosseinpour/bidi-markdown/internal/render"
	"github.com/m-hosseinpour/bidi-markdown/internal/service"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

type editorMode int

const (
	modeList editorMode = iota
	modeEdit
	modeNameNew
	modeNameRename
	modeConfirmDelete
)

type editorModel struct {
	ctx      context.Context
	services *service.Services

	mode     editorMode
	docs     []models.Document
	activeID string
	idx      int

	content textarea.Model
	name    textinput.Model
	spinner spinner.Model
	syncing bool

	status string
	errMsg string

	width  int
	height int
}

func newEditorModel(ctx context.Context, services *service.Services) editorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	content := textarea.New()
	content.CharLimit = 0

	name := textinput.New()
	name.CharLimit = 100

	m := editorModel{
		ctx:      ctx,
		services: services,
		content:  content,
		name:     name,
		spinner:  s,
	}
	m.refresh()
	return m
}

// refresh re-reads the document snapshot and clamps the cursor.
func (m *editorModel) refresh() {
	state := m.services.Documents.Snapshot(m.ctx)
	m.docs = state.Documents
	m.activeID = state.ActiveID
	if m.idx >= len(m.docs) {
		m.idx = len(m.docs) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m editorModel) selected() (models.Document, bool) {
	if len(m.docs) == 0 || m.idx < 0 || m.idx >= len(m.docs) {
		return models.Document{}, false
	}
	return m.docs[m.idx], true
}

// captureBuffer pushes the in-flight textarea content into the active
// document so nothing typed since the last keystroke-driven update is lost.
func (m editorModel) captureBuffer() {
	if m.mode == modeEdit && m.activeID != "" {
		m.services.Documents.UpdateContent(m.ctx, m.activeID, m.content.Value())
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.content.SetWidth(msg.Width - 4)
		m.content.SetHeight(msg.Height - 6)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.captureBuffer()
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case pushDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = syncSummary("pushed", msg.result)
		return m, m.cmdClearStatus()

	case pullDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.refresh()
		m.status = syncSummary("pulled", msg.result)
		return m, m.cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "rendered HTML copied"
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m editorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.updateListKey(msg)
	case modeEdit:
		return m.updateEditKey(msg)
	case modeNameNew, modeNameRename:
		return m.updateNameKey(msg)
	case modeConfirmDelete:
		return m.updateConfirmKey(msg)
	}
	return m, nil
}

func (m editorModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(msg, keys.down):
		if m.idx < len(m.docs)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.enter):
		doc, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, switched := m.services.Documents.SwitchActive(m.ctx, doc.ID, m.activeContent()); !switched {
			return m, nil
		}
		m.refresh()
		m.mode = modeEdit
		m.content.SetValue(doc.Content)
		m.content.Focus()
		return m, textarea.Blink

	case key.Matches(msg, keys.newDoc):
		m.mode = modeNameNew
		m.name.SetValue("")
		m.name.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.rename):
		doc, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeNameRename
		m.name.SetValue(doc.Name)
		m.name.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, keys.push):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdPush())

	case key.Matches(msg, keys.pull):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdPull())

	case key.Matches(msg, keys.copy):
		if doc, ok := m.selected(); ok {
			return m, m.cmdCopyRendered(doc)
		}
	}

	return m, nil
}

func (m editorModel) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.services.Documents.UpdateContent(m.ctx, m.activeID, m.content.Value())
		m.content.Blur()
		m.mode = modeList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	m.services.Documents.UpdateContent(m.ctx, m.activeID, m.content.Value())
	return m, cmd
}

func (m editorModel) updateNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.name.Blur()
		m.mode = modeList
		return m, nil

	case key.Matches(msg, keys.enter):
		value := m.name.Value()
		m.name.Blur()

		if m.mode == modeNameNew {
			id := m.services.Documents.Create(m.ctx, value, "")
			m.services.Documents.SwitchActive(m.ctx, id, m.activeContent())
		} else if doc, ok := m.selected(); ok {
			m.services.Documents.Rename(m.ctx, doc.ID, value)
		}

		m.mode = modeList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m editorModel) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if doc, ok := m.selected(); ok {
			if !m.services.Documents.Delete(m.ctx, doc.ID) {
				m.errMsg = "the last remaining document cannot be deleted"
			}
		}
		m.mode = modeList
		m.refresh()

	case key.Matches(msg, keys.no):
		m.mode = modeList
	}

	return m, nil
}

// updateFocused forwards non-key messages (cursor blinks and the like) to the
// focused widget.
func (m editorModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeEdit:
		m.content, cmd = m.content.Update(msg)
	case modeNameNew, modeNameRename:
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

// activeContent returns the current buffer for the active document, which in
// list mode is whatever the collection already holds.
func (m editorModel) activeContent() string {
	for _, doc := range m.docs {
		if doc.ID == m.activeID {
			return doc.Content
		}
	}
	return ""
}

func (m editorModel) cmdPush() tea.Cmd {
	state := m.services.Documents.Snapshot(m.ctx)
	return func() tea.Msg {
		result, err := m.services.Sync.PushAll(m.ctx, state, true)
		return pushDoneMsg{result: result, err: err}
	}
}

func (m editorModel) cmdPull() tea.Cmd {
	return func() tea.Msg {
		upsert := func(name, content string) string {
			return m.services.Documents.UpsertByName(m.ctx, name, content)
		}
		result, err := m.services.Sync.PullAll(m.ctx, upsert)
		return pullDoneMsg{result: result, err: err}
	}
}

func (m editorModel) cmdCopyRendered(doc models.Document) tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.services.Settings.Preferences(m.ctx)
		if err != nil {
			return copiedMsg{err: err}
		}

		html, err := render.NewGoldmarkRenderer().Render(doc.Content, prefs.MathRender)
		if err != nil {
			return copiedMsg{err: err}
		}
		html = render.EnhanceCodeBlocks(render.ApplyDirection(html, prefs))

		return copiedMsg{err: clipboard.WriteAll(html)}
	}
}

func (m editorModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
