package sessions

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	sessiondto "fmtrack/internal/modules/session/dto"
	"fmtrack/internal/ui/theme"
)

type SessionsPort interface {
	ListSaved(ctx context.Context) ([]sessiondto.SessionSummary, error)
}

type LoadedMsg struct {
	Sessions []sessiondto.SessionSummary
	Err      error
}

type sessionItem struct {
	summary sessiondto.SessionSummary
}

func (i sessionItem) Title() string { return i.summary.Filename }

func (i sessionItem) Description() string {
	if i.summary.SavedAt == sessiondto.UnreadableSavedAt {
		return "unreadable save file"
	}
	return "saved " + i.summary.SavedAt
}

func (i sessionItem) FilterValue() string { return i.summary.Filename }

type Model struct {
	port   SessionsPort
	list   list.Model
	width  int
	height int
}

func New(port SessionsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sessions"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Sessions — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Sessions"
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{summary: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.list.View()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the current selection, if any. Unreadable entries are
// still selectable so they can be deleted.
func (m Model) Selected() (sessiondto.SessionSummary, bool) {
	if item, ok := m.list.SelectedItem().(sessionItem); ok {
		return item.summary, true
	}
	return sessiondto.SessionSummary{}, false
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.ListSaved(context.Background())
		return LoadedMsg{Sessions: sessions, Err: err}
	}
}
