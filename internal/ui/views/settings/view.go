package settings

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "fmtrack/internal/modules/settings/dto"
	"fmtrack/internal/ui/theme"
)

type SettingsPort interface {
	List(ctx context.Context) ([]settingsdto.SettingRow, error)
	Presets(ctx context.Context) ([]settingsdto.PresetOutput, error)
}

type LoadedMsg struct {
	Rows    []settingsdto.SettingRow
	Presets []settingsdto.PresetOutput
	Err     error
}

type settingItem struct {
	row settingsdto.SettingRow
}

func (i settingItem) Title() string       { return i.row.Key }
func (i settingItem) Description() string { return fmt.Sprintf("%v", i.row.Value) }
func (i settingItem) FilterValue() string { return i.row.Key }

type Model struct {
	port    SettingsPort
	list    list.Model
	presets []settingsdto.PresetOutput
	width   int
	height  int
}

func New(port SettingsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Settings"
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
		m.list.SetSize(m.width, m.height-1)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Settings — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Settings"
		m.presets = msg.Presets
		items := make([]list.Item, len(msg.Rows))
		for i, row := range msg.Rows {
			items[i] = settingItem{row: row}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	names := ""
	for i, p := range m.presets {
		if i > 0 {
			names += ", "
		}
		names += p.Name
	}
	footer := theme.Muted.Render("settings:set <key> <value>   settings:preset <" + names + ">")
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedKey returns the highlighted setting key, used to prefill the
// palette's settings:set command.
func (m Model) SelectedKey() (string, bool) {
	if item, ok := m.list.SelectedItem().(settingItem); ok {
		return item.row.Key, true
	}
	return "", false
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.port.List(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		presets, err := m.port.Presets(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Rows: rows, Presets: presets}
	}
}
