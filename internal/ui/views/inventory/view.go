package inventory

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	invdto "fmtrack/internal/modules/inventory/dto"
	"fmtrack/internal/ui/theme"
)

type InventoryPort interface {
	List(ctx context.Context) ([]invdto.ItemRow, error)
	OilCap(ctx context.Context) (invdto.OilCapOutput, error)
}

type LoadedMsg struct {
	Items  []invdto.ItemRow
	OilCap invdto.OilCapOutput
	Err    error
}

type invItem struct {
	item invdto.ItemRow
}

func (i invItem) Title() string {
	return fmt.Sprintf("%s  ×%.1f", i.item.Name, i.item.Quantity)
}

func (i invItem) Description() string {
	if i.item.Location == "" {
		return i.item.Category
	}
	return i.item.Category + "  @ " + i.item.Location
}

func (i invItem) FilterValue() string {
	return i.item.Name + " " + i.item.Category
}

type Model struct {
	port   InventoryPort
	list   list.Model
	oilCap invdto.OilCapOutput
	width  int
	height int
}

func New(port InventoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Inventory"
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
			m.list.Title = "Inventory — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Inventory"
		m.oilCap = msg.OilCap
		items := make([]list.Item, len(msg.Items))
		for i, it := range msg.Items {
			items[i] = invItem{item: it}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var footer string
	if m.oilCap.Enabled {
		remaining := m.oilCap.CapAmount - m.oilCap.LifetimeSold
		if remaining < 0 {
			remaining = 0
		}
		footer = theme.Muted.Render("oil quota ") +
			theme.Hot.Render(fmt.Sprintf("%.0f/%.0f", m.oilCap.LifetimeSold, m.oilCap.CapAmount)) +
			theme.Muted.Render(fmt.Sprintf("  remaining %.0f", remaining))
	} else {
		footer = theme.Muted.Render("oil quota disabled")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.List(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		oilCap, err := m.port.OilCap(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Items: items, OilCap: oilCap}
	}
}
