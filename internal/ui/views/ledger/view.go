package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ledgerdto "fmtrack/internal/modules/ledger/dto"
	"fmtrack/internal/ui/theme"
)

type LedgerPort interface {
	List(ctx context.Context) ([]ledgerdto.TransactionRow, error)
	Balances(ctx context.Context) (ledgerdto.BalancesOutput, error)
}

type LoadedMsg struct {
	Rows     []ledgerdto.TransactionRow
	Balances ledgerdto.BalancesOutput
	Err      error
}

type txItem struct {
	row ledgerdto.TransactionRow
}

func (i txItem) Title() string {
	return fmt.Sprintf("%s  %s  %s", i.row.Cells["Date"], i.row.Cells["Type"], i.row.Cells["Item"])
}

func (i txItem) Description() string {
	return fmt.Sprintf("%s  total %s  %s", i.row.Cells["Category"], i.row.Cells["Total"], i.row.Cells["Account"])
}

func (i txItem) FilterValue() string {
	return i.row.Cells["Item"] + " " + i.row.Cells["Category"]
}

type Model struct {
	port     LedgerPort
	list     list.Model
	balances ledgerdto.BalancesOutput
	width    int
	height   int
}

func New(port LedgerPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Ledger"
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
			m.list.Title = "Ledger — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Ledger"
		m.balances = msg.Balances
		items := make([]list.Item, len(msg.Rows))
		for i, row := range msg.Rows {
			items[i] = txItem{row: row}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	footer := theme.Muted.Render("personal ") + theme.Money(m.balances.Personal) +
		theme.Muted.Render("   company ") + theme.Money(m.balances.Company)
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedIndex returns the position of the current selection among the
// unfiltered rows, matching the remove operation's index space.
func (m Model) SelectedIndex() (int, bool) {
	if m.list.FilterState() != list.Unfiltered {
		return 0, false
	}
	if m.list.SelectedItem() == nil {
		return 0, false
	}
	return m.list.Index(), true
}

func (m Model) SelectedLabel() string {
	if item, ok := m.list.SelectedItem().(txItem); ok {
		return strings.TrimSpace(item.row.Cells["Item"])
	}
	return ""
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.port.List(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		balances, err := m.port.Balances(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Rows: rows, Balances: balances}
	}
}
