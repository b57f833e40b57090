package roi

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	roidto "fmtrack/internal/modules/roi/dto"
	"fmtrack/internal/ui/theme"
)

type ROIPort interface {
	List(ctx context.Context) ([]roidto.InvestmentRow, error)
	Summary(ctx context.Context) (roidto.SummaryOutput, error)
}

type LoadedMsg struct {
	Rows    []roidto.InvestmentRow
	Summary roidto.SummaryOutput
	Err     error
}

type investmentItem struct {
	row roidto.InvestmentRow
}

func (i investmentItem) Title() string {
	return fmt.Sprintf("%s  %.1f%%", i.row.Name, i.row.ROI)
}

func (i investmentItem) Description() string {
	return fmt.Sprintf("%s  cost $%.2f  revenue $%.2f", i.row.Category, i.row.Cost, i.row.TotalRevenue)
}

func (i investmentItem) FilterValue() string {
	return i.row.Name + " " + i.row.Category
}

type Model struct {
	port    ROIPort
	list    list.Model
	detail  viewport.Model
	rows    []roidto.InvestmentRow
	summary roidto.SummaryOutput
	width   int
	height  int
}

func New(port ROIPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "ROI Tracker"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, list: l, detail: vp}
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
		m.resize()

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "ROI Tracker — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "ROI Tracker"
		m.rows = msg.Rows
		m.summary = msg.Summary
		items := make([]list.Item, len(msg.Rows))
		for i, row := range msg.Rows {
			items[i] = investmentItem{row: row}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.detail.SetContent(m.renderDetail())
	}

	var vCmd tea.Cmd
	m.detail, vCmd = m.detail.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Portfolio") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("invested:   "), m.summary.TotalInvested))
	sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("revenue:    "), m.summary.TotalRevenue))
	sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("net profit: "), m.summary.NetProfit))
	sb.WriteString(fmt.Sprintf("%s%.1f%%\n", theme.Muted.Render("overall roi:"), m.summary.OverallROI))
	if m.summary.BestName != "" {
		sb.WriteString(theme.Muted.Render("best:       ") +
			theme.Hot.Render(fmt.Sprintf("%s (%.1f%%)", m.summary.BestName, m.summary.BestROI)) + "\n")
	}

	if item, ok := m.list.SelectedItem().(investmentItem); ok {
		row := item.row
		sb.WriteString("\n" + theme.Title.Render(row.Name) + "\n")
		sb.WriteString(theme.Muted.Render("category:  ") + row.Category + "\n")
		sb.WriteString(theme.Muted.Render("purchased: ") + row.PurchaseDate + "\n")
		sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("cost:      "), row.Cost))
		if row.IsUtility {
			sb.WriteString(theme.Muted.Render("utility (excluded from best performer)") + "\n")
		}
		if row.Notes != "" {
			sb.WriteString(theme.Muted.Render("notes:     ") + row.Notes + "\n")
		}
		if len(row.Revenues) > 0 {
			sb.WriteString("\n" + theme.Muted.Render("revenues:") + "\n")
			for _, rev := range row.Revenues {
				sb.WriteString(fmt.Sprintf("  %s  $%.2f  %s\n", rev.Date, rev.Amount, rev.Kind))
			}
		}
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.port.List(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		summary, err := m.port.Summary(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Rows: rows, Summary: summary}
	}
}
