package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashdto "fmtrack/internal/modules/dashboard/dto"
	"fmtrack/internal/ui/theme"
)

type DashboardPort interface {
	Summary(ctx context.Context) (dashdto.SummaryOutput, error)
	Refresh(ctx context.Context) (dashdto.SummaryOutput, error)
}

type SummaryLoadedMsg struct {
	Summary dashdto.SummaryOutput
	Err     error
}

type Model struct {
	port    DashboardPort
	view    viewport.Model
	spinner spinner.Model
	summary dashdto.SummaryOutput
	loading bool
	errText string
	width   int
	height  int
}

func New(port DashboardPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, view: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(false), m.spinner.Tick)
}

// Reload recomputes the summary, bypassing the cache. The app model calls
// this after a session load or reset.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd(true)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = m.width - 4
		m.view.Height = m.height - 2

	case SummaryLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		} else {
			m.errText = ""
			m.summary = msg.Summary
		}
		m.view.SetContent(m.render())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			cmds = append(cmds, m.loadCmd(true), m.spinner.Tick)
		}
	}

	var vCmd tea.Cmd
	m.view, vCmd = m.view.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Crunching the numbers…")
	}
	return m.view.View()
}

func (m Model) render() string {
	if m.errText != "" {
		return theme.Muted.Render("dashboard error: " + m.errText)
	}
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Operation Overview") + "\n\n")
	sb.WriteString(theme.Muted.Render("game date:  ") + s.CurrentGameDate + "\n")
	sb.WriteString(theme.Muted.Render("difficulty: ") + s.Difficulty + "\n\n")

	sb.WriteString(theme.Title.Render("Balances") + "\n")
	sb.WriteString(theme.Muted.Render("personal:   ") + theme.Money(s.PersonalBalance) + "\n")
	sb.WriteString(theme.Muted.Render("company:    ") + theme.Money(s.CompanyBalance) + "\n\n")

	sb.WriteString(theme.Title.Render("Oil Quota") + "\n")
	if s.OilCapEnabled {
		sb.WriteString(fmt.Sprintf("%s%.0f / %.0f (%.0f%%)\n\n",
			theme.Muted.Render("sold:       "), s.OilSold, s.OilCap, s.OilQuotaUsed))
	} else {
		sb.WriteString(theme.Muted.Render("cap disabled") + "\n\n")
	}

	sb.WriteString(theme.Title.Render("Investments") + "\n")
	sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("invested:   "), s.TotalInvested))
	sb.WriteString(theme.Muted.Render("net profit: ") + theme.Money(s.NetProfit) + "\n")
	sb.WriteString(fmt.Sprintf("%s%.1f%%\n", theme.Muted.Render("overall roi:"), s.OverallROI))
	if s.BestInvestment != "" {
		sb.WriteString(theme.Muted.Render("best:       ") + theme.Hot.Render(s.BestInvestment) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Material Movement") + "\n")
	sb.WriteString(fmt.Sprintf("%s%.1f yd³\n", theme.Muted.Render("hauled:     "), s.HauledVolume))
	sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("fuel cost:  "), s.FuelCost))
	sb.WriteString(theme.Muted.Render("net revenue:") + theme.Money(s.NetRevenue) + "\n\n")

	sb.WriteString(theme.Title.Render("Budget") + "\n")
	sb.WriteString(fmt.Sprintf("%s$%.2f\n", theme.Muted.Render("planned:    "), s.PlannedCost))

	sb.WriteString("\n" + theme.Muted.Render("r: refresh"))
	return sb.String()
}

func (m Model) loadCmd(refresh bool) tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return SummaryLoadedMsg{Err: fmt.Errorf("dashboard not configured")}
		}
		var (
			out dashdto.SummaryOutput
			err error
		)
		if refresh {
			out, err = m.port.Refresh(context.Background())
		} else {
			out, err = m.port.Summary(context.Background())
		}
		return SummaryLoadedMsg{Summary: out, Err: err}
	}
}
