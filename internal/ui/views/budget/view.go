package budget

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	budgetdto "fmtrack/internal/modules/budget/dto"
	"fmtrack/internal/ui/theme"
)

type BudgetPort interface {
	Plan(ctx context.Context) (budgetdto.PlanOutput, error)
}

type PlanLoadedMsg struct {
	Plan budgetdto.PlanOutput
	Err  error
}

type Model struct {
	port    BudgetPort
	view    viewport.Model
	plan    budgetdto.PlanOutput
	errText string
	width   int
	height  int
}

func New(port BudgetPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, view: vp}
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
		m.view.Width = m.width - 4
		m.view.Height = m.height - 2

	case PlanLoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		} else {
			m.errText = ""
			m.plan = msg.Plan
		}
		m.view.SetContent(m.render())
	}

	var vCmd tea.Cmd
	m.view, vCmd = m.view.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.view.View()
}

func (m Model) render() string {
	if m.errText != "" {
		return theme.Muted.Render("budget error: " + m.errText)
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Budget Planner") + "\n\n")
	sb.WriteString(theme.Muted.Render("planned cost: ") +
		theme.Hot.Render(fmt.Sprintf("$%.2f", m.plan.PlannedCost)) + "\n\n")

	if len(m.plan.CostByPriority) > 0 {
		sb.WriteString(theme.Title.Render("By Priority") + "\n")
		priorities := make([]string, 0, len(m.plan.CostByPriority))
		for p := range m.plan.CostByPriority {
			priorities = append(priorities, p)
		}
		sort.Strings(priorities)
		for _, p := range priorities {
			sb.WriteString(fmt.Sprintf("  %-10s $%.2f\n", p, m.plan.CostByPriority[p]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Title.Render("Equipment") + "\n")
	if len(m.plan.EquipmentItems) == 0 {
		sb.WriteString(theme.Muted.Render("  nothing planned") + "\n")
	}
	for _, item := range m.plan.EquipmentItems {
		marker := " "
		if item.Include {
			marker = "●"
		}
		sb.WriteString(fmt.Sprintf("  %s %-28s ×%d  $%.2f  %s\n",
			marker, item.Name, item.Quantity, item.Price, theme.Muted.Render(item.Priority)))
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Power Setups") + "\n")
	if len(m.plan.PowerSetups) == 0 {
		sb.WriteString(theme.Muted.Render("  nothing planned") + "\n")
	}
	for _, setup := range m.plan.PowerSetups {
		marker := " "
		if setup.Include {
			marker = "●"
		}
		sb.WriteString(fmt.Sprintf("  %s %-28s %s  $%.2f  %.0f kW\n",
			marker, setup.Name, setup.PowerSource, setup.PowerCost, setup.PowerCapacity))
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.Plan(context.Background())
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}
