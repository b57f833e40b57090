package movement

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	movementdto "fmtrack/internal/modules/movement/dto"
	"fmtrack/internal/ui/theme"
)

type MovementPort interface {
	List(ctx context.Context) (movementdto.LogOutput, error)
	Totals(ctx context.Context) (movementdto.TotalsOutput, error)
}

type LoadedMsg struct {
	Log    movementdto.LogOutput
	Totals movementdto.TotalsOutput
	Err    error
}

type Model struct {
	port    MovementPort
	view    viewport.Model
	log     movementdto.LogOutput
	totals  movementdto.TotalsOutput
	errText string
	width   int
	height  int
}

func New(port MovementPort) Model {
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

	case LoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		} else {
			m.errText = ""
			m.log = msg.Log
			m.totals = msg.Totals
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
		return theme.Muted.Render("movement error: " + m.errText)
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Material Movement") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s%.1f yd³   %s$%.2f   %s$%.2f   %s$%.2f\n\n",
		theme.Muted.Render("hauled "), m.totals.HauledVolume,
		theme.Muted.Render("fuel "), m.totals.FuelCost,
		theme.Muted.Render("gross "), m.totals.GrossRevenue,
		theme.Muted.Render("net "), m.totals.NetRevenue))

	sb.WriteString(theme.Title.Render("Hauling") + "\n")
	if len(m.log.Hauling) == 0 {
		sb.WriteString(theme.Muted.Render("  no hauling recorded") + "\n")
	}
	for _, h := range m.log.Hauling {
		sb.WriteString(fmt.Sprintf("  %s  %-18s %-14s %2d loads  %.1f yd³  fuel $%.2f\n",
			h.Date, h.Location, h.Vehicle, h.Loads, h.Volume, h.FuelCost))
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Processing") + "\n")
	if len(m.log.Processing) == 0 {
		sb.WriteString(theme.Muted.Render("  no processing recorded") + "\n")
	}
	for _, p := range m.log.Processing {
		sb.WriteString(fmt.Sprintf("  %s  %-18s %-14s in %.1f yd³  net $%.2f  ($%.2f/yd³)\n",
			p.Date, p.Processor, p.Material, p.InputVolume, p.NetRevenue, p.PerYd3))
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		log, err := m.port.List(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		totals, err := m.port.Totals(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Log: log, Totals: totals}
	}
}
