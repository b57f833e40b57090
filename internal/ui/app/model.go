package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	importerdto "fmtrack/internal/modules/importer/dto"
	sessiondto "fmtrack/internal/modules/session/dto"
	"fmtrack/internal/ui/components"
	"fmtrack/internal/ui/theme"
	budgetview "fmtrack/internal/ui/views/budget"
	dashboardview "fmtrack/internal/ui/views/dashboard"
	inventoryview "fmtrack/internal/ui/views/inventory"
	ledgerview "fmtrack/internal/ui/views/ledger"
	movementview "fmtrack/internal/ui/views/movement"
	roiview "fmtrack/internal/ui/views/roi"
	sessionsview "fmtrack/internal/ui/views/sessions"
	settingsview "fmtrack/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Save(ctx context.Context, input sessiondto.SaveInput) (sessiondto.SaveOutput, error)
	Load(ctx context.Context, input sessiondto.LoadInput) (sessiondto.LoadOutput, error)
	NewSession(ctx context.Context, input sessiondto.NewSessionInput) (sessiondto.NewSessionOutput, error)
	ListSaved(ctx context.Context) ([]sessiondto.SessionSummary, error)
	Delete(ctx context.Context, path string) error
}

type settingsPort interface {
	Set(ctx context.Context, key string, value any) error
	ApplyPreset(ctx context.Context, name string) error
}

type importerPort interface {
	Import(ctx context.Context, input importerdto.ImportInput) (importerdto.ImportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabLedger
	tabInventory
	tabROI
	tabBudget
	tabMovement
	tabSessions
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Ledger", "Inventory", "ROI", "Budget", "Movement", "Sessions", "Settings",
}

// ─── async messages ───────────────────────────────────────────────────────────

type sessionSavedMsg struct {
	out sessiondto.SaveOutput
	err error
}

type sessionLoadedMsg struct {
	out sessiondto.LoadOutput
	err error
}

type sessionResetMsg struct {
	out sessiondto.NewSessionOutput
	err error
}

type sessionDeletedMsg struct {
	path string
	err  error
}

type settingAppliedMsg struct {
	what string
	err  error
}

type importDoneMsg struct {
	out importerdto.ImportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Load    key.Binding
	Delete  key.Binding
	New     key.Binding
	Save    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Load:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load session")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete session")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new session")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save session")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Save},
		{k.Load, k.Delete, k.New},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the session
// lifecycle, the global help overlay, and the command palette. All
// bookkeeping logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	dataPath string

	// ports used at this orchestration level only
	session  sessionPort
	settings settingsPort
	importer importerPort

	// sub-views (one per tab)
	dashView     dashboardview.Model
	ledgerView   ledgerview.Model
	invView      inventoryview.Model
	roiView      roiview.Model
	budgetView   budgetview.Model
	moveView     movementview.Model
	sessionsView sessionsview.Model
	settingsView settingsview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	dataPath string,
	dashboard dashboardview.DashboardPort,
	ledger ledgerview.LedgerPort,
	inventory inventoryview.InventoryPort,
	roi roiview.ROIPort,
	budget budgetview.BudgetPort,
	movement movementview.MovementPort,
	session sessionPort,
	settingsView settingsview.SettingsPort,
	settings settingsPort,
	importer importerPort,
) Model {
	return Model{
		dataPath:     dataPath,
		session:      session,
		settings:     settings,
		importer:     importer,
		dashView:     dashboardview.New(dashboard),
		ledgerView:   ledgerview.New(ledger),
		invView:      inventoryview.New(inventory),
		roiView:      roiview.New(roi),
		budgetView:   budgetview.New(budget),
		moveView:     movementview.New(movement),
		sessionsView: sessionsview.New(session),
		settingsView: settingsview.New(settingsView),
		activeTab:    tabDashboard,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.ledgerView.Init(),
		m.invView.Init(),
		m.roiView.Init(),
		m.budgetView.Init(),
		m.moveView.Init(),
		m.sessionsView.Init(),
		m.settingsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "saved " + msg.out.Filename + issueSuffix(msg.out.Issues)
			cmds = append(cmds, m.sessionsView.Reload())
		}

	case sessionLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
		} else {
			m.status = "loaded session from " + msg.out.SavedAt + issueSuffix(msg.out.Issues)
			cmds = append(cmds, m.reloadAll()...)
		}

	case sessionResetMsg:
		if msg.err != nil {
			m.status = "new session failed: " + msg.err.Error()
		} else {
			m.status = "started fresh session"
			if msg.out.AutosavePath != "" {
				m.status += " (autosaved previous)"
			}
			cmds = append(cmds, m.reloadAll()...)
		}

	case sessionDeletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
		} else {
			m.status = "deleted " + msg.path
			cmds = append(cmds, m.sessionsView.Reload())
		}

	case settingAppliedMsg:
		if msg.err != nil {
			m.status = "settings: " + msg.err.Error()
		} else {
			m.status = msg.what
			cmds = append(cmds, m.settingsView.Reload(), m.dashView.Reload())
		}

	case importDoneMsg:
		if msg.err != nil {
			m.status = "import failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("imported %d catalog rows from %s", msg.out.Imported, msg.out.SourcePath)
			if len(msg.out.Warnings) > 0 {
				m.status += fmt.Sprintf(" (%d warnings)", len(msg.out.Warnings))
			}
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "ctrl+s":
			return m, m.saveCmd("")
		case "enter":
			if m.activeTab == tabSessions {
				if sel, ok := m.sessionsView.Selected(); ok {
					return m, m.loadCmd(sel.Filename)
				}
			}
		case "d":
			if m.activeTab == tabSessions {
				if sel, ok := m.sessionsView.Selected(); ok {
					return m, m.deleteCmd(sel.Filename)
				}
			}
		case "n":
			if m.activeTab == tabSessions {
				return m, m.newSessionCmd(true)
			}
		case "e":
			if m.activeTab == tabSettings {
				if key, ok := m.settingsView.SelectedKey(); ok {
					cmds = append(cmds, m.palette.OpenWith("settings:set "+key+" "))
					return m, tea.Batch(cmds...)
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabLedger:
		m.ledgerView, tabCmd = m.ledgerView.Update(msg)
	case tabInventory:
		m.invView, tabCmd = m.invView.Update(msg)
	case tabROI:
		m.roiView, tabCmd = m.roiView.Update(msg)
	case tabBudget:
		m.budgetView, tabCmd = m.budgetView.Update(msg)
	case tabMovement:
		m.moveView, tabCmd = m.moveView.Update(msg)
	case tabSessions:
		m.sessionsView, tabCmd = m.sessionsView.Update(msg)
	case tabSettings:
		m.settingsView, tabCmd = m.settingsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabLedger:
		return m.ledgerView.View()
	case tabInventory:
		return m.invView.View()
	case tabROI:
		return m.roiView.View()
	case tabBudget:
		return m.budgetView.View()
	case tabMovement:
		return m.moveView.View()
	case tabSessions:
		return m.sessionsView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "fmtrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "session:save":
		name := ""
		if len(parts) >= 2 {
			name = strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		}
		return m, m.saveCmd(name)

	case "session:load":
		if len(parts) < 2 {
			m.status = "usage: session:load <file>"
			return m, nil
		}
		return m, m.loadCmd(parts[1])

	case "session:new":
		return m, m.newSessionCmd(true)

	case "session:new-blank":
		return m, m.newSessionCmd(false)

	case "session:delete":
		if len(parts) < 2 {
			m.status = "usage: session:delete <file>"
			return m, nil
		}
		return m, m.deleteCmd(parts[1])

	case "settings:set":
		if len(parts) < 3 {
			m.status = "usage: settings:set <key> <value>"
			return m, nil
		}
		raw := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		return m, m.setSettingCmd(parts[1], parseSettingValue(raw))

	case "settings:preset":
		if len(parts) < 2 {
			m.status = "usage: settings:preset <name>"
			return m, nil
		}
		return m, m.applyPresetCmd(parts[1])

	case "import:run":
		if len(parts) < 3 {
			m.status = "usage: import:run <plugin> <file>"
			return m, nil
		}
		return m, m.importCmd(parts[1], parts[2])

	case "dashboard:refresh":
		m.activeTab = tabDashboard
		return m, m.dashView.Reload()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// parseSettingValue keeps palette input ergonomic: bare booleans and
// numbers become typed values, everything else stays a string.
func parseSettingValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabLedger:
		return m.ledgerView.Filtering()
	case tabInventory:
		return m.invView.Filtering()
	case tabROI:
		return m.roiView.Filtering()
	case tabSessions:
		return m.sessionsView.Filtering()
	case tabSettings:
		return m.settingsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.ledgerView, _ = m.ledgerView.Update(sz)
	m.invView, _ = m.invView.Update(sz)
	m.roiView, _ = m.roiView.Update(sz)
	m.budgetView, _ = m.budgetView.Update(sz)
	m.moveView, _ = m.moveView.Update(sz)
	m.sessionsView, _ = m.sessionsView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

// reloadAll refreshes every tab after a session load or reset.
func (m Model) reloadAll() []tea.Cmd {
	return []tea.Cmd{
		m.dashView.Reload(),
		m.ledgerView.Reload(),
		m.invView.Reload(),
		m.roiView.Reload(),
		m.budgetView.Reload(),
		m.moveView.Reload(),
		m.sessionsView.Reload(),
		m.settingsView.Reload(),
	}
}

func issueSuffix(issues []sessiondto.Issue) string {
	if len(issues) == 0 {
		return ""
	}
	names := make([]string, 0, len(issues))
	for _, issue := range issues {
		names = append(names, issue.Section)
	}
	return " (issues: " + strings.Join(names, ", ") + ")"
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) saveCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Save(context.Background(), sessiondto.SaveInput{Name: name})
		return sessionSavedMsg{out: out, err: err}
	}
}

func (m Model) loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Load(context.Background(), sessiondto.LoadInput{Path: path})
		return sessionLoadedMsg{out: out, err: err}
	}
}

func (m Model) newSessionCmd(autosave bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.NewSession(context.Background(), sessiondto.NewSessionInput{Autosave: autosave})
		return sessionResetMsg{out: out, err: err}
	}
}

func (m Model) deleteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.Delete(context.Background(), path)
		return sessionDeletedMsg{path: path, err: err}
	}
}

func (m Model) setSettingCmd(key string, value any) tea.Cmd {
	return func() tea.Msg {
		if err := m.settings.Set(context.Background(), key, value); err != nil {
			return settingAppliedMsg{err: err}
		}
		return settingAppliedMsg{what: fmt.Sprintf("set %s = %v", key, value)}
	}
}

func (m Model) applyPresetCmd(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.settings.ApplyPreset(context.Background(), name); err != nil {
			return settingAppliedMsg{err: err}
		}
		return settingAppliedMsg{what: "applied preset " + name}
	}
}

func (m Model) importCmd(pluginName, sourcePath string) tea.Cmd {
	return func() tea.Msg {
		if m.importer == nil {
			return importDoneMsg{err: fmt.Errorf("importer not configured")}
		}
		out, err := m.importer.Import(context.Background(), importerdto.ImportInput{
			PluginName: pluginName,
			SourcePath: sourcePath,
			DataPath:   m.dataPath,
			Cwd:        m.dataPath,
		})
		return importDoneMsg{out: out, err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
