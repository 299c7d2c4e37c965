package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/fitsense/internal/repositories"
	"github.com/desertthunder/fitsense/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HistoryView ViewState = iota
	BadgesView
	LeaderboardView
	PlanView
)

func (v ViewState) String() string {
	switch v {
	case HistoryView:
		return "History"
	case BadgesView:
		return "Badges"
	case LeaderboardView:
		return "Leaderboard"
	case PlanView:
		return "Plan"
	default:
		return ""
	}
}

var viewOrder = []ViewState{HistoryView, BadgesView, LeaderboardView, PlanView}

// Model represents the TUI application state.
type Model struct {
	view     ViewState
	engine   tasks.CoachEngine
	plans    *repositories.PlanRepository
	width    int
	height   int
	snapshot *tasks.ProgressSnapshot
	plan     string
	hasPlan  bool

	historyList list.Model
	badgeList   list.Model
	boardList   list.Model

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(engine tasks.CoachEngine, plans *repositories.PlanRepository) *Model {
	return &Model{
		view:   HistoryView,
		engine: engine,
		plans:  plans,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by deriving the first snapshot.
func (m *Model) Init() tea.Cmd {
	return m.fetchSnapshot()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l":
			m.view = m.nextView(1)
			return m, nil
		case "shift+tab", "h":
			m.view = m.nextView(-1)
			return m, nil
		case "1":
			m.view = HistoryView
			return m, nil
		case "2":
			m.view = BadgesView
			return m, nil
		case "3":
			m.view = LeaderboardView
			return m, nil
		case "4":
			m.view = PlanView
			return m, nil
		case "r":
			return m, m.fetchSnapshot()
		}
		return m.updateLists(msg)

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.err = nil
		m.snapshot = msg.snapshot
		m.plan = msg.plan
		m.hasPlan = msg.hasPlan
		m.rebuildLists()
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.snapshot == nil {
		return styles.help.Render("Loading...")
	}

	header := m.renderHeader()

	var body string
	switch m.view {
	case HistoryView:
		body = m.historyList.View()
	case BadgesView:
		body = m.badgeList.View()
	case LeaderboardView:
		body = m.boardList.View()
	case PlanView:
		body = m.renderPlan()
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n%s\n\n%s", header, body, helpView)
}

func (m *Model) renderHeader() string {
	snap := m.snapshot

	tabs := ""
	for i, v := range viewOrder {
		label := fmt.Sprintf("%d:%s", i+1, v)
		if v == m.view {
			label = styles.title.Render(label)
		} else {
			label = styles.help.Render(label)
		}
		if tabs != "" {
			tabs += "  "
		}
		tabs += label
	}

	stats := fmt.Sprintf("%s  %s  %s",
		styles.ok.Render(fmt.Sprintf("%d pts", snap.Profile.TotalPoints)),
		styles.warn.Render(fmt.Sprintf("%d day streak", snap.Streak)),
		styles.help.Render(fmt.Sprintf("%d workouts", len(snap.History))),
	)

	return fmt.Sprintf("%s\n%s  |  %s", tabs, styles.title.Render(snap.Profile.Username), stats)
}

func (m *Model) renderPlan() string {
	if !m.hasPlan {
		return styles.warn.Render("No plan saved yet. Generate one with the plan command.")
	}
	return m.plan
}

func (m *Model) nextView(delta int) ViewState {
	idx := 0
	for i, v := range viewOrder {
		if v == m.view {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(viewOrder)) % len(viewOrder)
	return viewOrder[idx]
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case HistoryView:
		m.historyList, cmd = m.historyList.Update(msg)
	case BadgesView:
		m.badgeList, cmd = m.badgeList.Update(msg)
	case LeaderboardView:
		m.boardList, cmd = m.boardList.Update(msg)
	}
	return m, cmd
}

func (m *Model) rebuildLists() {
	snap := m.snapshot

	historyItems := make([]list.Item, len(snap.History))
	for i, log := range snap.History {
		historyItems[i] = logItem{log: log}
	}
	m.historyList = list.New(historyItems, list.NewDefaultDelegate(), 0, 0)
	m.historyList.Title = "Workout History"

	badgeItems := make([]list.Item, len(snap.Badges))
	for i, badge := range snap.Badges {
		badgeItems[i] = badgeItem{badge: badge}
	}
	m.badgeList = list.New(badgeItems, list.NewDefaultDelegate(), 0, 0)
	m.badgeList.Title = "Badges"

	boardItems := make([]list.Item, len(snap.Leaderboard))
	for i, entry := range snap.Leaderboard {
		boardItems[i] = standingItem{entry: entry}
	}
	m.boardList = list.New(boardItems, list.NewDefaultDelegate(), 0, 0)
	m.boardList.Title = "Leaderboard"

	m.resizeLists()
}

func (m *Model) resizeLists() {
	if m.width == 0 {
		return
	}
	m.historyList.SetSize(m.width-4, m.height-8)
	m.badgeList.SetSize(m.width-4, m.height-8)
	m.boardList.SetSize(m.width-4, m.height-8)
}

func (m *Model) fetchSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.engine.Snapshot(time.Now())
		if err != nil {
			return snapshotMsg{err: err}
		}
		plan, ok := m.plans.Get()
		return snapshotMsg{snapshot: snap, plan: plan, hasPlan: ok}
	}
}
