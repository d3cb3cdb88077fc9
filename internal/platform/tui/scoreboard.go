package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats panel
	statsWidth       = 24  // Width of the stats panel
	maxRounds        = 100 // Max rounds to load
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tabStyle = boardMutedStyle.Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Order    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame, k.Order},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the rounds played since the process started.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	rounds     []storage.Round
	stats      storage.GameStats
	recent     bool // newest rounds first instead of best
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

// newTable sizes the rounds table to the space left by the stats panel.
func (m *ScoreboardModel) newTable() table.Model {
	timeWidth := 10
	if m.wide() {
		spare := m.width - statsWidth - 4 - 44
		timeWidth = max(10, min(spare, 14))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 8},
			{Title: "Hits", Width: 6},
			{Title: "Ended", Width: timeWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the rounds and stats of the selected game.
func (m *ScoreboardModel) reload() {
	m.rounds = nil
	m.stats = storage.GameStats{}
	if len(m.games) == 0 {
		m.fillTable()
		return
	}

	gameID := m.games[m.gameCursor].ID
	m.stats.GameID = gameID
	if m.store != nil {
		load := m.store.TopRounds
		if m.recent {
			load = m.store.RecentRounds
		}
		if rounds, err := load(gameID, maxRounds); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.Stats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			level,
			fmt.Sprintf("%d", roundHits(r)),
			r.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// roundHits is the deaths of an Icicles round or the catches of a Drop session.
func roundHits(r storage.Round) int {
	if r.Caught > 0 {
		return r.Caught
	}
	return r.Deaths
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycleGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.recent = !m.recent
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SESSION SCORES"
	if m.recent {
		title = "RECENT ROUNDS"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsPanel())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, boardMutedStyle.Render(m.summary()), body)
	}
	b.WriteString(body)

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists the games with the selected one highlighted.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) tableView() string {
	if len(m.rounds) == 0 {
		return boardMutedStyle.Italic(true).Padding(2, 4).
			Render("No rounds played yet.\nPlay a game to set a score!")
	}
	return m.table.View()
}

// statsPanel aggregates the selected game's rounds.
func (m ScoreboardModel) statsPanel() string {
	lines := []string{
		boardTitleStyle.Render("This session"),
		"",
		fmt.Sprintf("Rounds   %d", m.stats.Rounds),
		fmt.Sprintf("Best     %d", m.stats.Best),
		fmt.Sprintf("Average  %.1f", m.stats.AvgScore),
		fmt.Sprintf("Deaths   %d", m.stats.TotalDeaths),
		fmt.Sprintf("Caught   %d", m.stats.TotalCaught),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, fmt.Sprintf("Last     %s", m.stats.LastPlayed.Format("15:04")))
	}
	return boardPanelStyle.Width(statsWidth).Render(strings.Join(lines, "\n"))
}

// summary is the one-line aggregate shown on narrow terminals.
func (m ScoreboardModel) summary() string {
	if m.stats.Rounds == 0 {
		return "Scores last until the program exits"
	}
	return fmt.Sprintf("Rounds: %d  |  Best: %d  |  Average: %.1f",
		m.stats.Rounds, m.stats.Best, m.stats.AvgScore)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
