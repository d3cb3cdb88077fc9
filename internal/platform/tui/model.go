package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/audio"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// Options are the optional collaborators of a game session.
type Options struct {
	Store  *storage.Store      // round log; nil disables saving
	Sound  *audio.SoundManager // nil plays nothing
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a skyfall game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	now        func() time.Time
	quitting   bool
	back       bool // left with b to return to the menu
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	if a, ok := game.(registry.Audible); ok && opts.Sound != nil && !cfg.Muted {
		a.SetListener(audio.NewListener(opts.Sound))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		hold:       &HoldTracker{},
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.ambient() {
		m.opts.Sound.StartRain()
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Point(msg.X)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.finish()
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		m.finish()
		return m, tea.Quit
	case action == core.ActionLeft, action == core.ActionRight:
		m.hold.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.hold.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.ambient() {
		m.opts.Sound.SetRainPaused(result.State.Paused)
	}

	if result.RoundOver {
		state := result.State
		state.Score = result.FinalScore
		m.saveRound(state)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// finish records the round in progress and silences the game.
func (m *Model) finish() {
	m.hold.Release()
	state := m.game.State()
	if state.Score > 0 || state.Caught > 0 {
		m.saveRound(state)
	}
	if m.ambient() {
		m.opts.Sound.StopRain()
	}
}

// saveRound logs a finished round to the session store.
func (m *Model) saveRound(state core.GameState) {
	if m.opts.Store == nil {
		return
	}
	round := storage.Round{
		GameID: m.game.ID(),
		Score:  state.Score,
		Deaths: state.Deaths,
		Caught: state.Caught,
	}
	if t, ok := m.game.(registry.Tunable); ok {
		round.Difficulty = t.Difficulty()
	}
	if _, err := m.opts.Store.SaveRound(round); err != nil {
		m.opts.Logger.Debug("Round not saved", "game", round.GameID, "error", err)
	}
}

func (m Model) ambient() bool {
	if m.opts.Sound == nil || m.config.Muted {
		return false
	}
	a, ok := m.game.(registry.Audible)
	return ok && a.Ambient()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skyfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left with b rather than quitting.
func (m Model) BackToMenu() bool {
	return m.back
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays the game until the player quits or goes back. It reports
// whether the player asked to return to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steers the player
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
