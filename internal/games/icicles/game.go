// Package icicles implements a dodging game: icicles fall from the sky and
// the player steps aside. Every icicle that reaches the ground scores a
// point; being hit costs a death and restarts the round.
package icicles

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/sim"
)

// Visual characters for rendering
const (
	IcicleBody = '┃'
	IcicleTip  = '▼'
	HeadChar   = '●'
	BodyChar   = '┃'
	GroundChar = '▀'
)

// flashDuration is how long the ground blinks after a hit, in seconds.
const flashDuration = 0.4

// configPath is the optional custom config file path.
var configPath string

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// difficulty is the level new games start with.
var difficulty = config.Easy

// SetDifficulty sets the level of games created afterwards.
func SetDifficulty(d config.Difficulty) {
	difficulty = d
}

// Game implements the Icicles game logic.
type Game struct {
	cfg        config.IciclesConfig
	difficulty config.Difficulty
	sim        *sim.Simulation
	listener   sim.Listener
	view       core.Viewport
	flash      float64 // seconds of hit flash left
}

// New creates a new Icicles game instance.
func New() *Game {
	return &Game{
		difficulty: difficulty,
		listener:   sim.NopListener{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "icicles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Icicles"
}

// SetListener routes simulation events to l.
func (g *Game) SetListener(l sim.Listener) {
	if l == nil {
		l = sim.NopListener{}
	}
	g.listener = l
}

// Ambient reports false: Icicles has no background loop.
func (g *Game) Ambient() bool {
	return false
}

// Difficulty returns the name of the level in use.
func (g *Game) Difficulty() string {
	return g.difficulty.Name
}

// SetDifficulty selects the level used from the next Reset on.
func (g *Game) SetDifficulty(d config.Difficulty) {
	g.difficulty = d
}

// Reset starts a new game with the current difficulty.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadIcicles(configPath)
	if err != nil {
		cfg = config.DefaultIciclesConfig()
	}
	g.cfg = cfg
	g.flash = 0

	rng := rand.New(rand.NewSource(rt.Seed))
	rules := sim.Rules{
		Spawner: sim.NewPoissonSpawner(rng, g.difficulty.SpawnRate),
		Resolver: sim.Resolver{
			Hit:     sim.CircleHit,
			OnHit:   sim.OutcomeRoundOver,
			Scoring: sim.ScoreDodges,
		},
	}
	g.sim = sim.New(cfg.Sim(), rules, rng, sim.WithListener(g.listener))
	g.view = g.viewport(rt.ScreenW, rt.ScreenH)
}

// viewport maps the world onto every row but the ground line.
func (g *Game) viewport(w, h int) core.Viewport {
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, w, h-1, 0)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch {
	case in.Has(core.ActionToggle):
		g.sim.TogglePause()
	case in.Has(core.ActionPause):
		g.sim.Pause()
	case in.Has(core.ActionResume):
		g.sim.Resume()
	}

	input := sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
	if in.HasPointer {
		input.PointerX = g.view.WorldX(in.PointerX)
		input.HasPointer = true
	}
	g.sim.SetInput(input)

	rep := g.sim.Update(dt)
	switch {
	case rep.Hit:
		g.flash = flashDuration
	case g.sim.State() == sim.StateRun && g.flash > 0:
		g.flash -= dt
	}

	return core.StepResult{
		State:      g.State(),
		RoundOver:  rep.Hit,
		FinalScore: rep.FinalScore,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	g.view = g.viewport(w, h)

	groundColor := core.ColorGround
	if g.flash > 0 {
		groundColor = core.ColorAlert
	}
	dst.DrawHLine(0, h-1, w, GroundChar, groundColor)

	for e := range g.sim.Entities() {
		r := g.view.Project(e.Box())
		for y := r.Y; y < r.Bottom(); y++ {
			ch := IcicleBody
			if y == r.Bottom()-1 {
				ch = IcicleTip
			}
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, ch, core.ColorIce)
			}
		}
	}

	g.drawPlayer(dst, h-1)
	g.drawHUD(dst)

	if g.sim.State() == sim.StatePause {
		dst.DrawMessage("PAUSED", "R to resume  |  Q to quit")
	}
}

// drawPlayer draws the head and a body reaching down to the ground row.
func (g *Game) drawPlayer(dst *core.Screen, ground int) {
	head := g.view.Project(g.sim.Player().Box())
	dst.DrawRectColored(head, HeadChar, core.ColorPlayer)

	mid := head.X + head.W/2
	for y := head.Bottom(); y < ground; y++ {
		dst.SetColored(mid, y, BodyChar, core.ColorPlayer)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()
	w := dst.Width()

	deathsColor := core.ColorHUD
	if g.flash > 0 {
		deathsColor = core.ColorAlert
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Deaths: %d", st.Deaths), deathsColor)
	dst.DrawTextColored(1, 1, "Difficulty: "+g.difficulty.Label, core.ColorHUD)

	score := fmt.Sprintf("Score: %d", st.Score)
	best := fmt.Sprintf("Top Score: %d", st.Best)
	dst.DrawTextRight(w-2, 0, score, core.ColorHUD)
	dst.DrawTextRight(w-2, 1, best, core.ColorHUD)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.sim.Score()
	return core.GameState{
		Score:  score.Current(),
		Best:   score.Best(),
		Deaths: g.sim.Player().Deaths,
		Paused: g.sim.State() == sim.StatePause,
	}
}

// Register the game with the registry
func init() {
	registry.Register("icicles", func() registry.Game {
		return New()
	})
}
