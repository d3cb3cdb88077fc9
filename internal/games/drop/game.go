// Package drop implements a catching game: raindrops fall once a second and
// the player moves a bucket under them. The round never ends.
package drop

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
	DropBody    = '│'
	DropTip     = '●'
	BucketWall  = '█'
	BucketFloor = '▄'
	GroundChar  = '░'
)

// configPath is the optional custom config file path.
var configPath string

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Drop game logic.
type Game struct {
	cfg      config.DropConfig
	clock    sim.Clock
	sim      *sim.Simulation
	listener sim.Listener
	view     core.Viewport
}

// New creates a new Drop game instance driven by the system clock.
func New() *Game {
	return &Game{
		clock:    sim.SystemClock{},
		listener: sim.NopListener{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "drop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Drop"
}

// SetListener routes simulation events to l.
func (g *Game) SetListener(l sim.Listener) {
	if l == nil {
		l = sim.NopListener{}
	}
	g.listener = l
}

// Ambient reports true: Drop plays a rain loop.
func (g *Game) Ambient() bool {
	return true
}

// Reset starts a new game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadDrop(configPath)
	if err != nil {
		cfg = config.DefaultDropConfig()
	}
	g.cfg = cfg

	rules := sim.Rules{
		Spawner: sim.NewIntervalSpawner(g.clock, cfg.SpawnInterval, sim.SpawnImmediately()),
		Resolver: sim.Resolver{
			Hit:     sim.BoxHit,
			OnHit:   sim.OutcomeCaught,
			Scoring: sim.ScoreCatches,
		},
	}
	rng := rand.New(rand.NewSource(rt.Seed))
	g.sim = sim.New(cfg.Sim(), rules, rng, sim.WithListener(g.listener))
	g.view = g.viewport(rt.ScreenW, rt.ScreenH)
}

// viewport maps the world between the HUD row and the ground line.
func (g *Game) viewport(w, h int) core.Viewport {
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, w, h-2, 1)
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

	dst.DrawHLine(0, h-1, w, GroundChar, core.ColorGround)

	for e := range g.sim.Entities() {
		r := g.view.Project(e.Box())
		mid := r.X + r.W/2
		for y := r.Y; y < r.Bottom()-1; y++ {
			dst.SetColored(mid, y, DropBody, core.ColorRain)
		}
		dst.SetColored(mid, r.Bottom()-1, DropTip, core.ColorRain)
	}

	g.drawBucket(dst)

	st := g.State()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Drops: %d", st.Caught), core.ColorHUD)
	help := "P pause  R resume"
	dst.DrawTextRight(w-2, 0, help, core.ColorHUD)

	if st.Paused {
		dst.DrawMessage("PAUSED", "R to resume  |  Q to quit")
	}
}

// drawBucket draws an open-topped bucket filling the player's cells.
func (g *Game) drawBucket(dst *core.Screen) {
	r := g.view.Project(g.sim.Player().Box())
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, BucketWall, core.ColorBucket)
		dst.SetColored(r.Right()-1, y, BucketWall, core.ColorBucket)
	}
	for x := r.X + 1; x < r.Right()-1; x++ {
		dst.SetColored(x, r.Bottom()-1, BucketFloor, core.ColorBucket)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.sim.Score()
	return core.GameState{
		Score:  score.Current(),
		Best:   score.Best(),
		Caught: g.sim.Player().Caught,
		Paused: g.sim.State() == sim.StatePause,
	}
}

// Register the game with the registry
func init() {
	registry.Register("drop", func() registry.Game {
		return New()
	})
}
