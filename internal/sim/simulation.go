package sim

import (
	"iter"

	"github.com/vovakirdan/skyfall/internal/core"
)

// Config is the fixed geometry of a simulation. It is built once at startup
// and never mutated.
type Config struct {
	World  World
	Entity Template
	Player PlayerTemplate
}

// Rules are the per-game strategies plugged into the shared update loop.
type Rules struct {
	Spawner  Spawner
	Resolver Resolver
}

// Simulation is the composition root for one game instance.
type Simulation struct {
	cfg      Config
	rules    Rules
	rng      RandSource
	entities *Collection
	score    ScoreKeeper
	player   Player
	state    StateMachine
	input    Input
	listener Listener
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithListener registers an event listener.
func WithListener(l Listener) Option {
	return func(s *Simulation) {
		if l != nil {
			s.listener = l
		}
	}
}

// New creates a running simulation in its reset state. rng places spawned
// entities horizontally.
func New(cfg Config, rules Rules, rng RandSource, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		rules:    rules,
		rng:      rng,
		entities: NewCollection(DefaultCapacity),
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Update advances the simulation by dt seconds. It does nothing while paused.
func (s *Simulation) Update(dt float64) Report {
	if !s.state.Running() {
		return Report{}
	}

	var rep Report
	if s.rules.Spawner.ShouldSpawn(dt) {
		s.spawn()
		rep.Spawned++
	}

	s.entities.ForEach(func(e *Entity) {
		e.Advance(dt)
	})

	res := s.rules.Resolver.Resolve(s.entities, &s.player, &s.score, s.listener)
	rep.Dodged = res.Dodged
	rep.Caught = res.Caught
	rep.Hit = res.Hit

	// Refresh before a round reset so points scored in the fatal frame count.
	s.score.Refresh()
	if res.Hit {
		rep.FinalScore = s.score.Current()
		s.resetRound()
	}

	s.movePlayer(dt)
	return rep
}

// Reset starts over: no entities, zero current score, a re-centered player
// with cleared counters and a restarted spawn timer. The best score and the
// run/pause state are kept.
func (s *Simulation) Reset() {
	s.resetRound()
	s.player = Player{
		Pos: core.Vec2{
			X: (s.cfg.World.Width - s.cfg.Player.Width) / 2,
			Y: s.cfg.Player.Y,
		},
		Width:  s.cfg.Player.Width,
		Height: s.cfg.Player.Height,
		Speed:  s.cfg.Player.Speed,
	}
	s.input = Input{}
}

func (s *Simulation) resetRound() {
	s.entities.Clear()
	s.score.ResetRound()
	s.rules.Spawner.Reset()
}

func (s *Simulation) spawn() {
	span := max(s.cfg.World.Width-s.cfg.Entity.Width, 0)
	e := Entity{
		Pos:      core.Vec2{X: s.rng.Float64() * span, Y: s.cfg.World.Height},
		Velocity: s.cfg.Entity.Velocity,
		Width:    s.cfg.Entity.Width,
		Height:   s.cfg.Entity.Height,
	}
	s.entities.Add(e)
	s.listener.Spawned(e)
}

func (s *Simulation) movePlayer(dt float64) {
	p := &s.player
	if s.input.HasPointer {
		p.Pos.X = s.input.PointerX - p.Width/2
	}
	if s.input.Left {
		p.Pos.X -= p.Speed * dt
	}
	if s.input.Right {
		p.Pos.X += p.Speed * dt
	}
	p.Pos.X = core.ClampF(p.Pos.X, 0, max(s.cfg.World.Width-p.Width, 0))
}

// SetInput stores the input sample applied on the next Update.
func (s *Simulation) SetInput(in Input) {
	s.input = in
}

// Pause freezes the simulation.
func (s *Simulation) Pause() {
	s.state.Pause()
}

// Resume unfreezes the simulation.
func (s *Simulation) Resume() {
	s.state.Resume()
}

// TogglePause flips between running and paused.
func (s *Simulation) TogglePause() {
	s.state.Toggle()
}

// State returns the run/pause state.
func (s *Simulation) State() State {
	return s.state.State()
}

// Entities returns a read-only view of the live entities in render order.
func (s *Simulation) Entities() iter.Seq[Entity] {
	return s.entities.All()
}

// EntityCount returns the number of live entities.
func (s *Simulation) EntityCount() int {
	return s.entities.Len()
}

// Player returns a copy of the player.
func (s *Simulation) Player() Player {
	return s.player
}

// Score returns a copy of the score keeper.
func (s *Simulation) Score() ScoreKeeper {
	return s.score
}

// Config returns the simulation's geometry.
func (s *Simulation) Config() Config {
	return s.cfg
}
