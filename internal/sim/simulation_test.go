package sim

import (
	"math/rand"
	"slices"
	"testing"
	"time"
)

func TestNewStartsReset(t *testing.T) {
	sp := &neverSpawn{}
	s := New(dropConfig(), dropRules(sp), fixedRand(0))

	p := s.Player()
	if p.Pos.X != 368 || p.Pos.Y != 20 {
		t.Errorf("player at (%f, %f), expected (368, 20)", p.Pos.X, p.Pos.Y)
	}
	if s.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, expected 0", s.EntityCount())
	}
	if s.State() != StateRun {
		t.Errorf("State() = %v, expected RUN", s.State())
	}
	if sp.resets != 1 {
		t.Errorf("spawner reset %d times, expected 1", sp.resets)
	}
}

func TestHitEndsRoundInSameUpdate(t *testing.T) {
	sp := &neverSpawn{}
	rec := &recorder{}
	s := New(iciclesConfig(), iciclesRules(sp), fixedRand(0), WithListener(rec))

	p := s.Player()
	s.entities.Add(entityAt(p.Pos.X, p.Pos.Y+0.2)) // on the player's head
	s.entities.Add(entityAt(0, 8))                 // still falling
	s.entities.Add(entityAt(9, -3))                // already gone

	rep := s.Update(0)

	if !rep.Hit {
		t.Fatal("expected a hit")
	}
	if s.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d after hit, expected 0", s.EntityCount())
	}
	if got := s.Player().Deaths; got != 1 {
		t.Errorf("Deaths = %d, expected 1", got)
	}
	if rep.FinalScore != 1 {
		t.Errorf("FinalScore = %d, expected the fatal-frame dodge to count", rep.FinalScore)
	}
	score := s.Score()
	if score.Current() != 0 || score.Best() != 1 {
		t.Errorf("score current=%d best=%d, expected 0 and 1", score.Current(), score.Best())
	}
	if sp.resets != 2 {
		t.Errorf("spawner reset %d times, expected 2", sp.resets)
	}
	if rec.hit != 1 || rec.dodged != 1 {
		t.Errorf("listener hit=%d dodged=%d, expected 1 and 1", rec.hit, rec.dodged)
	}
}

func TestDodgesScoreInIcicles(t *testing.T) {
	s := New(iciclesConfig(), iciclesRules(&neverSpawn{}), fixedRand(0))

	// Far from the player, falls 5 units/s from y=1: gone after 0.5s.
	s.entities.Add(entityAt(0, 1))

	for range 3 {
		s.Update(0.2)
	}

	if s.Score().Current() != 1 || s.Score().Best() != 1 {
		t.Errorf("score current=%d best=%d, expected 1 and 1", s.Score().Current(), s.Score().Best())
	}
	if s.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, expected 0", s.EntityCount())
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New(iciclesConfig(), iciclesRules(NewPoissonSpawner(rng, 25)), rng)
	for range 30 {
		s.Update(1.0 / 60)
	}

	s.Pause()
	before := slices.Collect(s.Entities())
	score := s.Score()
	player := s.Player()

	s.SetInput(Input{Right: true})
	rep := s.Update(0.5)

	if rep != (Report{}) {
		t.Errorf("paused Update reported %+v", rep)
	}
	if after := slices.Collect(s.Entities()); !slices.Equal(before, after) {
		t.Error("entities changed while paused")
	}
	if s.Score() != score {
		t.Error("score changed while paused")
	}
	if s.Player() != player {
		t.Error("player moved while paused")
	}

	s.Resume()
	if s.State() != StateRun {
		t.Errorf("State() = %v after Resume, expected RUN", s.State())
	}
}

func TestTogglePause(t *testing.T) {
	s := New(iciclesConfig(), iciclesRules(&neverSpawn{}), fixedRand(0))

	s.TogglePause()
	if s.State() != StatePause {
		t.Errorf("State() = %v, expected PAUSE", s.State())
	}
	s.TogglePause()
	if s.State() != StateRun {
		t.Errorf("State() = %v, expected RUN", s.State())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := New(iciclesConfig(), iciclesRules(NewPoissonSpawner(rng, 25)), rng)
	for range 100 {
		s.SetInput(Input{Left: true})
		s.Update(1.0 / 30)
	}

	s.Reset()
	first := s.Player()
	count := s.EntityCount()
	current := s.Score().Current()

	s.Reset()

	if s.Player() != first || s.EntityCount() != count || s.Score().Current() != current {
		t.Error("second Reset changed observable state")
	}
	if count != 0 || current != 0 {
		t.Errorf("after Reset: entities=%d current=%d, expected 0 and 0", count, current)
	}
	if first.Deaths != 0 || first.Pos.X != 4.5 {
		t.Errorf("player not reset: %+v", first)
	}
}

func TestResetKeepsBestAndPause(t *testing.T) {
	s := New(iciclesConfig(), iciclesRules(&neverSpawn{}), fixedRand(0))
	s.entities.Add(entityAt(0, -2))
	s.Update(0)
	s.Pause()

	s.Reset()

	if s.Score().Best() != 1 {
		t.Errorf("Best() = %d after Reset, expected 1", s.Score().Best())
	}
	if s.State() != StatePause {
		t.Errorf("State() = %v after Reset, expected PAUSE", s.State())
	}
}

func TestDropCatchScenario(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	sp := NewIntervalSpawner(clock, time.Second, SpawnImmediately())
	rec := &recorder{}
	// rng 0.5 puts every drop at x = 368, right above the bucket.
	s := New(dropConfig(), dropRules(sp), fixedRand(0.5), WithListener(rec))

	for frame := 1; frame <= 20; frame++ {
		rep := s.Update(0.1)
		if rep.Hit {
			t.Fatalf("frame %d: catching must never end the round", frame)
		}
		if frame == 1 && rep.Spawned != 1 {
			t.Fatal("first frame after reset should spawn")
		}
		if frame < 20 && s.Player().Caught != 0 {
			t.Fatalf("frame %d: drop caught too early", frame)
		}
		clock.Advance(100 * time.Millisecond)
	}

	if got := s.Player().Caught; got != 1 {
		t.Errorf("Caught = %d, expected 1", got)
	}
	if got := s.Score().Current(); got != 1 {
		t.Errorf("Current() = %d, expected 1", got)
	}
	if s.Player().Deaths != 0 {
		t.Error("Drop has no deaths")
	}
	for e := range s.Entities() {
		if e.Pos.X != 368 {
			t.Errorf("drop spawned at x=%f, expected 368", e.Pos.X)
		}
	}
	if rec.caught != 1 {
		t.Errorf("listener caught = %d, expected 1", rec.caught)
	}
}

func TestSpawnPlacement(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		x    float64
	}{
		{"left edge", 0, 0},
		{"middle", 0.5, 368},
		{"three quarters", 0.75, 552},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(dropConfig(), dropRules(&neverSpawn{}), fixedRand(tc.draw))
			s.spawn()
			e := slices.Collect(s.Entities())[0]
			if e.Pos.X != tc.x || e.Pos.Y != 480 {
				t.Errorf("spawned at (%f, %f), expected (%f, 480)", e.Pos.X, e.Pos.Y, tc.x)
			}
			if e.Pos.X+e.Width > 800 {
				t.Error("entity spawned past the right edge")
			}
		})
	}
}

func TestUpdateSpawnsAtSlowestRate(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		spawned int
	}{
		{"one second at half a spawn per second", 1.0, 1},
		{"half a second stays under the draw", 0.5, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := fixedRand(0.3)
			s := New(iciclesConfig(), iciclesRules(NewPoissonSpawner(rng, 0.5)), rng)

			rep := s.Update(tc.dt)

			if rep.Spawned != tc.spawned {
				t.Errorf("Spawned = %d, expected %d", rep.Spawned, tc.spawned)
			}
			if s.EntityCount() != tc.spawned {
				t.Errorf("EntityCount() = %d, expected %d", s.EntityCount(), tc.spawned)
			}
			if rep.Hit || rep.Dodged != 0 {
				t.Errorf("report = %+v, expected no hit and no dodge", rep)
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		dt    float64
		x     float64
	}{
		{"idle", Input{}, 1, 368},
		{"left", Input{Left: true}, 0.5, 268},
		{"right", Input{Right: true}, 0.5, 468},
		{"clamped left", Input{Left: true}, 10, 0},
		{"clamped right", Input{Right: true}, 10, 736},
		{"pointer centers", Input{PointerX: 100, HasPointer: true}, 0.1, 68},
		{"pointer clamped", Input{PointerX: 800, HasPointer: true}, 0.1, 736},
		{"pointer then keys", Input{PointerX: 400, HasPointer: true, Left: true}, 0.1, 348},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(dropConfig(), dropRules(&neverSpawn{}), fixedRand(0))
			s.SetInput(tc.input)
			s.Update(tc.dt)
			if got := s.Player().Pos.X; got != tc.x {
				t.Errorf("x = %f, expected %f", got, tc.x)
			}
		})
	}
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	run := func() []Entity {
		rng := rand.New(rand.NewSource(99))
		s := New(iciclesConfig(), iciclesRules(NewPoissonSpawner(rng, 15)), rng)
		for range 200 {
			s.Update(1.0 / 60)
		}
		return slices.Collect(s.Entities())
	}
	if !slices.Equal(run(), run()) {
		t.Error("same seed produced different entities")
	}
}
