package drop

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/sim"
)

// fakeClock is a manually advanced clock.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newGame(seed int64) (*Game, *fakeClock) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := New()
	g.clock = clock
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, clock
}

// step advances the game and the clock by dt.
func step(g *Game, clock *fakeClock, in core.InputFrame, dt float64) core.StepResult {
	res := g.Step(in, dt)
	clock.now = clock.now.Add(time.Duration(dt * float64(time.Second)))
	return res
}

func TestFirstFrameSpawns(t *testing.T) {
	g, clock := newGame(1)
	step(g, clock, core.NewInputFrame(), 0.1)

	if n := g.sim.EntityCount(); n != 1 {
		t.Fatalf("EntityCount() = %d after the first frame, expected 1", n)
	}
	e := slices.Collect(g.sim.Entities())[0]
	if e.Pos.X < 0 || e.Pos.X > 736 {
		t.Errorf("drop spawned at x=%f, outside [0, 736]", e.Pos.X)
	}
}

type spawnCounter struct {
	sim.NopListener
	spawned int
}

func (c *spawnCounter) Spawned(sim.Entity) { c.spawned++ }

func TestSpawnCadence(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	counter := &spawnCounter{}
	g := New()
	g.clock = clock
	g.SetListener(counter)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	for range 50 { // 5 seconds
		step(g, clock, core.NewInputFrame(), 0.1)
	}

	// One drop at start, then one each time more than a second has passed:
	// at 0s, 1.1s, 2.2s, 3.3s and 4.4s.
	if counter.spawned != 5 {
		t.Errorf("spawned %d drops, expected 5", counter.spawned)
	}
}

func TestBucketCatchesDrops(t *testing.T) {
	g, clock := newGame(42)

	for range 200 { // 10 seconds
		in := core.NewInputFrame()
		if e, ok := lowest(g); ok {
			in.Point(g.view.Project(e.Box()).X + 3)
		}
		res := step(g, clock, in, 0.05)
		if res.RoundOver {
			t.Fatal("Drop rounds never end")
		}
	}

	st := g.State()
	if st.Caught < 5 {
		t.Errorf("Caught = %d, expected the tracking bucket to catch most drops", st.Caught)
	}
	if st.Score != st.Caught {
		t.Errorf("Score = %d, expected it to equal Caught = %d", st.Score, st.Caught)
	}
	if st.Best != st.Score {
		t.Errorf("Best = %d, expected %d", st.Best, st.Score)
	}
}

// lowest returns the drop closest to the ground.
func lowest(g *Game) (sim.Entity, bool) {
	var best sim.Entity
	found := false
	for e := range g.sim.Entities() {
		if !found || e.Pos.Y < best.Pos.Y {
			best, found = e, true
		}
	}
	return best, found
}

func TestMissedDropsDoNotScore(t *testing.T) {
	g, clock := newGame(5)

	for range 100 {
		in := core.NewInputFrame()
		if e, ok := lowest(g); ok {
			// Stay as far from the drop as possible.
			if e.Pos.X < 400 {
				in.Point(79)
			} else {
				in.Point(0)
			}
		}
		step(g, clock, in, 0.05)
	}

	if st := g.State(); st.Score != 0 || st.Caught != 0 {
		t.Errorf("avoided every drop but Score=%d Caught=%d", st.Score, st.Caught)
	}
}

func TestPauseAndResumeKeys(t *testing.T) {
	g, clock := newGame(1)
	step(g, clock, core.NewInputFrame(), 0.1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	step(g, clock, pause, 0.1)
	if !g.State().Paused {
		t.Fatal("P should pause")
	}

	before := slices.Collect(g.sim.Entities())
	for range 30 {
		step(g, clock, core.NewInputFrame(), 0.1)
	}
	if !slices.Equal(before, slices.Collect(g.sim.Entities())) {
		t.Error("drops changed while paused")
	}

	resume := core.NewInputFrame()
	resume.Set(core.ActionResume)
	step(g, clock, resume, 0.1)
	if g.State().Paused {
		t.Error("R should resume")
	}
}

func TestRender(t *testing.T) {
	g, clock := newGame(9)
	for range 10 {
		step(g, clock, core.NewInputFrame(), 0.1)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Drops: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if row := []rune(screen.Row(0)); !strings.HasSuffix(string(row[:79]), "P pause  R resume") {
		t.Errorf("HUD row = %q, expected the key hint to end at column 78", screen.Row(0))
	}
	if !strings.ContainsRune(out, DropTip) {
		t.Error("drop missing")
	}
	if !strings.ContainsRune(out, BucketFloor) {
		t.Error("bucket missing")
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Error("ground missing")
	}

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionToggle)
	step(g, clock, toggle, 0.1)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("PAUSED overlay missing")
	}
}

func TestAmbient(t *testing.T) {
	if !New().Ambient() {
		t.Error("Drop should request the rain loop")
	}
}
