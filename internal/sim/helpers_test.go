package sim

import (
	"time"

	"github.com/vovakirdan/skyfall/internal/core"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recorder counts listener notifications.
type recorder struct {
	spawned, dodged, caught, hit int
}

func (r *recorder) Spawned(Entity) { r.spawned++ }
func (r *recorder) Dodged(Entity)  { r.dodged++ }
func (r *recorder) Caught(Entity)  { r.caught++ }
func (r *recorder) Hit(Entity)     { r.hit++ }

// neverSpawn keeps tests in control of the collection.
type neverSpawn struct{ resets int }

func (n *neverSpawn) ShouldSpawn(float64) bool { return false }
func (n *neverSpawn) Reset()                   { n.resets++ }

func iciclesConfig() Config {
	return Config{
		World:  World{Width: 10, Height: 10},
		Entity: Template{Width: 1, Height: 1, Velocity: 5},
		Player: PlayerTemplate{Width: 1, Height: 1, Y: 0.5, Speed: 10},
	}
}

func dropConfig() Config {
	return Config{
		World:  World{Width: 800, Height: 480},
		Entity: Template{Width: 64, Height: 64, Velocity: 200},
		Player: PlayerTemplate{Width: 64, Height: 64, Y: 20, Speed: 200},
	}
}

func iciclesRules(sp Spawner) Rules {
	return Rules{
		Spawner:  sp,
		Resolver: Resolver{Hit: CircleHit, OnHit: OutcomeRoundOver, Scoring: ScoreDodges},
	}
}

func dropRules(sp Spawner) Rules {
	return Rules{
		Spawner:  sp,
		Resolver: Resolver{Hit: BoxHit, OnHit: OutcomeCaught, Scoring: ScoreCatches},
	}
}

func entityAt(x, y float64) Entity {
	return Entity{Pos: core.Vec2{X: x, Y: y}, Velocity: 5, Width: 1, Height: 1}
}
