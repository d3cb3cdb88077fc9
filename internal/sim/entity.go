// Package sim is the falling-entity simulation shared by the skyfall games.
//
// A Simulation owns the live entities, a spawn policy, a collision resolver,
// the score keeper, the player and a run/pause state machine. It is driven by
// one Update call per host frame and never blocks, logs or touches the
// terminal: rendering, audio and input live in the layers around it.
package sim

import "github.com/vovakirdan/skyfall/internal/core"

// World is the playfield size in world units. Y grows upward; y = 0 is the
// floor and y = Height is the top edge where entities spawn.
type World struct {
	Width  float64
	Height float64
}

// Template describes the entities a simulation spawns.
type Template struct {
	Width    float64
	Height   float64
	Velocity float64 // fall speed, world units per second
}

// Entity is a falling object. Pos is the bottom-left corner of its hitbox.
type Entity struct {
	Pos      core.Vec2
	Velocity float64
	Width    float64
	Height   float64
}

// Advance moves the entity down by Velocity * dt.
func (e *Entity) Advance(dt float64) {
	e.Pos.Y -= e.Velocity * dt
}

// OutOfBounds reports whether the entity has fully left the bottom of the world.
func (e Entity) OutOfBounds() bool {
	return e.Pos.Y+e.Height < 0
}

// Box returns the entity's rectangular hitbox.
func (e Entity) Box() core.Box {
	return core.Box{X: e.Pos.X, Y: e.Pos.Y, W: e.Width, H: e.Height}
}

// Circle returns the entity's round hitbox, inscribed in its width.
func (e Entity) Circle() core.Circle {
	return core.Circle{Center: e.Box().Center(), Radius: e.Width / 2}
}

// PlayerTemplate describes the player's hitbox and movement.
type PlayerTemplate struct {
	Width  float64
	Height float64
	Y      float64 // fixed height of the hitbox bottom
	Speed  float64 // keyboard movement, world units per second
}

// Player is the dodging head (Icicles) or the catching bucket (Drop).
type Player struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64
	Deaths int
	Caught int
}

// Box returns the player's rectangular hitbox.
func (p Player) Box() core.Box {
	return core.Box{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Circle returns the player's round hitbox, inscribed in its width.
func (p Player) Circle() core.Circle {
	return core.Circle{Center: p.Box().Center(), Radius: p.Width / 2}
}

// Input is the most recent input sample, in world units.
type Input struct {
	PointerX   float64 // pointer x; the player is centered on it
	HasPointer bool
	Left       bool
	Right      bool
}
