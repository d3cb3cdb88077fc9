// Package config provides YAML-based world configuration and the fixed
// difficulty table for the skyfall games.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/skyfall/internal/sim"
)

// WorldConfig is the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EntityConfig describes a falling object.
type EntityConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"` // units per second
}

// PlayerConfig describes the player's hitbox and keyboard speed.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`     // bottom of the hitbox
	Speed  float64 `yaml:"speed"` // units per second
}

// IciclesConfig contains all configuration for the Icicles game.
type IciclesConfig struct {
	World  WorldConfig  `yaml:"world"`
	Icicle EntityConfig `yaml:"icicle"`
	Player PlayerConfig `yaml:"player"`
}

// DropConfig contains all configuration for the Drop game.
type DropConfig struct {
	World         WorldConfig   `yaml:"world"`
	Drop          EntityConfig  `yaml:"drop"`
	Bucket        PlayerConfig  `yaml:"bucket"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// Validate checks that the world can hold the player and its entities.
func (c IciclesConfig) Validate() error {
	return validate(c.World, c.Icicle, c.Player)
}

// Validate checks that the world can hold the bucket and its drops and that
// drops keep coming.
func (c DropConfig) Validate() error {
	if err := validate(c.World, c.Drop, c.Bucket); err != nil {
		return err
	}
	if c.SpawnInterval <= 0 {
		return errors.New("spawn_interval must be positive")
	}
	return nil
}

func validate(w WorldConfig, e EntityConfig, p PlayerConfig) error {
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("world must have a positive size, got %gx%g", w.Width, w.Height)
	case e.Width <= 0 || e.Height <= 0:
		return fmt.Errorf("entity must have a positive size, got %gx%g", e.Width, e.Height)
	case e.Velocity <= 0:
		return fmt.Errorf("entity velocity must be positive, got %g", e.Velocity)
	case e.Width > w.Width:
		return fmt.Errorf("entity width %g exceeds world width %g", e.Width, w.Width)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("player must have a positive size, got %gx%g", p.Width, p.Height)
	case p.Width > w.Width:
		return fmt.Errorf("player width %g exceeds world width %g", p.Width, w.Width)
	case p.Y < 0 || p.Y+p.Height > w.Height:
		return fmt.Errorf("player y %g is outside the world", p.Y)
	case p.Speed < 0:
		return fmt.Errorf("player speed must not be negative, got %g", p.Speed)
	}
	return nil
}

// Sim converts the configuration into simulation geometry.
func (c IciclesConfig) Sim() sim.Config {
	return simConfig(c.World, c.Icicle, c.Player)
}

// Sim converts the configuration into simulation geometry.
func (c DropConfig) Sim() sim.Config {
	return simConfig(c.World, c.Drop, c.Bucket)
}

func simConfig(w WorldConfig, e EntityConfig, p PlayerConfig) sim.Config {
	return sim.Config{
		World:  sim.World{Width: w.Width, Height: w.Height},
		Entity: sim.Template{Width: e.Width, Height: e.Height, Velocity: e.Velocity},
		Player: sim.PlayerTemplate{Width: p.Width, Height: p.Height, Y: p.Y, Speed: p.Speed},
	}
}
