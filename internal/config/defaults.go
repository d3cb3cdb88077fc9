package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/icicles.yaml
var defaultIciclesYAML []byte

//go:embed defaults/drop.yaml
var defaultDropYAML []byte

// DefaultIciclesConfig returns the default Icicles configuration.
func DefaultIciclesConfig() IciclesConfig {
	return IciclesConfig{
		World:  WorldConfig{Width: 16, Height: 10},
		Icicle: EntityConfig{Width: 0.5, Height: 1, Velocity: 5},
		Player: PlayerConfig{Width: 1, Height: 1, Y: 0.5, Speed: 10},
	}
}

// DefaultDropConfig returns the default Drop configuration.
func DefaultDropConfig() DropConfig {
	return DropConfig{
		World:         WorldConfig{Width: 800, Height: 480},
		Drop:          EntityConfig{Width: 64, Height: 64, Velocity: 200},
		Bucket:        PlayerConfig{Width: 64, Height: 64, Y: 20, Speed: 200},
		SpawnInterval: time.Second,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "icicles":
		return defaultIciclesYAML
	case "drop":
		return defaultDropYAML
	default:
		return nil
	}
}
