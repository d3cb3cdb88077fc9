package config

import (
	"fmt"
	"strings"
)

// Difficulty is an Icicles spawn-rate level. Values are fixed and chosen
// before a round starts.
type Difficulty struct {
	Name      string  // CLI and storage key
	Label     string  // shown in the HUD
	SpawnRate float64 // expected icicles per second
}

var (
	Easy   = Difficulty{Name: "easy", Label: "Cold", SpawnRate: 5}
	Medium = Difficulty{Name: "medium", Label: "Colder", SpawnRate: 15}
	Hard   = Difficulty{Name: "hard", Label: "Coldest", SpawnRate: 25}
)

// Difficulties returns the levels in increasing spawn rate.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty resolves a level by name, case-insensitively.
// An empty name selects Easy.
func ParseDifficulty(name string) (Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Easy, nil
	}
	for _, d := range Difficulties() {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", name)
}

// String returns the level name.
func (d Difficulty) String() string {
	return d.Name
}
