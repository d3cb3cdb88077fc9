package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalDir is the working-directory config folder searched after the user's
// home directory.
const LocalDir = "configs"

type validator interface {
	Validate() error
}

// LoadIcicles loads Icicles configuration.
// Search order: customPath -> ~/.skyfall/configs/icicles.yaml -> ./configs/icicles.yaml -> embedded default
func LoadIcicles(customPath string) (IciclesConfig, error) {
	return load("icicles", customPath, DefaultIciclesConfig)
}

// LoadDrop loads Drop configuration.
// Search order: customPath -> ~/.skyfall/configs/drop.yaml -> ./configs/drop.yaml -> embedded default
func LoadDrop(customPath string) (DropConfig, error) {
	return load("drop", customPath, DefaultDropConfig)
}

func load[T validator](gameID, customPath string, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// A custom path must exist.
	if customPath != "" {
		return loadFile[T](customPath)
	}

	// Missing files fall through; broken ones are reported.
	for _, path := range []string{userConfigPath(filename), filepath.Join(LocalDir, filename)} {
		if path == "" {
			continue
		}
		cfg, err := loadFile[T](path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	var cfg T
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil
	}
	if err := cfg.Validate(); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func loadFile[T validator](path string) (T, error) {
	var cfg T
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfall", "configs", filename)
}
