package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/audio"
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/games/drop"
	"github.com/vovakirdan/skyfall/internal/games/icicles"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right, H/L  - Move
  Mouse                 - Move to the pointer
  P                     - Pause
  R                     - Resume
  Esc/Space             - Toggle pause
  B                     - Back to menu
  Q/Ctrl+C              - Quit

Difficulty options (icicles):
  easy    - Cold, 5 icicles per second
  medium  - Colder, 15 icicles per second
  hard    - Coldest, 25 icicles per second

Examples:
  skyfall play icicles
  skyfall play icicles --difficulty hard
  skyfall play drop --mute
  skyfall play drop --config ./my-drop.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Icicles difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyfall list' to see available games", gameID)
	}

	level, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if err := prepareGame(gameID, flagConfig); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if t, ok := game.(registry.Tunable); ok {
		t.SetDifficulty(level)
	} else if flagDifficulty != "" {
		logger.Warn("game has no difficulty levels, ignoring --difficulty", "game", gameID)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	sound := openSound()
	defer sound.Cleanup()

	if _, err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Sound: sound, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store != nil {
		if best, err := store.Best(gameID); err == nil && best > 0 {
			logger.Info("Session over", "game", gameID, "best", best)
		}
	}
	return nil
}

// prepareGame points the game at its config file and checks that the file
// loads, so a broken config fails before the terminal is taken over.
func prepareGame(gameID, configPath string) error {
	var err error
	switch gameID {
	case "icicles":
		icicles.SetConfigPath(configPath)
		_, err = config.LoadIcicles(configPath)
	case "drop":
		drop.SetConfigPath(configPath)
		_, err = config.LoadDrop(configPath)
	}
	return err
}

// runtimeConfig builds the frame settings from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Muted:    flagMute,
	}
}

// openSound opens the audio device unless muted. Without a device the
// manager stays silent and the games run unchanged.
func openSound() *audio.SoundManager {
	sound := audio.NewSoundManager()
	if flagMute {
		return sound
	}
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return sound
}
