package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start skyfall with a game picker menu",
	Long: `Start skyfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B in a game to return to the menu, Tab in the menu for the
scores of this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Session scores
  Q            - Quit

Examples:
  skyfall menu
  skyfall menu --fps 30
  skyfall menu --mute`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	sound := openSound()
	defer sound.Cleanup()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}
		if err := prepareGame(gameID, ""); err != nil {
			logger.Error("cannot load game config", "game", gameID, "error", err)
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		if t, ok := game.(registry.Tunable); ok {
			level, updatedCfg, selErr := tui.RunDifficultySelector(game.Title(), cfg)
			if selErr != nil {
				return selErr
			}
			cfg = updatedCfg

			// User pressed back or quit
			if level == nil {
				continue
			}
			t.SetDifficulty(*level)
		}

		// New seed for each game unless fixed by --seed
		run := cfg
		if flagSeed == 0 {
			run.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, run, tui.Options{Store: store, Sound: sound, Logger: logger})
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
