// skyfall is a pair of falling-object games for the terminal.
//
// Usage:
//
//	skyfall list              - List available games
//	skyfall play <game>       - Play a game
//	skyfall menu              - Start menu to pick games interactively
//	skyfall serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60, env SKYFALL_FPS)
//	--seed <value>  - Set RNG seed for reproducible gameplay (env SKYFALL_SEED)
//	--mute          - Disable sound (env SKYFALL_MUTE)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/skyfall/internal/games/drop"
	_ "github.com/vovakirdan/skyfall/internal/games/icicles"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
	flagMute bool

	// envDefaults seeds the flag defaults; envErr is reported before any command runs.
	envDefaults, envErr = loadEnv()

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfall",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - dodge icicles and catch raindrops in your terminal",
	Long: `Skyfall is a pair of falling-object games for the terminal.

  icicles  - Dodge the icicles; every one that hits the ground scores
  drop     - Catch the raindrops in your bucket

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  skyfall list
  skyfall play icicles --difficulty hard
  skyfall menu
  skyfall serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if envErr != nil {
			return envErr
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func loadEnv() (config.Env, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return config.Env{FPS: 60, SSHAddr: ":23234"}, err
	}
	return e, nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", envDefaults.Mute, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
