package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cave-bat/internal/cave"
	"github.com/vovakirdan/cave-bat/internal/config"
	"github.com/vovakirdan/cave-bat/internal/core"
	"github.com/vovakirdan/cave-bat/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Space/Up/W - Flap (climb and push forward)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  cavebat play
  cavebat play --seed 42
  cavebat play --config ./my-cave.yaml`,
	Run: runPlay,
}

func init() {
	// Shared with the bare "cavebat" invocation, which also plays.
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cavebat",
	})

	caveCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("could not load tuning config", "error", err)
		os.Exit(1)
	}

	// Probe the terminal; fall back to a safe size when not a TTY.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	} else {
		logger.Warn("could not detect terminal size, using 80x24", "error", termErr)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	if runErr := tui.Run(cave.New(&caveCfg), rt); runErr != nil {
		logger.Error("game session failed", "error", runErr)
		os.Exit(1)
	}
}
