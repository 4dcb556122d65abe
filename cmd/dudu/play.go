package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/superdudu/internal/games/platformer"
	"github.com/vovakirdan/superdudu/internal/games/platformer/levels"
	"github.com/vovakirdan/superdudu/internal/platform/tui"
)

var (
	flagCharacter string
	flagLevel     int
	flagWatch     bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  X                - Toggle run
  P                - Pause
  Enter            - Start / next level
  Tab              - Switch character (menu)
  Esc              - Back to menu
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  dudu play
  dudu play --character dudu
  dudu play --level 3 --variant desktop
  dudu play --levels ./my-levels --watch --log-file dudu.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "bubu", "Character: bubu or dudu")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly on this level (0 = menu)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a direction key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) {
	character, err := platformer.ParseCharacter(flagCharacter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagWatch && flagLevels == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs --levels")
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	engine, err := newEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Engine:    engine,
		Character: character,
		Level:     flagLevel,
		FPS:       flagFPS,
		HoldTicks: flagHoldTicks,
		Width:     width,
		Height:    height,
		Logger:    logger,
	}

	if flagWatch {
		watcher, err := levels.NewWatcher(flagLevels)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not watch %s: %v\n", flagLevels, err)
			os.Exit(1)
		}
		defer watcher.Close()

		go func() {
			for err := range watcher.Errors {
				logger.Warn("level watcher", "err", err)
			}
		}()

		loader := levels.NewLoader(flagLevels)
		opts.Changes = watcher.Events
		opts.Reload = loader.Table
		logger.Info("watching levels", "dir", flagLevels)
	}

	final, err := tui.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("session ended", "score", final.Score, "level", final.Level, "status", final.Status)
	fmt.Printf("Final score: %d (level %d, %s)\n", final.Score, final.Level, final.Status)
}
