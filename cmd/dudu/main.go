// dudu is a terminal platformer starring Bubu and Dudu.
//
// Usage:
//
//	dudu play                - Play the campaign
//	dudu levels              - List the levels in the campaign
//	dudu variants            - List tuning variants
//	dudu validate <path>     - Check level files
//	dudu sim <script>        - Run a scripted game headless
//
// Global flags:
//
//	--config <path>     - Platformer config YAML
//	--levels <dir>      - Level directory (default: built-in campaign)
//	--variant <id>      - Tuning variant
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
	"github.com/vovakirdan/superdudu/internal/games/platformer/levels"
	"github.com/vovakirdan/superdudu/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagVariant  string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dudu",
	Short: "Super Dudu & Bubu - a platformer in your terminal",
	Long: `Super Dudu & Bubu is a side-scrolling platformer for the terminal.
Run right, stomp goombas and koopas, and reach the end of every level
before the clock runs out.

Available commands:
  play      - Play the campaign
  levels    - List campaign levels
  variants  - List tuning variants
  validate  - Check level files for mistakes
  sim       - Run a scripted game without a terminal

Examples:
  dudu play
  dudu play --character dudu --level 2
  dudu play --levels ./my-levels --watch
  dudu validate ./my-levels
  dudu sim ./scripts/speedrun.yaml --variant desktop`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Tuning variant (see 'dudu variants')")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the CLI logger. Without a log file it writes to fallback.
// The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dudu",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig reads the config and applies the selected variant.
func loadConfig() (config.Platformer, error) {
	if flagVariant != "" && !registry.Exists(flagVariant) {
		return config.Platformer{}, fmt.Errorf("unknown variant %q (run 'dudu variants' to list them)", flagVariant)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Platformer{}, err
	}
	return registry.Apply(flagVariant, cfg)
}

// loadTable reads the level directory, or the built-in campaign.
func loadTable() (platformer.LevelTable, error) {
	if flagLevels == "" {
		return levels.Builtin()
	}
	return levels.NewLoader(flagLevels).Table()
}

// newEngine wires config, variant and levels into an engine.
func newEngine(logger *log.Logger) (*platformer.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	return platformer.NewEngine(cfg, table, platformer.WithLogger(logger))
}
