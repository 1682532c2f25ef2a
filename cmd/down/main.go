// down is a falling-shaft survival game for the terminal.
//
// Usage:
//
//	down                 - Play locally
//	down serve           - Start SSH server for remote play
//	down config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frame loop rate (default: 60)
//	--seed <value>        - RNG seed for a reproducible shaft
//	--config <path>       - Custom config YAML
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/game"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "down",
	Short: "Down - fall as far as you can",
	Long: `Down is a falling-shaft survival game for the terminal.

The shaft scrolls up while you fall. Stand on ground to stop, avoid the
red hazards that drain your life, and grab items on the way down:
  ★  invulnerability (no damage; with a weight, breaks ground and hazards)
  ☂  parachute (slower fall, torn by hazards)
  ●  weight (faster fall)

Controls:
  ←/a  →/d   Move
  Space/R    Retry after game over
  Tab        Score ranking
  ?          Help
  Q/Esc      Quit

Examples:
  down
  down --seed 42
  down --config ./my-down.yaml --log-file down.log
  down serve --port 2222`,
	Version:       game.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame loop rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger writing to --log-file, or to out when
// no file is given. The returned func closes the log file.
func newLogger(out io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "down",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves --config and logs where the settings came from.
func loadConfig(logger *log.Logger) (config.DownConfig, error) {
	cfg, source, err := config.LoadDown(flagConfig)
	if err != nil {
		return config.DownConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}
