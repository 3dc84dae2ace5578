// platformer is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	platformer               - Play (same as "platformer play")
//	platformer play          - Play the platformer
//	platformer list          - List available games
//	platformer config        - Print the effective level config as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--hold <duration>   - How long a key press counts as held (default: 300ms)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and duck to the goal in your terminal",
	Long: `Platformer is a small side-scrolling game rendered with truecolor
half-block graphics. Reach the golden goal to celebrate, then respawn and
do it again.

Available commands:
  play     - Play (default)
  list     - Show all available games
  config   - Print the effective level config

Examples:
  platformer
  platformer play --difficulty easy
  platformer play --config ./my-level.yaml --log-file platformer.log
  platformer config > ~/.platformer/configs/platformer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Level flags are shared by play and config
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key press counts as held")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// parseLogLevel converts the --log-level flag.
func parseLogLevel(s string) (log.Level, error) {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
