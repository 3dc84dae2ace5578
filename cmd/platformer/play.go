package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHold       = tui.DefaultHoldWindow
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "platformer".

Controls:
  ←/→, A/D      - Run
  Space/↑/W     - Jump
  ↓/S           - Duck
  Mouse         - Hold left/right third to run, middle to jump, bottom to duck
  P/Esc         - Pause
  R             - Restart from the spawn point
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Higher jumps, lighter gravity
  normal - Default physics (overrides the config file)
  hard   - Faster running, heavier gravity

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --config ./my-level.yaml
  platformer play --hold 200ms --log-file platformer.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := platformer.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available games.")
		os.Exit(1)
	}

	// Report config problems before entering the alt screen
	if _, err := loadLevel(); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	platformer.SetConfigPath(flagConfig)
	if err := platformer.SetDifficultyPreset(flagDifficulty); err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	if pg, ok := game.(*platformer.Game); ok {
		pg.OnEvent(logEvent(logger))
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Logger:     logger,
		HoldWindow: flagHold,
	})
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fail("running game: %v", runErr)
	}
}

// openLogger creates the logger for --log-file and --log-level.
// Without a log file, output is discarded so it cannot corrupt the screen.
func openLogger() (*log.Logger, func(), error) {
	level, err := parseLogLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := tui.NewLogger(w)
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// logEvent logs world transitions.
func logEvent(logger *log.Logger) func(platformer.Event) {
	return func(e platformer.Event) {
		switch e.Kind {
		case platformer.EventGoalReached:
			logger.Info("goal reached", "x", e.X, "y", e.Y, "tick", e.Tick)
		case platformer.EventRespawn:
			logger.Info("respawned", "completions", e.Completions, "tick", e.Tick)
		}
	}
}
