// Package platformer implements a side-scrolling platformer: a round
// player runs, jumps and ducks across platforms toward a goal, celebrates,
// and respawns at the start.
package platformer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// GameID is the registry identifier.
const GameID = "platformer"

var (
	hudColor   = core.ColorBlack
	panelColor = core.RGBA(0.1, 0.1, 0.15, 1)
)

// Game adapts World to the registry.Game interface and owns the
// half-block surface the world is drawn through.
type Game struct {
	world   *World
	surface *render.HalfBlockSurface
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	paused  bool
	onEvent func(Event)

	configErr error // from the last Reset
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
// An unknown name returns an error and keeps the current preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// New creates a new platformer instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// OnEvent registers an observer for world state transitions.
// It survives Reset.
func (g *Game) OnEvent(fn func(Event)) {
	g.onEvent = fn
	if g.world != nil {
		g.world.OnEvent = fn
	}
}

// Reset loads the config and builds a fresh world for the screen size.
// When the config cannot be loaded the built-in level is used instead and
// ConfigError reports why.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.configErr = err
	g.ResetWithConfig(runtime, cfg)
}

// ConfigError returns the config load error from the last Reset, or nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// ResetWithConfig builds a fresh world from an explicit config.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.PlatformerConfig) {
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.runtime = runtime
	g.paused = false

	cols, rows := screenSize(runtime.ScreenW, runtime.ScreenH)
	g.surface = render.NewHalfBlockSurface(cols, rows, SkyColor)
	g.world = NewWorld(cfg, float64(g.surface.Width()), float64(g.surface.Height()))
	g.world.OnEvent = g.onEvent
}

// Resize refits the camera to a new terminal size without resetting play.
func (g *Game) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	if g.world == nil {
		return
	}
	g.surface.Resize(cols, rows)
	g.world.Resize(float64(g.surface.Width()), float64(g.surface.Height()))
}

// Step advances the game by one tick of length dt.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.world.Reset()
	}

	ms := float64(dt) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	g.world.Tick(ms, in)

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	if g.surface.Width() != dst.Width() || g.surface.Height() != dst.Height()*2 {
		g.Resize(dst.Width(), dst.Height())
	}

	g.world.Draw(g.surface)
	g.surface.Flush(dst)

	hud := fmt.Sprintf(" Goals: %d ", g.world.Completions)
	dst.DrawTextColored(2, 0, hud, hudColor)

	if g.world.GoalReached {
		left := (g.world.CelebrationDuration - g.world.CelebrationTimer) / 1000
		g.drawCenteredMessage(dst, "GOAL!", fmt.Sprintf("Respawning in %.1fs", max(left, 0)))
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: panelColor})
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title, core.ColorYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:       g.world.Completions,
		Celebrating: g.world.Phase() == PhaseCelebrating,
		Paused:      g.paused,
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// screenSize keeps the surface at least one cell in each direction.
func screenSize(cols, rows int) (int, int) {
	return core.Max(cols, 1), core.Max(rows, 1)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
