package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// testConfig is an 800x600 level with only the ground and a goal.
func testConfig() config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	cfg.World.Width = 800
	cfg.World.Height = 600
	cfg.World.Platforms = []core.RectF{
		{X: 0, Y: 550, Width: 800, Height: 50},
	}
	cfg.World.Goal = core.RectF{X: 700, Y: 200, Width: 50, Height: 50}
	return cfg
}

// newTestWorld builds a world on a 4:3 screen that shows the whole level.
func newTestWorld() *World {
	return NewWorld(testConfig(), 800, 600)
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// settle ticks with no input until the player has landed.
func settle(w *World) {
	for i := 0; i < 200 && !w.Player.IsOnGround; i++ {
		w.Tick(16, core.NewInputFrame())
	}
}
