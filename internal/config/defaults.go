package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in level and physics.
// It matches defaults/platformer.yaml.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Speed:     5,
			JumpForce: -15,
			Gravity:   0.8,
		},
		Player: PlayerConfig{
			Radius: 30,
			SpawnX: 50,
			SpawnY: 300,
		},
		World: WorldConfig{
			Width:  2400,
			Height: 600,
			Platforms: []core.RectF{
				{X: 0, Y: 550, Width: 2400, Height: 50},
				{X: 300, Y: 450, Width: 200, Height: 20},
				{X: 600, Y: 370, Width: 180, Height: 20},
				{X: 900, Y: 300, Width: 200, Height: 20},
				{X: 1250, Y: 400, Width: 220, Height: 20},
				{X: 1600, Y: 320, Width: 200, Height: 20},
				{X: 1950, Y: 250, Width: 300, Height: 20},
			},
			Goal: core.RectF{X: 2150, Y: 170, Width: 50, Height: 50},
		},
		Camera: CameraConfig{
			Smoothing:  0.1,
			ViewWidth:  800,
			ViewHeight: 600,
		},
		Celebration: CelebrationConfig{
			DurationMs: 3000,
			PhaseMs:    200,
			BobStep:    2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
