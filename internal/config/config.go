// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	World       WorldConfig       `yaml:"world"`
	Camera      CameraConfig      `yaml:"camera"`
	Celebration CelebrationConfig `yaml:"celebration"`
}

// PhysicsConfig defines per-tick movement constants.
// Velocities are world units per tick; gravity is added once per airborne tick.
type PhysicsConfig struct {
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jump_force"` // Negative means upward
	Gravity   float64 `yaml:"gravity"`
}

// PlayerConfig defines the player's size and spawn point.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// WorldConfig defines the level: world size, platforms and goal.
// The first platform is the ground.
type WorldConfig struct {
	Width     float64      `yaml:"width"`
	Height    float64      `yaml:"height"`
	Platforms []core.RectF `yaml:"platforms"`
	Goal      core.RectF   `yaml:"goal"`
}

// CameraConfig defines camera follow behavior.
// ViewWidth and ViewHeight are the world area fitted to the screen; zero
// fits the whole world.
type CameraConfig struct {
	Smoothing  float64 `yaml:"smoothing"` // Fraction of the remaining distance covered per tick
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
}

// CelebrationConfig defines the win animation.
type CelebrationConfig struct {
	DurationMs float64 `yaml:"duration_ms"`
	PhaseMs    float64 `yaml:"phase_ms"`
	BobStep    float64 `yaml:"bob_step"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset.
// The empty string means "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks that the config describes a playable level.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player radius must be positive, got %g", c.Player.Radius))
	}
	if c.World.Width > 0 && c.Player.Radius*2 > c.World.Width {
		errs = append(errs, fmt.Errorf("player diameter %g exceeds world width %g", c.Player.Radius*2, c.World.Width))
	}
	if len(c.World.Platforms) == 0 {
		errs = append(errs, errors.New("level needs at least one platform (the ground)"))
	}
	for i, p := range c.World.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("platform %d has non-positive size %gx%g", i, p.Width, p.Height))
		}
	}
	if c.World.Goal.Width <= 0 || c.World.Goal.Height <= 0 {
		errs = append(errs, fmt.Errorf("goal has non-positive size %gx%g", c.World.Goal.Width, c.World.Goal.Height))
	}
	if c.Camera.ViewWidth < 0 || c.Camera.ViewHeight < 0 {
		errs = append(errs, fmt.Errorf("camera view size must not be negative, got %gx%g", c.Camera.ViewWidth, c.Camera.ViewHeight))
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("camera smoothing must be in (0, 1], got %g", c.Camera.Smoothing))
	}
	if c.Celebration.DurationMs <= 0 || c.Celebration.PhaseMs <= 0 {
		errs = append(errs, errors.New("celebration durations must be positive"))
	}
	return errors.Join(errs...)
}
