package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// celebrationPhases is the length of the bobbing cycle.
const celebrationPhases = 4

// Player is the circle the user controls.
// Velocities are in world units per tick.
type Player struct {
	X, Y       float64
	VelocityX  float64
	VelocityY  float64
	Radius     float64
	WorldWidth float64 // Horizontal clamp bound

	Speed     float64
	JumpForce float64 // Negative is upward
	Gravity   float64

	IsJumping        bool
	IsDucking        bool
	IsOnGround       bool
	IsCelebrating    bool
	CelebrationPhase int

	phaseMs float64
	bobStep float64
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(x, y, worldWidth float64, cfg config.PlatformerConfig) *Player {
	return &Player{
		X:          x,
		Y:          y,
		Radius:     cfg.Player.Radius,
		WorldWidth: worldWidth,
		Speed:      cfg.Physics.Speed,
		JumpForce:  cfg.Physics.JumpForce,
		Gravity:    cfg.Physics.Gravity,
		phaseMs:    cfg.Celebration.PhaseMs,
		bobStep:    cfg.Celebration.BobStep,
	}
}

// Update integrates one tick of motion.
// Gravity applies only while airborne. X is clamped to the world; vertical
// resolution is left to platform collision.
func (p *Player) Update() {
	if !p.IsOnGround {
		p.VelocityY += p.Gravity
	}

	p.X += p.VelocityX
	p.Y += p.VelocityY

	if p.X-p.Radius < 0 {
		p.X = p.Radius
	}
	if p.X+p.Radius > p.WorldWidth {
		p.X = p.WorldWidth - p.Radius
	}
}

// MoveLeft sets leftward velocity.
func (p *Player) MoveLeft() {
	p.VelocityX = -p.Speed
}

// MoveRight sets rightward velocity.
func (p *Player) MoveRight() {
	p.VelocityX = p.Speed
}

// StopMoving zeroes horizontal velocity. There is no friction.
func (p *Player) StopMoving() {
	p.VelocityX = 0
}

// Jump launches the player if standing on a surface and not mid-jump.
func (p *Player) Jump() {
	if !p.IsOnGround || p.IsJumping {
		return
	}
	p.VelocityY = p.JumpForce
	p.IsJumping = true
	p.IsDucking = false
	p.IsOnGround = false
}

// Duck crouches unless mid-jump. Collision radius is unchanged.
func (p *Player) Duck() {
	if !p.IsJumping {
		p.IsDucking = true
	}
}

// StopDucking stands back up.
func (p *Player) StopDucking() {
	p.IsDucking = false
}

// Celebrate advances the win animation for the given elapsed time in ms.
// Phase 0 bobs up, phase 2 bobs down. Motion is frozen.
func (p *Player) Celebrate(elapsedMs float64) {
	p.IsCelebrating = true
	p.CelebrationPhase = int(math.Floor(elapsedMs/p.phaseMs)) % celebrationPhases

	switch p.CelebrationPhase {
	case 0:
		p.Y -= p.bobStep
	case 2:
		p.Y += p.bobStep
	}

	p.VelocityX = 0
	p.VelocityY = 0
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X-p.Radius, p.Y-p.Radius, p.Radius*2, p.Radius*2)
}
