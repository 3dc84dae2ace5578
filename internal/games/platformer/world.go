package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// landingBand is how far below a platform's top edge the player's bottom
// may be and still land on it.
const landingBand = 10

// Platform is a static world-space rectangle that can be landed on from above.
type Platform = core.RectF

// Phase is the world's state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseCelebrating
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseCelebrating:
		return "Celebrating"
	default:
		return "Unknown"
	}
}

// World owns the player, level geometry and camera, and advances them one
// tick at a time. It is not safe for concurrent use.
type World struct {
	Player    *Player
	Platforms []Platform // Index 0 is the ground
	Goal      core.RectF
	Camera    *Camera

	GoalReached         bool
	CelebrationTimer    float64 // ms since the goal was reached
	CelebrationDuration float64 // ms

	Completions int // Goal round-trips finished
	Ticks       int

	cfg    config.PlatformerConfig
	spawnX float64
	spawnY float64

	// OnEvent, if set, is told about state transitions.
	OnEvent func(Event)
}

// EventKind identifies a world state transition.
type EventKind int

const (
	EventGoalReached EventKind = iota
	EventRespawn
)

// Event describes a state transition for observers such as loggers.
type Event struct {
	Kind        EventKind
	X, Y        float64
	Completions int
	Tick        int
}

// NewWorld builds the level described by cfg for a screen of the given
// pixel size.
func NewWorld(cfg config.PlatformerConfig, screenW, screenH float64) *World {
	platforms := make([]Platform, len(cfg.World.Platforms))
	copy(platforms, cfg.World.Platforms)

	w := &World{
		Platforms:           platforms,
		Goal:                cfg.World.Goal,
		CelebrationDuration: cfg.Celebration.DurationMs,
		cfg:                 cfg,
		spawnX:              cfg.Player.SpawnX,
		spawnY:              cfg.Player.SpawnY,
	}
	w.Camera = NewCamera(cfg.World.Width, cfg.World.Height, cfg.Camera.Smoothing)
	w.Resize(screenW, screenH)
	w.Reset()
	return w
}

// Reset respawns the player at the start and clears goal state.
func (w *World) Reset() {
	x, y := w.Spawn()
	w.Player = NewPlayer(x, y, w.cfg.World.Width, w.cfg)
	w.GoalReached = false
	w.CelebrationTimer = 0
	w.Camera.Snap(w.Player.X, w.Player.Y)
}

// Phase reports the current state machine phase.
func (w *World) Phase() Phase {
	if w.GoalReached {
		return PhaseCelebrating
	}
	return PhasePlaying
}

// Spawn returns the fixed start position.
func (w *World) Spawn() (float64, float64) {
	return w.spawnX, w.spawnY
}

// Resize refits the camera to a new screen size in pixels.
func (w *World) Resize(screenW, screenH float64) {
	fitW, fitH := w.cfg.Camera.ViewWidth, w.cfg.Camera.ViewHeight
	if fitW <= 0 || fitH <= 0 {
		fitW, fitH = w.cfg.World.Width, w.cfg.World.Height
	}
	w.Camera.UpdateViewport(screenW, screenH, fitW, fitH)
}

// Tick advances the simulation by one frame. dtMs is the time since the
// previous tick; in is the input snapshot taken at tick start.
func (w *World) Tick(dtMs float64, in core.InputFrame) {
	w.Ticks++

	if w.GoalReached {
		w.CelebrationTimer += dtMs
		w.Player.Celebrate(w.CelebrationTimer)
		if w.CelebrationTimer >= w.CelebrationDuration {
			w.Completions++
			w.Reset()
			w.emit(EventRespawn)
		}
	} else {
		w.applyInput(in)
	}

	w.Player.Update()
	w.CheckPlatformCollisions()

	if !w.GoalReached && w.CheckGoalCollision() {
		w.GoalReached = true
		w.CelebrationTimer = 0
		w.emit(EventGoalReached)
	}

	w.Camera.Follow(w.Player.X, w.Player.Y)
}

// applyInput maps the snapshot onto the player's motion intents.
// Left wins over right when both are held.
func (w *World) applyInput(in core.InputFrame) {
	p := w.Player
	switch {
	case in.Has(core.ActionLeft):
		p.MoveLeft()
	case in.Has(core.ActionRight):
		p.MoveRight()
	default:
		p.StopMoving()
	}

	if in.Has(core.ActionJump) {
		p.Jump()
	}

	if in.Has(core.ActionDuck) {
		p.Duck()
	} else {
		p.StopDucking()
	}
}

// CheckPlatformCollisions lands a descending player on the first platform
// whose top band their bottom edge is in. Platforms only block from above.
// The band includes the top edge so a resting player stays grounded, and a
// player fast enough to skip the band still lands if their bottom crossed
// the top during this tick.
func (w *World) CheckPlatformCollisions() {
	p := w.Player
	p.IsOnGround = false

	if p.VelocityY < 0 {
		return
	}

	bottom := p.Y + p.Radius
	prevBottom := bottom - p.VelocityY
	for _, plat := range w.Platforms {
		overlapsX := p.X+p.Radius > plat.X && p.X-p.Radius < plat.Right()
		inBand := bottom >= plat.Y && (bottom < plat.Y+landingBand || prevBottom <= plat.Y)
		if overlapsX && inBand {
			p.Y = plat.Y - p.Radius
			p.VelocityY = 0
			p.IsJumping = false
			p.IsOnGround = true
			return
		}
	}
}

// CheckGoalCollision tests the player's bounding box against the goal.
// Touching the goal's left or top edge does not count; touching its right
// or bottom edge does.
func (w *World) CheckGoalCollision() bool {
	return w.Player.Bounds().Reaches(w.Goal)
}

func (w *World) emit(kind EventKind) {
	if w.OnEvent == nil {
		return
	}
	w.OnEvent(Event{
		Kind:        kind,
		X:           w.Player.X,
		Y:           w.Player.Y,
		Completions: w.Completions,
		Tick:        w.Ticks,
	})
}
