package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

func TestDrawOrderAndColors(t *testing.T) {
	w := newTestWorld()
	w.Platforms = append(w.Platforms, Platform{X: 300, Y: 450, Width: 200, Height: 20})

	var rec render.Recorder
	w.Draw(&rec)

	if len(rec.Ops) == 0 || rec.Ops[0].Kind != render.OpClear {
		t.Fatal("Draw should clear the surface first")
	}

	rects := rec.Rects()
	if len(rects) != 3 {
		t.Fatalf("Expected 2 platforms and a goal, got %d rects", len(rects))
	}
	if rects[0].Color != GroundColor {
		t.Error("First platform should be drawn as ground")
	}
	if rects[1].Color != PlatformColor {
		t.Error("Other platforms should use the platform color")
	}
	if rects[2].Color != GoalColor {
		t.Error("Goal should be drawn last among rects")
	}

	// Whole world on an 800x600 screen: scale 1, no offset
	if rects[0].X != 0 || rects[0].Y != 550 || rects[0].W != 800 || rects[0].H != 50 {
		t.Errorf("Ground rect = %+v", rects[0])
	}

	circles := rec.Circles()
	if len(circles) != 4 {
		t.Fatalf("Expected body, two eyes and mouth, got %d circles", len(circles))
	}
	body := circles[0]
	if body.Color != PlayerColor || body.R != 30 || body.X != 50 || body.Y != 300 {
		t.Errorf("Body = %+v", body)
	}
}

func TestDrawDuckingFlattensBody(t *testing.T) {
	w := newTestWorld()
	w.Player.Duck()

	var rec render.Recorder
	w.Draw(&rec)

	circles := rec.Circles()
	if !circles[0].Flattened {
		t.Error("Ducking body should be flattened")
	}
	for _, eye := range circles[1:3] {
		if eye.Flattened {
			t.Error("Eyes should not be flattened")
		}
	}

	mouth := circles[3]
	if !approx(mouth.R, 3) || !approx(mouth.Y, 312) {
		t.Errorf("Ducking mouth = %+v, expected r=3 at y=312", mouth)
	}
}

func TestDrawMouthStates(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*Player)
		expectedR float64
	}{
		{"normal", func(*Player) {}, 4.5},
		{"ducking", func(p *Player) { p.IsDucking = true }, 3},
		{"celebrating", func(p *Player) { p.IsCelebrating = true }, 7.5},
		{"celebrating wins over ducking", func(p *Player) { p.IsCelebrating = true; p.IsDucking = true }, 7.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			tc.setup(w.Player)
			_, _, r := w.mouth()
			if !approx(r, tc.expectedR) {
				t.Errorf("mouth radius = %f, expected %f", r, tc.expectedR)
			}
		})
	}
}

func TestDrawCelebrationPulse(t *testing.T) {
	w := newTestWorld()
	w.Player.IsCelebrating = true
	w.CelebrationTimer = 157 // sin(1.57) is close to 1

	var rec render.Recorder
	w.Draw(&rec)

	body := rec.Circles()[0]
	if body.R <= 32.9 || body.R > 33 {
		t.Errorf("Pulsing body radius = %f, expected about 33", body.R)
	}
}

func TestDrawUsesCamera(t *testing.T) {
	cfg := testConfig()
	cfg.World.Width = 2400
	w := NewWorld(cfg, 80, 60) // scale 0.1
	w.Camera.X = 100

	var rec render.Recorder
	w.Draw(&rec)

	goal := rec.Rects()[1]
	if !approx(goal.X, 60) || !approx(goal.W, 5) {
		t.Errorf("Goal on screen = %+v, expected x=60 w=5", goal)
	}
}

func TestDrawOnHalfBlockSurface(t *testing.T) {
	w := newTestWorld()
	s := render.NewHalfBlockSurface(800, 300, SkyColor)
	w.Draw(s)

	if s.Pixel(400, 10) != SkyColor {
		t.Error("Empty sky should keep the clear color")
	}
	if s.Pixel(400, 575) != GroundColor {
		t.Error("Ground should be painted")
	}
	if s.Pixel(725, 225) != GoalColor {
		t.Error("Goal should be painted")
	}
	if s.Pixel(50, 320) != PlayerColor {
		t.Error("Player body should be painted")
	}

	screen := core.NewScreen(800, 300)
	s.Flush(screen)
	if screen.GetCell(400, 290).Bg != GroundColor {
		t.Error("Flushed screen should carry the ground color")
	}
}
