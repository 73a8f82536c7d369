package effects

import (
	"math"
	"testing"

	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/sim"
)

func countKinds(effects []Effect) (particles, popups int) {
	for _, e := range effects {
		switch e.(type) {
		case *Particle:
			particles++
		case *Popup:
			popups++
		}
	}
	return particles, popups
}

func TestFeedSpawnsPerEvent(t *testing.T) {
	tests := []struct {
		name          string
		event         sim.Event
		wantParticles int
		wantPopups    int
	}{
		{"enemy death", sim.Event{Kind: sim.EventEnemyDeath, X: 100, Y: 100, Score: 100, Enemy: core.EnemyWalker}, 20, 1},
		{"shoot", sim.Event{Kind: sim.EventShoot, X: 10, Y: 10, Dir: 1}, 5, 0},
		{"power-up", sim.Event{Kind: sim.EventPowerUp, X: 50, Y: 50, PowerUp: core.PowerUpShield}, 15, 0},
		{"jump", sim.Event{Kind: sim.EventJump}, 0, 0},
		{"game over", sim.Event{Kind: sim.EventGameOver}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFeed(1)
			f.Handle(tc.event)

			particles, popups := countKinds(f.Effects())
			if particles != tc.wantParticles || popups != tc.wantPopups {
				t.Errorf("got %d particles, %d popups; expected %d, %d",
					particles, popups, tc.wantParticles, tc.wantPopups)
			}
		})
	}
}

func TestScorePopupText(t *testing.T) {
	f := NewFeed(1)
	f.Handle(sim.Event{Kind: sim.EventEnemyDeath, Score: 500, Enemy: core.EnemyBoss})

	for _, e := range f.Effects() {
		if p, ok := e.(*Popup); ok {
			if p.Text != "+500" {
				t.Errorf("Text = %q, expected +500", p.Text)
			}
			return
		}
	}
	t.Fatal("no popup spawned")
}

func TestPopupRisesAndExpires(t *testing.T) {
	p := NewPopup("+50", 10, 300, core.ColorGold)

	p.Update(500)
	if math.Abs(p.Y()-250) > 1e-3 {
		t.Errorf("Y after 500ms = %v, expected 250", p.Y())
	}
	if math.Abs(p.Alpha()-0.5) > 1e-3 {
		t.Errorf("Alpha after 500ms = %v, expected 0.5", p.Alpha())
	}
	if p.Expired() {
		t.Fatal("popup expired early")
	}

	p.Update(600)
	if !p.Expired() {
		t.Error("popup should expire after one second")
	}
}

func TestParticleFallsAndFades(t *testing.T) {
	p := NewParticle(0, 0, 100, 0, 3, core.ColorRed, 200)

	p.Update(100)
	if math.Abs(p.X-10) > 1e-9 {
		t.Errorf("X = %v, expected 10", p.X)
	}
	if math.Abs(p.VY-50) > 1e-9 {
		t.Errorf("VY = %v, expected gravity to add 50", p.VY)
	}
	if p.Alpha() <= 0 || p.Alpha() >= 1 {
		t.Errorf("Alpha = %v, expected mid-fade", p.Alpha())
	}

	p.Update(150)
	if !p.Expired() {
		t.Error("particle should expire after its life")
	}
}

func TestFeedUpdateDropsExpired(t *testing.T) {
	f := NewFeed(3)
	f.HandleAll([]sim.Event{
		{Kind: sim.EventShoot, Dir: -1},
		{Kind: sim.EventEnemyDeath, Score: 50, Enemy: core.EnemyChaser},
	})
	if f.Len() != 26 {
		t.Fatalf("Len() = %d, expected 26", f.Len())
	}

	f.Update(200)
	particles, popups := countKinds(f.Effects())
	if particles != 20 || popups != 1 {
		t.Errorf("after 200ms: %d particles, %d popups; muzzle flash should be gone", particles, popups)
	}

	f.Update(1000)
	if f.Len() != 0 {
		t.Errorf("Len() = %d after all lifetimes, expected 0", f.Len())
	}
}

func TestMuzzleFlashFollowsDirection(t *testing.T) {
	f := NewFeed(9)
	f.Handle(sim.Event{Kind: sim.EventShoot, Dir: -1})

	for _, e := range f.Effects() {
		if p := e.(*Particle); p.VX >= 0 {
			t.Errorf("left-facing flash particle has VX %v", p.VX)
		}
	}
}

func TestFeedIsBounded(t *testing.T) {
	f := NewFeed(1)
	for range 100 {
		f.Handle(sim.Event{Kind: sim.EventEnemyDeath, Score: 100})
	}
	if f.Len() > maxEffects {
		t.Errorf("Len() = %d, expected at most %d", f.Len(), maxEffects)
	}

	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear() left effects behind")
	}
}
