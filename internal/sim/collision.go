package sim

import "github.com/vovakirdan/junglerun/internal/core"

// resolveCollisions runs every pairwise check of the tick in a fixed order
// and appends the resulting events. Entities flagged terminal earlier in
// the pass are skipped by every later check.
func (w *World) resolveCollisions(events []Event) []Event {
	p := w.player

	// Player x Enemy contact
	for _, e := range w.enemies {
		if e.Dead || !p.Intersects(e.Rect) {
			continue
		}
		if p.TakeDamage(w.cfg.Player.ContactDamage) {
			events = append(events, w.hitEvent())
		}
	}

	// Hostile projectile x Player; absorbed shots are still consumed
	for _, s := range w.projectiles {
		if s.Destroyed || s.Owner != OwnerHostile || !s.Intersects(p.Rect) {
			continue
		}
		if p.TakeDamage(s.Damage) {
			events = append(events, w.hitEvent())
		}
		s.Destroyed = true
	}

	// Projectile x Enemy. The enemy loop is not cut short, so one
	// projectile can hit every enemy it overlaps on the same tick.
	for _, s := range w.projectiles {
		if s.Destroyed {
			continue
		}
		for _, e := range w.enemies {
			if e.Dead || !s.Intersects(e.Rect) {
				continue
			}
			if e.TakeDamage(s.Damage) {
				events = append(events, w.kill(e))
			}
			s.Destroyed = true
		}
	}

	// Player x PowerUp
	for _, u := range w.powerUps {
		if u.Collected || !p.Intersects(u.Rect) {
			continue
		}
		u.apply(p, w.cfg.PowerUps)
		u.Collected = true
		cx, cy := u.Center()
		events = append(events, Event{Kind: EventPowerUp, Tick: w.tick, X: cx, Y: cy, PowerUp: u.Kind})
	}

	return events
}

// kill awards the score of an enemy that just died. Bosses also grant the
// powered state.
func (w *World) kill(e *Enemy) Event {
	w.score += e.Score()
	if e.Kind() == core.EnemyBoss {
		w.player.PowerUp()
	}
	cx, cy := e.Center()
	return Event{
		Kind:  EventEnemyDeath,
		Tick:  w.tick,
		X:     cx,
		Y:     cy,
		Score: e.Score(),
		Enemy: e.Kind(),
	}
}

func (w *World) hitEvent() Event {
	cx, cy := w.player.Center()
	return Event{Kind: EventHit, Tick: w.tick, X: cx, Y: cy}
}
