// Package audio maps simulation events to sound cues and plays them on a
// sink. The sinks are fire-and-forget: Play never blocks the frame.
package audio

import "github.com/vovakirdan/junglerun/internal/sim"

// Waveform is the oscillator shape of a cue.
type Waveform uint8

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

// Note is one tone of a cue.
type Note struct {
	Freq  float64 // Hz at the start of the note
	Slide float64 // Hz at the end, 0 for a flat tone
	At    float64 // ms offset from the cue start
	Dur   float64 // ms
}

// Cue is a short sound effect.
type Cue struct {
	Name  string
	Wave  Waveform
	Gain  float64 // 0..1 relative to the master volume
	Notes []Note
	Bells int // Terminal bells rung by BellSink; 0 keeps the cue silent there
}

// Length returns the cue duration in ms.
func (c Cue) Length() float64 {
	end := 0.0
	for _, n := range c.Notes {
		end = max(end, n.At+n.Dur)
	}
	return end
}

func arpeggio(step, dur float64, freqs ...float64) []Note {
	notes := make([]Note, len(freqs))
	for i, f := range freqs {
		notes[i] = Note{Freq: f, At: float64(i) * step, Dur: dur}
	}
	return notes
}

var cues = map[sim.EventKind]Cue{
	sim.EventShoot: {
		Name: "shoot", Wave: Square, Gain: 0.3,
		Notes: []Note{{Freq: 400, Slide: 200, Dur: 100}},
	},
	sim.EventJump: {
		Name: "jump", Wave: Sine, Gain: 0.2,
		Notes: []Note{{Freq: 300, Slide: 600, Dur: 150}},
	},
	sim.EventEnemyDeath: {
		Name: "enemy-death", Wave: Sawtooth, Gain: 0.3,
		Notes: []Note{{Freq: 400, Slide: 50, Dur: 300}},
	},
	sim.EventPowerUp: {
		Name: "power-up", Wave: Sine, Gain: 0.2,
		Notes: arpeggio(50, 50, 400, 500, 600, 800),
		Bells: 1,
	},
	sim.EventHit: {
		Name: "hit", Wave: Sawtooth, Gain: 0.4,
		Notes: []Note{{Freq: 100, Dur: 100}},
		Bells: 1,
	},
	sim.EventLevelComplete: {
		Name: "level-complete", Wave: Square, Gain: 0.2,
		Notes: arpeggio(100, 150, 523, 659, 784, 1047),
		Bells: 2,
	},
	sim.EventGameOver: {
		Name: "game-over", Wave: Triangle, Gain: 0.2,
		Notes: arpeggio(150, 200, 392, 349, 330, 262),
		Bells: 3,
	},
	sim.EventWin: {
		Name: "win", Wave: Square, Gain: 0.2,
		Notes: arpeggio(100, 150, 523, 659, 784, 1047, 1319),
		Bells: 3,
	},
}

// CueFor returns the cue of an event kind.
func CueFor(kind sim.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// Sink plays cues.
type Sink interface {
	Play(c Cue)
}

// Player forwards the cues of simulation events to a sink.
type Player struct {
	sink  Sink
	muted bool
}

// NewPlayer creates a player on the given sink. A nil sink discards
// everything.
func NewPlayer(sink Sink) *Player {
	return &Player{sink: sink}
}

// Handle plays one cue per event, in order.
func (p *Player) Handle(events []sim.Event) {
	if p.sink == nil || p.muted {
		return
	}
	for _, ev := range events {
		if c, ok := CueFor(ev.Kind); ok {
			p.sink.Play(c)
		}
	}
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Muted reports whether playback is silenced.
func (p *Player) Muted() bool {
	return p.muted
}
