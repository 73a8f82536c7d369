package audio

import (
	"bytes"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/vovakirdan/junglerun/internal/sim"
)

// lockedBuffer is a bytes.Buffer safe for the sink goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// blockingWriter parks the sink goroutine until released.
type blockingWriter struct {
	release chan struct{}
}

func (w blockingWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestEveryEventKindHasACue(t *testing.T) {
	kinds := []sim.EventKind{
		sim.EventJump, sim.EventShoot, sim.EventHit, sim.EventEnemyDeath,
		sim.EventPowerUp, sim.EventLevelComplete, sim.EventGameOver, sim.EventWin,
	}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			c, ok := CueFor(k)
			if !ok {
				t.Fatalf("no cue for %v", k)
			}
			if c.Name == "" || len(c.Notes) == 0 || c.Length() <= 0 {
				t.Errorf("incomplete cue %+v", c)
			}
		})
	}

	if _, ok := CueFor(0); ok {
		t.Error("the zero event kind should have no cue")
	}
}

func TestCueLength(t *testing.T) {
	c, _ := CueFor(sim.EventLevelComplete)
	if c.Length() != 450 {
		t.Errorf("Length() = %v, expected 450", c.Length())
	}
}

func TestPlayerForwardsInOrder(t *testing.T) {
	rec := &Recorder{}
	p := NewPlayer(rec)

	p.Handle([]sim.Event{{Kind: sim.EventShoot}, {Kind: sim.EventHit}, {Kind: sim.EventGameOver}})
	want := []string{"shoot", "hit", "game-over"}
	if got := rec.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, expected %v", got, want)
	}

	p.SetMuted(true)
	p.Handle([]sim.Event{{Kind: sim.EventJump}})
	if len(rec.Names()) != 3 || !p.Muted() {
		t.Error("muted player still played")
	}
}

func TestNilSinkIsSilent(t *testing.T) {
	NewPlayer(nil).Handle([]sim.Event{{Kind: sim.EventWin}})
}

func TestBellSinkRingsBells(t *testing.T) {
	var out lockedBuffer
	s := NewBellSink(&out, 8)
	s.gap = 0

	shoot, _ := CueFor(sim.EventShoot)
	hit, _ := CueFor(sim.EventHit)
	over, _ := CueFor(sim.EventGameOver)
	s.Play(shoot)
	s.Play(hit)
	s.Play(over)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if got := out.String(); got != "\a\a\a\a" {
		t.Errorf("wrote %q, expected four bells", got)
	}
}

func TestBellSinkDropsWhenFull(t *testing.T) {
	w := blockingWriter{release: make(chan struct{})}
	s := NewBellSink(w, 1)
	hit, _ := CueFor(sim.EventHit)

	// One cue may be taken by the writer, one fits the buffer; the rest
	// must be dropped without blocking.
	for range 10 {
		s.Play(hit)
	}
	if s.Dropped() < 8 {
		t.Errorf("Dropped() = %d, expected at least 8", s.Dropped())
	}

	close(w.release)
	s.Close()
}

func TestBellSinkSurvivesWriteErrors(t *testing.T) {
	s := NewBellSink(failingWriter{}, 4)
	s.gap = 0
	over, _ := CueFor(sim.EventGameOver)
	s.Play(over)
	s.Play(over)
	if err := s.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
