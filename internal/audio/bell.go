package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// bellGap separates consecutive bells of one cue so the terminal does not
// merge them.
const bellGap = 120 * time.Millisecond

// BellSink rings the terminal bell for cues that ask for it. Writes happen
// on a background goroutine; when the queue is full new cues are dropped.
type BellSink struct {
	w       io.Writer
	queue   chan Cue
	gap     time.Duration
	dropped atomic.Int64

	closeOnce sync.Once
	done      chan struct{}
}

// NewBellSink starts a sink writing to w with room for buffer pending cues.
func NewBellSink(w io.Writer, buffer int) *BellSink {
	if buffer < 1 {
		buffer = 1
	}
	s := &BellSink{
		w:     w,
		queue: make(chan Cue, buffer),
		gap:   bellGap,
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Play queues a cue without blocking. Silent cues are skipped.
func (s *BellSink) Play(c Cue) {
	if c.Bells <= 0 {
		return
	}
	select {
	case s.queue <- c:
	default:
		s.dropped.Add(1)
	}
}

// Dropped returns how many cues were discarded because the queue was full.
func (s *BellSink) Dropped() int64 {
	return s.dropped.Load()
}

// Close stops accepting cues, rings the queued ones and waits for the
// writer goroutine. Play must not be called after Close.
func (s *BellSink) Close() error {
	s.closeOnce.Do(func() { close(s.queue) })
	<-s.done
	return nil
}

func (s *BellSink) run() {
	defer close(s.done)
	for c := range s.queue {
		for i := range c.Bells {
			if i > 0 {
				time.Sleep(s.gap)
			}
			if _, err := io.WriteString(s.w, "\a"); err != nil {
				// Skip the rest of this cue.
				break
			}
		}
	}
}

// Recorder keeps every cue it is given. Safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play records the cue.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

// Names returns the recorded cue names in play order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.cues))
	for i, c := range r.cues {
		names[i] = c.Name
	}
	return names
}
