package sim

import (
	"time"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
)

// accEpsilon absorbs float error so that N whole ticks of wall time run
// exactly N steps.
const accEpsilon = 1e-9

// Stepper advances a simulation by one fixed tick.
type Stepper interface {
	Step(dt float64, in core.Intent) StepResult
}

// FrameResult summarizes one wall-clock frame.
type FrameResult struct {
	Ticks   int            // Fixed steps run this frame
	Dropped float64        // Accumulated ms discarded because of the step cap
	State   core.GameState // After the last tick; zero when no tick ran
	Events  []Event        // Events of every tick, in order
}

// Driver decouples variable frame delivery from the fixed tick. Frame
// time accumulates; each whole tick runs exactly one Step. At most
// maxSteps run per frame and any remainder past the cap is dropped, so a
// slow frame never snowballs into longer and longer catch-up.
type Driver struct {
	sim      Stepper
	tick     float64 // ms
	maxSteps int
	acc      float64
}

// NewDriver creates a driver for the given simulation.
func NewDriver(s Stepper, loop config.LoopConfig) *Driver {
	d := &Driver{sim: s, tick: loop.TickMS, maxSteps: loop.MaxSteps}
	if d.tick <= 0 {
		d.tick = 1000.0 / 60
	}
	if d.maxSteps < 1 {
		d.maxSteps = 5
	}
	return d
}

// Advance consumes frameMS of wall time, running zero or more ticks with
// the same intent. Negative deltas are ignored.
func (d *Driver) Advance(frameMS float64, in core.Intent) FrameResult {
	var res FrameResult
	if frameMS > 0 {
		d.acc += frameMS
	}

	for d.acc+accEpsilon >= d.tick && res.Ticks < d.maxSteps {
		d.acc -= d.tick
		step := d.sim.Step(d.tick, in)
		res.Events = append(res.Events, step.Events...)
		res.State = step.State
		res.Ticks++
	}

	if res.Ticks == d.maxSteps {
		res.Dropped = max(0, d.acc)
		d.acc = 0
	}
	if d.acc < accEpsilon {
		d.acc = 0
	}
	return res
}

// AdvanceDuration is Advance for a wall-clock duration.
func (d *Driver) AdvanceDuration(elapsed time.Duration, in core.Intent) FrameResult {
	return d.Advance(float64(elapsed)/float64(time.Millisecond), in)
}

// Accumulated returns the ms waiting for the next tick.
func (d *Driver) Accumulated() float64 {
	return d.acc
}

// Alpha returns how far the accumulator is into the next tick, in [0, 1).
// Renderers may use it to interpolate.
func (d *Driver) Alpha() float64 {
	return d.acc / d.tick
}

// TickMS returns the fixed tick length.
func (d *Driver) TickMS() float64 {
	return d.tick
}

// Reset clears the accumulator, for example after a pause.
func (d *Driver) Reset() {
	d.acc = 0
}
