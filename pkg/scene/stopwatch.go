// pkg/scene/stopwatch.go
package scene

import "time"

// Stopwatch measures the survival time since the last collision reset.
// Pausing freezes the reading without clearing it; resuming clears it
// and starts counting from zero again.
type Stopwatch struct {
	now       func() time.Time
	running   bool
	startedAt time.Time
	frozen    time.Duration
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Start clears the stopwatch and starts it counting.
func (sw *Stopwatch) Start() {
	sw.startedAt = sw.now()
	sw.frozen = 0
	sw.running = true
}

// Stop halts the stopwatch, freezing the current reading.
func (sw *Stopwatch) Stop() {
	if !sw.running {
		return
	}
	sw.frozen = sw.now().Sub(sw.startedAt)
	sw.running = false
}

// Running reports whether the stopwatch is counting.
func (sw *Stopwatch) Running() bool {
	return sw.running
}

// Elapsed samples the current reading. While stopped it returns the
// value frozen at the last Stop.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.running {
		return sw.now().Sub(sw.startedAt)
	}
	return sw.frozen
}

// SetPaused applies the per-tick pause contract: pausing a running
// stopwatch stops it without resetting; unpausing a stopped one resets
// it to zero and resumes. Repeated calls in the same state are no-ops.
func (sw *Stopwatch) SetPaused(paused bool) {
	if paused {
		sw.Stop()
	} else if !sw.running {
		sw.Start()
	}
}
