// pkg/input/provider.go
package input

import (
	"errors"

	"github.com/opd-ai/go-asterdodge/pkg/gesture"
)

// ErrNoDetection reports that a provider had no gesture detection to
// deliver this tick. The tracking service treats it as a soft failure.
var ErrNoDetection = errors.New("input: no detection available")

// Provider delivers one gesture detection per tick. Implementations
// include the keyboard adapters in the render packages and the
// scripted provider below.
type Provider interface {
	// Poll returns the detection for the current tick. It must not
	// block; return ErrNoDetection when nothing is available.
	Poll() (gesture.Detection, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (gesture.Detection, error)

// Poll implements Provider.
func (f ProviderFunc) Poll() (gesture.Detection, error) {
	return f()
}

// ScriptStep pairs a detection with how many ticks it should be held.
type ScriptStep struct {
	Detection gesture.Detection
	Ticks     int
}

// ScriptProvider replays a fixed sequence of detections, holding each
// step for its tick count. After the script runs out it keeps
// returning the final step, or loops when configured to.
type ScriptProvider struct {
	steps []ScriptStep
	loop  bool
	index int
	held  int
}

// NewScriptProvider builds a provider from the given steps. Steps with
// a non-positive tick count are held for a single tick.
func NewScriptProvider(steps []ScriptStep, loop bool) (*ScriptProvider, error) {
	if len(steps) == 0 {
		return nil, errors.New("input: empty script")
	}
	normalized := make([]ScriptStep, len(steps))
	for i, step := range steps {
		if step.Ticks <= 0 {
			step.Ticks = 1
		}
		normalized[i] = step
	}
	return &ScriptProvider{steps: normalized, loop: loop}, nil
}

// Poll implements Provider.
func (p *ScriptProvider) Poll() (gesture.Detection, error) {
	step := p.steps[p.index]
	p.held++
	if p.held >= step.Ticks {
		p.held = 0
		if p.index < len(p.steps)-1 {
			p.index++
		} else if p.loop {
			p.index = 0
		}
	}
	return step.Detection, nil
}

// Done reports whether a non-looping script has reached its final step.
func (p *ScriptProvider) Done() bool {
	return !p.loop && p.index == len(p.steps)-1
}
