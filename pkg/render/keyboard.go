// pkg/render/keyboard.go
package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asterdodge/pkg/gesture"
)

// steerStep is how far one arrow press moves the steering progress.
const steerStep = 0.05

// KeyboardProvider turns tcell key events into gesture detections so
// the demo runs without a gesture sensor. Left and right arrows ramp
// the steering progress, up re-centers it, space toggles the engaged
// state (disengaged reads as an open hand, which freezes the ship),
// and 't' toggles tracking to simulate the body leaving the sensor's
// view.
type KeyboardProvider struct {
	mu       sync.Mutex
	progress float64
	engaged  bool
	tracked  bool
	quit     func()
}

// NewKeyboardProvider creates a provider with a centered wheel,
// engaged and tracking on. The quit callback fires on Escape, 'q', or
// Ctrl-C.
func NewKeyboardProvider(quit func()) *KeyboardProvider {
	return &KeyboardProvider{
		progress: 0.5,
		engaged:  true,
		tracked:  true,
		quit:     quit,
	}
}

// HandleEvent consumes one tcell event. Call it from the screen's
// event loop.
func (p *KeyboardProvider) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.callQuit()
	case tcell.KeyLeft:
		p.progress -= steerStep
		if p.progress < 0 {
			p.progress = 0
		}
	case tcell.KeyRight:
		p.progress += steerStep
		if p.progress > 1 {
			p.progress = 1
		}
	case tcell.KeyUp:
		p.progress = 0.5
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			p.callQuit()
		case ' ':
			p.engaged = !p.engaged
		case 't':
			p.tracked = !p.tracked
		}
	}
}

func (p *KeyboardProvider) callQuit() {
	if p.quit != nil {
		p.quit()
	}
}

// Poll implements input.Provider. An engaged wheel reports the turn
// gesture matching its position so classification keeps the ship
// moving; a disengaged one reports no gesture at all.
func (p *KeyboardProvider) Poll() (gesture.Detection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	d := gesture.Detection{
		Tracked:       p.tracked,
		SteerProgress: p.progress,
	}
	if p.engaged {
		switch {
		case p.progress < 0.5:
			d.TurnLeft = true
		case p.progress > 0.5:
			d.TurnRight = true
		default:
			d.HandClosed = true
		}
	}
	return d, nil
}
