// pkg/render/engo/input.go
package engo

import (
	"sync"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asterdodge/pkg/gesture"
)

// Button names registered with engo.Input during scene setup.
const (
	buttonTurnLeft  = "turnLeft"
	buttonTurnRight = "turnRight"
	buttonCenter    = "center"
	buttonEngage    = "engage"
	buttonTracking  = "tracking"
	buttonQuit      = "quit"
)

// steerRampPerSecond is how fast a held arrow key sweeps the steering
// progress across its full range.
const steerRampPerSecond = 0.8

// RegisterButtons binds the demo's buttons to keys. Call once during
// scene setup.
func RegisterButtons() {
	engo.Input.RegisterButton(buttonTurnLeft, engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton(buttonTurnRight, engo.KeyArrowRight, engo.KeyD)
	engo.Input.RegisterButton(buttonCenter, engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton(buttonEngage, engo.KeySpace)
	engo.Input.RegisterButton(buttonTracking, engo.KeyT)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape, engo.KeyQ)
}

// InputSystem samples engo's input state every frame and exposes the
// result as gesture detections. Held arrows sweep the steering
// progress, space toggles the engaged state, and 't' toggles tracking
// to simulate the body leaving the sensor's view.
type InputSystem struct {
	mu       sync.Mutex
	progress float64
	engaged  bool
	tracked  bool
	quit     func()
}

// NewInputSystem creates an input system with a centered wheel,
// engaged and tracking on. The quit callback fires on Escape or 'q'.
func NewInputSystem(quit func()) *InputSystem {
	return &InputSystem{
		progress: 0.5,
		engaged:  true,
		tracked:  true,
		quit:     quit,
	}
}

// Add satisfies the ecs.System interface.
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
}

// Update samples the button states for this frame.
func (is *InputSystem) Update(dt float32) {
	is.mu.Lock()
	defer is.mu.Unlock()

	if engo.Input.Button(buttonQuit).JustPressed() && is.quit != nil {
		is.quit()
	}
	if engo.Input.Button(buttonEngage).JustPressed() {
		is.engaged = !is.engaged
	}
	if engo.Input.Button(buttonTracking).JustPressed() {
		is.tracked = !is.tracked
	}

	step := steerRampPerSecond * float64(dt)
	if engo.Input.Button(buttonTurnLeft).Down() {
		is.progress -= step
		if is.progress < 0 {
			is.progress = 0
		}
	}
	if engo.Input.Button(buttonTurnRight).Down() {
		is.progress += step
		if is.progress > 1 {
			is.progress = 1
		}
	}
	if engo.Input.Button(buttonCenter).Down() {
		is.progress = 0.5
	}
}

// Poll implements input.Provider. An engaged wheel reports the turn
// gesture matching its position; a disengaged one reports no gesture,
// which freezes the ship.
func (is *InputSystem) Poll() (gesture.Detection, error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	d := gesture.Detection{
		Tracked:       is.tracked,
		SteerProgress: is.progress,
	}
	if is.engaged {
		switch {
		case is.progress < 0.5:
			d.TurnLeft = true
		case is.progress > 0.5:
			d.TurnRight = true
		default:
			d.HandClosed = true
		}
	}
	return d, nil
}
