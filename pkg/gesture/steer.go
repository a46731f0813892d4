// pkg/gesture/steer.go
package gesture

// steerGain converts the distance of the progress signal from its center
// into degrees of rotation per tick: a progress pinned at an extreme
// turns the ship 5 degrees per tick.
const steerGain = 10.0

// Command is the per-tick motion command mapped from a steering tuple.
// RotationDelta is applied to the ship's heading before the asteroids
// advance; Move gates the ship's reflect-policy position step, which the
// scene applies after the collision check. The two effects are
// independent.
type Command struct {
	RotationDelta float64
	Move          bool
}

// SteerCommand maps a steering tuple into a motion command. Turning left
// of center (progress below 0.5) rotates the ship counter-clockwise in
// proportion to the distance from center, turning right of center
// rotates clockwise; dead center and keep-straight apply no rotation.
// Any valid progress, keep-straight included, still moves the ship; the
// sentinel freezes it for the tick.
func SteerCommand(keepStraight bool, progress float64) Command {
	cmd := Command{Move: progress >= 0}

	if keepStraight {
		return cmd
	}
	switch {
	case progress >= 0 && progress < 0.5:
		cmd.RotationDelta = -(0.5 - progress) * steerGain
	case progress > 0.5 && progress <= 1:
		cmd.RotationDelta = (progress - 0.5) * steerGain
	}
	return cmd
}
