// pkg/gesture/result.go
package gesture

// NoProgress is the sentinel progress value meaning "no active steering
// context": none of the discrete gestures hold, so the continuous signal
// carries no meaning and the ship must not move.
const NoProgress = -1.0

// Result is the per-frame steering tuple supplied by the gesture
// recognizer. The core only ever reads it; a fresh value replaces it
// wholesale every tick.
type Result struct {
	IsTracked    bool
	TurnLeft     bool
	TurnRight    bool
	KeepStraight bool
	Progress     float64 // [0,1], or NoProgress
}

// Untracked is the tuple emitted when no body is tracked or the sensor
// feed is unavailable.
func Untracked() Result {
	return Result{Progress: NoProgress}
}

// Detection carries the raw per-frame signals coming out of the
// recognizer before the classification rule is applied: the discrete
// gesture detections and the unclamped continuous progress sample.
type Detection struct {
	Tracked       bool
	HoldLeft      bool // hand held at the left extreme
	TurnLeft      bool
	HoldRight     bool
	TurnRight     bool
	HandClosed    bool
	SteerProgress float64
}

// Classify applies the upstream classification rule to raw detections:
// either left gesture forces a left turn (and clears keep-straight),
// symmetrically for the right side; keep-straight otherwise mirrors the
// hand-closed signal. Progress is clamped to [0,1] and forced to the
// sentinel whenever no discrete context holds.
func Classify(d Detection) Result {
	if !d.Tracked {
		return Untracked()
	}

	res := Result{IsTracked: true}

	switch {
	case d.HoldLeft || d.TurnLeft:
		res.TurnLeft = true
	case d.HoldRight || d.TurnRight:
		res.TurnRight = true
	default:
		res.KeepStraight = d.HandClosed
	}

	res.Progress = clamp(d.SteerProgress, 0, 1)
	if !res.TurnLeft && !res.TurnRight && !res.KeepStraight {
		res.Progress = NoProgress
	}
	return res
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
