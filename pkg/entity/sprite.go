// pkg/entity/sprite.go
package entity

import (
	"math/rand/v2"

	"github.com/opd-ai/go-asterdodge/pkg/physics"
)

// BoundaryPolicy selects how a sprite re-enters the arena after its next
// step would carry it past an edge.
type BoundaryPolicy int

const (
	// Wrap teleports the sprite to a random point on the opposite edge
	// with a fresh random heading. Asteroids use this.
	Wrap BoundaryPolicy = iota
	// Reflect re-enters the sprite on the opposite edge along its
	// original line of travel, preserving the heading. The ship uses this.
	Reflect
)

// Sprite is one moving object in the arena: the ship, an asteroid or the
// explosion effect. Position is expressed relative to the arena center so
// the sprite keeps its place when the host surface resizes.
type Sprite struct {
	Position physics.Vector2D
	Rotation float64 // degrees in [0,360), measured from the up axis
	ScaleX   float64
	ScaleY   float64
	Speed    float64 // units per tick
	Size     physics.Vector2D
	Visible  bool
}

// NewSprite creates a visible sprite at the arena center with unit scale.
func NewSprite(size physics.Vector2D, speed float64) *Sprite {
	return &Sprite{
		ScaleX:  1,
		ScaleY:  1,
		Speed:   speed,
		Size:    size,
		Visible: true,
	}
}

// Bounds returns the sprite's screen-space bounding box within the given
// arena, with the sprite size scaled per axis. Collision checks compare
// these boxes in shared screen coordinates.
func (s *Sprite) Bounds(arena physics.Rect) physics.Rect {
	return physics.Rect{
		Center: arena.Center.Add(s.Position),
		Width:  s.Size.X * s.ScaleX,
		Height: s.Size.Y * s.ScaleY,
	}
}

// Advance steps the sprite Speed units along its heading and applies the
// boundary policy if the resulting absolute position leaves the arena.
// A speed of zero never exits the bounds, so the boundary logic is never
// exercised for the explosion sprite.
func (s *Sprite) Advance(arena physics.Rect, policy BoundaryPolicy, rng *rand.Rand) {
	step := physics.Heading(s.Rotation).Scale(s.Speed)
	prev := arena.Center.Add(s.Position)
	next := prev.Add(step)

	if !arena.Contains(next) {
		switch policy {
		case Wrap:
			next = s.wrap(arena, next, rng)
		case Reflect:
			next = reflect(arena, prev, next)
		}
	}

	s.Position = next.Sub(arena.Center)
}

// wrap relocates an out-of-bounds point to the opposite edge at a random
// integer coordinate and re-randomizes the heading. An X violation takes
// precedence over a simultaneous Y violation.
func (s *Sprite) wrap(arena physics.Rect, next physics.Vector2D, rng *rand.Rand) physics.Vector2D {
	if !arena.ContainsX(next.X) {
		next.X = arena.OppositeX(next.X)
		next.Y = randomCoordinate(rng, arena.Top(), arena.Bottom())
	} else {
		next.Y = arena.OppositeY(next.Y)
		next.X = randomCoordinate(rng, arena.Left(), arena.Right())
	}
	s.Rotation = float64(rng.IntN(360))
	return next
}

// reflect moves an out-of-bounds point to the opposite edge along the
// line from prev to next. The correction order is X, then Y using the
// corrected X, then a final X re-check; steep trajectories depend on this
// exact order, so it must not be rearranged.
func reflect(arena physics.Rect, prev, next physics.Vector2D) physics.Vector2D {
	line := physics.NewLine(prev, next)
	if line.Vertical {
		if !arena.ContainsY(next.Y) {
			next.Y = arena.OppositeY(next.Y)
		}
		return next
	}

	if !arena.ContainsX(next.X) {
		next.X = arena.OppositeX(next.X)
		next.Y = line.YAt(next.X)
	}
	if !arena.ContainsY(next.Y) {
		next.Y = arena.OppositeY(next.Y)
		next.X = line.XAt(next.Y)
	}
	if !arena.ContainsX(next.X) {
		next.X = arena.OppositeX(next.X)
		next.Y = line.YAt(next.X)
	}
	return next
}

// randomCoordinate draws a uniform integer pixel coordinate in [min, max].
func randomCoordinate(rng *rand.Rand, min, max float64) float64 {
	span := int(max - min)
	if span <= 0 {
		return min
	}
	return min + float64(rng.IntN(span+1))
}
