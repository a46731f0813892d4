// pkg/scene/snapshot.go
package scene

import (
	"time"

	"github.com/opd-ai/go-asterdodge/pkg/entity"
	"github.com/opd-ai/go-asterdodge/pkg/physics"
)

// SpritePose is an immutable copy of a sprite's renderable state.
type SpritePose struct {
	Position physics.Vector2D
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Size     physics.Vector2D
	Visible  bool
}

// Snapshot is a consistent copy of the scene taken under the scene
// lock. Renderers and health checks read snapshots instead of live
// sprites so the tick loop never races with drawing.
type Snapshot struct {
	Tick           uint64
	State          State
	Tracked        bool
	CollisionCount int
	SurvivalTime   time.Duration
	Arena          physics.Rect
	Ship           SpritePose
	Asteroids      []SpritePose
	Explosion      SpritePose
}

// Snapshot captures the current scene state.
func (s *Scene) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Tick:           s.tick,
		State:          s.state,
		Tracked:        s.tracked,
		CollisionCount: s.collisionCount,
		SurvivalTime:   s.stopwatch.Elapsed(),
		Arena:          s.bounds.Bounds(),
		Ship:           poseOf(s.ship),
		Explosion:      poseOf(s.explosion),
		Asteroids:      make([]SpritePose, len(s.asteroids)),
	}
	for i, a := range s.asteroids {
		snap.Asteroids[i] = poseOf(a)
	}
	return snap
}

func poseOf(sp *entity.Sprite) SpritePose {
	return SpritePose{
		Position: sp.Position,
		Rotation: sp.Rotation,
		ScaleX:   sp.ScaleX,
		ScaleY:   sp.ScaleY,
		Size:     sp.Size,
		Visible:  sp.Visible,
	}
}
