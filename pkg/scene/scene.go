// pkg/scene/scene.go
package scene

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/opd-ai/go-asterdodge/pkg/config"
	"github.com/opd-ai/go-asterdodge/pkg/entity"
	"github.com/opd-ai/go-asterdodge/pkg/event"
	"github.com/opd-ai/go-asterdodge/pkg/gesture"
	"github.com/opd-ai/go-asterdodge/pkg/physics"
)

// State identifies the phase of the scene state machine.
type State int

const (
	// StateActive is normal play: the ship steers, asteroids drift,
	// collisions are checked every tick.
	StateActive State = iota
	// StateExploding plays the explosion animation. All other motion
	// is gated until the animation finishes and the scene resets.
	StateExploding
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// BoundsProvider supplies the current arena rectangle. The scene
// queries it every tick so a resizable window stays authoritative.
type BoundsProvider interface {
	Bounds() physics.Rect
}

// BoundsFunc adapts a plain function to BoundsProvider.
type BoundsFunc func() physics.Rect

// Bounds implements BoundsProvider.
func (f BoundsFunc) Bounds() physics.Rect {
	return f()
}

// Option customizes scene construction.
type Option func(*Scene)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scene) {
		s.now = now
	}
}

// WithRand replaces the random source used for wrap re-entry and
// asteroid scattering.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scene) {
		s.rng = rng
	}
}

// Scene owns the demo's sprites and drives the per-tick simulation:
// steering, asteroid drift, collision detection, and the explosion
// animation with its timed reset.
type Scene struct {
	mu     sync.RWMutex
	config *config.Config
	bounds BoundsProvider
	bus    *event.Bus
	rng    *rand.Rand
	now    func() time.Time

	ship      *entity.Sprite
	asteroids []*entity.Sprite
	explosion *entity.Sprite

	state          State
	tracked        bool
	collisionCount int
	stopwatch      *Stopwatch
	explosionStart time.Time
	tick           uint64
}

// NewScene builds a scene from configuration. The ship starts at the
// arena center, asteroids are scattered at random positions, and the
// explosion sprite is created hidden. Returns an error when the
// configuration or the bounds provider is missing or invalid.
func NewScene(cfg *config.Config, bounds BoundsProvider, opts ...Option) (*Scene, error) {
	if cfg == nil {
		return nil, errors.New("scene: nil config")
	}
	if bounds == nil {
		return nil, errors.New("scene: nil bounds provider")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		config: cfg,
		bounds: bounds,
		bus:    event.NewEventBus(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Demo.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
	s.stopwatch = newStopwatch(s.now)

	s.ship = entity.NewSprite(
		physics.Vector2D{X: cfg.Ship.Width, Y: cfg.Ship.Height},
		cfg.Ship.Speed,
	)

	s.asteroids = make([]*entity.Sprite, cfg.Asteroids.Count)
	for i := range s.asteroids {
		s.asteroids[i] = entity.NewSprite(
			physics.Vector2D{X: cfg.Asteroids.Width, Y: cfg.Asteroids.Height},
			cfg.Asteroids.Speed,
		)
	}
	s.scatterAsteroids()

	s.explosion = entity.NewSprite(
		physics.Vector2D{X: cfg.Explosion.Width, Y: cfg.Explosion.Height},
		0,
	)
	s.explosion.Visible = false

	return s, nil
}

// Events returns the scene's event bus. Subscribers receive collision,
// explosion, tracking, and reset notifications.
func (s *Scene) Events() *event.Bus {
	return s.bus
}

// Update advances the simulation by one tick under the given gesture
// result. Tick order: tracking bookkeeping, then either the explosion
// animation or steering, asteroid drift, collision check, and ship
// movement.
func (s *Scene) Update(res gesture.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arena := s.bounds.Bounds()
	s.tick++
	s.updateTracking(res.IsTracked)

	if s.state == StateExploding {
		s.advanceExplosion()
		return
	}

	cmd := gesture.SteerCommand(res.KeepStraight, res.Progress)
	s.ship.Rotation = physics.NormalizeDegrees(s.ship.Rotation + cmd.RotationDelta)

	for _, a := range s.asteroids {
		a.Advance(arena, entity.Wrap, s.rng)
	}

	if s.checkCollision(arena) {
		return
	}

	if cmd.Move {
		s.ship.Advance(arena, entity.Reflect, s.rng)
	}
}

// Reset restores the active state immediately: explosion hidden and
// rescaled, ship back at the arena center facing up, asteroids
// rescattered, survival stopwatch restarted from zero.
func (s *Scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetScene()
}

func (s *Scene) updateTracking(tracked bool) {
	if tracked != s.tracked {
		s.tracked = tracked
		s.bus.Publish(event.NewTrackingEvent(s, tracked))
	}
	// The survival stopwatch only reacts to tracking while active;
	// during an explosion it stays frozen at the collision reading.
	if s.state == StateActive {
		s.stopwatch.SetPaused(!tracked)
	}
}

func (s *Scene) checkCollision(arena physics.Rect) bool {
	shipBounds := s.ship.Bounds(arena)
	for i, a := range s.asteroids {
		if !a.Visible {
			continue
		}
		if shipBounds.Intersects(a.Bounds(arena)) {
			s.beginExplosion(i)
			return true
		}
	}
	return false
}

func (s *Scene) beginExplosion(asteroidIndex int) {
	s.collisionCount++
	survival := s.stopwatch.Elapsed()
	s.stopwatch.Stop()

	s.asteroids[asteroidIndex].Visible = false
	s.ship.Visible = false

	s.explosion.Position = s.ship.Position
	s.explosion.ScaleX = 1
	s.explosion.ScaleY = 1
	s.explosion.Rotation = 0
	s.explosion.Visible = true
	s.explosionStart = s.now()
	s.state = StateExploding

	s.bus.Publish(event.NewCollisionEvent(s, asteroidIndex, s.collisionCount, survival))
	s.bus.Publish(&event.BaseEvent{EventType: event.ExplosionStarted, Source: s})
}

func (s *Scene) advanceExplosion() {
	if s.now().Sub(s.explosionStart) < s.config.Explosion.Duration() {
		s.explosion.ScaleX += s.config.Explosion.ScaleStep
		s.explosion.ScaleY += s.config.Explosion.ScaleStep
		s.explosion.Rotation = physics.NormalizeDegrees(s.explosion.Rotation + s.config.Explosion.RotationStep)
		return
	}
	s.bus.Publish(&event.BaseEvent{EventType: event.ExplosionEnded, Source: s})
	s.resetScene()
}

func (s *Scene) resetScene() {
	s.explosion.ScaleX = 1
	s.explosion.ScaleY = 1
	s.explosion.Rotation = 0
	s.explosion.Visible = false

	s.ship.Position = physics.Vector2D{}
	s.ship.Rotation = 0
	s.ship.Visible = true

	s.scatterAsteroids()

	s.explosionStart = time.Time{}
	s.stopwatch.Start()
	s.state = StateActive
	s.bus.Publish(&event.BaseEvent{EventType: event.SceneReset, Source: s})
}

func (s *Scene) scatterAsteroids() {
	span := int(s.config.Asteroids.SpawnRange)
	for _, a := range s.asteroids {
		a.Position = physics.Vector2D{
			X: float64(s.rng.IntN(2*span+1) - span),
			Y: float64(s.rng.IntN(2*span+1) - span),
		}
		a.Rotation = float64(s.rng.IntN(360))
		a.Visible = true
	}
}
