// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

// spriteEntity is one renderable ECS entity with its components kept
// at hand so snapshots can update them in place.
type spriteEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
	// texturePx is the generated texture's edge length, used to scale
	// the drawable to the sprite's world size.
	texturePx float32
}

// EngoRenderer mirrors scene snapshots into the Engo render system.
// Entities are created once during Initialize and repositioned every
// frame; hidden sprites stay in the world with rendering switched off.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	assets       *AssetManager

	ship      *spriteEntity
	asteroids []*spriteEntity
	explosion *spriteEntity
}

// NewEngoRenderer creates a new Engo-based renderer.
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:  world,
		assets: NewAssetManager(),
	}
}

// Initialize loads assets and creates the fixed entity set for the
// given asteroid count.
func (r *EngoRenderer) Initialize(asteroidCount int) error {
	for _, system := range r.world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			r.renderSystem = rs
		}
	}
	if r.renderSystem == nil {
		r.renderSystem = &common.RenderSystem{}
		r.world.AddSystem(r.renderSystem)
	}

	if err := r.assets.LoadAssets(); err != nil {
		return err
	}

	r.ship = r.createEntity(r.assets.GetShipSprite(), 16, color.RGBA{0, 255, 0, 255})
	r.explosion = r.createEntity(r.assets.GetExplosionSprite(), 16, color.RGBA{255, 80, 0, 255})
	r.asteroids = make([]*spriteEntity, asteroidCount)
	for i := range r.asteroids {
		r.asteroids[i] = r.createEntity(r.assets.GetAsteroidSprite(), 12, color.RGBA{160, 160, 160, 255})
	}
	return nil
}

func (r *EngoRenderer) createEntity(drawable common.Drawable, texturePx float32, tint color.Color) *spriteEntity {
	e := &spriteEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: drawable,
			Color:    tint,
			Hidden:   true,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: 0, Y: 0},
		},
		texturePx: texturePx,
	}
	r.renderSystem.Add(&e.basic, &e.render, &e.space)
	return e
}

// Apply updates every entity from one snapshot.
func (r *EngoRenderer) Apply(snap scene.Snapshot) {
	r.applyPose(r.ship, snap, snap.Ship)
	r.applyPose(r.explosion, snap, snap.Explosion)
	for i, e := range r.asteroids {
		if i >= len(snap.Asteroids) {
			break
		}
		r.applyPose(e, snap, snap.Asteroids[i])
	}
}

// applyPose maps a center-relative pose onto an entity's screen-space
// components. Engo positions are the sprite's top-left corner.
func (r *EngoRenderer) applyPose(e *spriteEntity, snap scene.Snapshot, pose scene.SpritePose) {
	e.render.Hidden = !pose.Visible
	if !pose.Visible {
		return
	}

	width := float32(pose.Size.X * pose.ScaleX)
	height := float32(pose.Size.Y * pose.ScaleY)
	centerX := float32(snap.Arena.Width/2 + pose.Position.X)
	centerY := float32(snap.Arena.Height/2 + pose.Position.Y)

	e.space.Position = engo.Point{
		X: centerX - width/2,
		Y: centerY - height/2,
	}
	e.space.Width = width
	e.space.Height = height
	e.space.Rotation = float32(pose.Rotation)

	if e.texturePx > 0 {
		e.render.Scale = engo.Point{
			X: width / e.texturePx,
			Y: height / e.texturePx,
		}
	}
}
