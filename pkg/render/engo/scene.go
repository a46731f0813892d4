// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asterdodge/pkg/input"
	"github.com/opd-ai/go-asterdodge/pkg/logging"
	"github.com/opd-ai/go-asterdodge/pkg/physics"
	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

// hudFontURL is the font asset the HUD preloads. The HUD is skipped
// when the file isn't shipped next to the binary.
const hudFontURL = "fonts/hud.ttf"

// WindowBounds is a scene.BoundsProvider over the live engo window, so
// resizing the window resizes the arena.
func WindowBounds() scene.BoundsFunc {
	return func() physics.Rect {
		return physics.NewRectFromEdges(0, 0, float64(engo.GameWidth()), float64(engo.GameHeight()))
	}
}

// GameScene is the engo scene driving the demo: it owns the ECS world
// and advances the core simulation once per frame.
type GameScene struct {
	core     *scene.Scene
	tracking *input.TrackingService
	quit     func()

	world    *ecs.World
	renderer *EngoRenderer
	inputSys *InputSystem
	hud      *HUDSystem

	asteroidCount int
	logger        *logging.Logger
}

// NewGameScene wires the core scene and tracking service into an engo
// scene. The quit callback fires on the quit button.
func NewGameScene(core *scene.Scene, asteroidCount int, quit func()) *GameScene {
	gs := &GameScene{
		core:          core,
		quit:          quit,
		asteroidCount: asteroidCount,
		logger:        logging.NewLogger(),
	}
	return gs
}

// Type returns the scene type (required by engo).
func (gs *GameScene) Type() string {
	return "AsterDodgeScene"
}

// Preload loads the HUD font if present (required by engo).
func (gs *GameScene) Preload() {
	if err := engo.Files.Load(hudFontURL); err != nil {
		gs.logger.Warn(context.Background(), "HUD font not available, status line disabled",
			"font", hudFontURL,
			"error", err.Error(),
		)
	}
}

// Setup builds the ECS world and all systems (required by engo).
func (gs *GameScene) Setup(u engo.Updater) {
	gs.world, _ = u.(*ecs.World)
	if gs.world == nil {
		gs.world = &ecs.World{}
	}

	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	gs.world.AddSystem(renderSystem)

	gs.renderer = NewEngoRenderer(gs.world)
	if err := gs.renderer.Initialize(gs.asteroidCount); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	RegisterButtons()
	gs.inputSys = NewInputSystem(gs.quit)
	gs.world.AddSystem(gs.inputSys)
	gs.tracking = input.NewTrackingService(gs.inputSys, input.DefaultTrackingConfig())

	gs.hud = NewHUDSystem()
	if err := gs.hud.Initialize(renderSystem, hudFontURL); err != nil {
		gs.logger.Warn(context.Background(), "HUD disabled", "error", err.Error())
	}
	gs.world.AddSystem(gs.hud)

	gs.world.AddSystem(&demoSystem{scene: gs})
}

// Tracking exposes the tracking service, for health checks.
func (gs *GameScene) Tracking() *input.TrackingService {
	return gs.tracking
}

// demoSystem advances the core simulation once per frame and mirrors
// the resulting snapshot into the render and HUD systems.
type demoSystem struct {
	scene *GameScene
}

// Add satisfies the ecs.System interface.
func (ds *demoSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (ds *demoSystem) Remove(basic ecs.BasicEntity) {
}

// Update runs one simulation tick.
func (ds *demoSystem) Update(dt float32) {
	gs := ds.scene

	res := gs.tracking.Next(context.Background())
	gs.core.Update(res)

	snap := gs.core.Snapshot()
	gs.renderer.Apply(snap)
	gs.hud.ApplySnapshot(snap)
}
