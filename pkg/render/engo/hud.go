// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

// HUDSystem draws the status line: collision count, survival time, and
// tracking state. It owns a single text entity that is rewritten each
// frame from the latest snapshot.
type HUDSystem struct {
	font *common.Font

	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent

	lastText string

	hudColor    color.Color
	pausedColor color.Color
}

// NewHUDSystem creates a new HUD system.
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{
		hudColor:    color.RGBA{255, 255, 255, 255},
		pausedColor: color.RGBA{255, 200, 0, 255},
	}
}

// Initialize loads the HUD font and creates the text entity. The font
// must have been preloaded during scene Preload.
func (hud *HUDSystem) Initialize(renderSystem *common.RenderSystem, fontURL string) error {
	hud.font = &common.Font{
		URL:  fontURL,
		FG:   hud.hudColor,
		Size: 18,
	}
	if err := hud.font.CreatePreloaded(); err != nil {
		return err
	}

	hud.basic = ecs.NewBasic()
	hud.render = common.RenderComponent{
		Drawable: common.Text{Font: hud.font, Text: ""},
		Color:    hud.hudColor,
	}
	hud.space = common.SpaceComponent{
		Position: engo.Point{X: 10, Y: 10},
	}
	hud.render.SetShader(common.HUDShader)
	renderSystem.Add(&hud.basic, &hud.render, &hud.space)
	return nil
}

// Add satisfies the ecs.System interface.
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
}

// Update satisfies the ecs.System interface. The text itself is driven
// by ApplySnapshot from the demo system.
func (hud *HUDSystem) Update(dt float32) {
}

// ApplySnapshot rewrites the status line from a snapshot.
func (hud *HUDSystem) ApplySnapshot(snap scene.Snapshot) {
	if hud.font == nil {
		return
	}

	tracking := "tracking"
	tint := hud.hudColor
	if !snap.Tracked {
		tracking = "paused"
		tint = hud.pausedColor
	}
	text := fmt.Sprintf("hits: %d   survival: %s   [%s]",
		snap.CollisionCount,
		snap.SurvivalTime.Truncate(1e8),
		tracking,
	)
	if text == hud.lastText {
		return
	}
	hud.lastText = text
	hud.render.Drawable = common.Text{Font: hud.font, Text: text}
	hud.render.Color = tint
}
