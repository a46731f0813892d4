// pkg/render/terminal.go
package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asterdodge/pkg/physics"
	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

// World units per terminal cell. Cells are roughly twice as tall as
// they are wide, so the vertical scale doubles to keep shapes square.
const (
	cellUnitsX = 8.0
	cellUnitsY = 16.0
)

// TerminalRenderer draws scene snapshots onto a tcell screen. It also
// serves as the scene's bounds provider: the arena tracks the live
// terminal size, so resizing the window resizes the playfield.
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer wraps an initialized tcell screen. The caller
// owns screen setup so tests can pass a simulation screen.
func NewTerminalRenderer(screen tcell.Screen) (*TerminalRenderer, error) {
	if screen == nil {
		return nil, errors.New("render: nil screen")
	}
	return &TerminalRenderer{screen: screen}, nil
}

// Bounds implements scene.BoundsProvider. One HUD row at the top is
// reserved and excluded from the playfield.
func (r *TerminalRenderer) Bounds() physics.Rect {
	w, h := r.screen.Size()
	if h > 1 {
		h--
	}
	return physics.NewRectFromEdges(0, 0, float64(w)*cellUnitsX, float64(h)*cellUnitsY)
}

// Render implements Renderer.
func (r *TerminalRenderer) Render(snap scene.Snapshot) error {
	r.screen.Clear()

	r.drawHUD(snap)

	for _, a := range snap.Asteroids {
		r.drawPose(snap.Arena, a, '*', tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	r.drawPose(snap.Arena, snap.Ship, shipGlyph(snap.Ship.Rotation), tcell.StyleDefault.Foreground(tcell.ColorGreen))
	r.drawExplosion(snap.Arena, snap.Explosion)

	r.screen.Show()
	return nil
}

// Close implements Renderer.
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}

func (r *TerminalRenderer) drawHUD(snap scene.Snapshot) {
	tracking := "tracking"
	if !snap.Tracked {
		tracking = "paused"
	}
	line := fmt.Sprintf(" hits: %d  survival: %s  [%s]  %s",
		snap.CollisionCount,
		snap.SurvivalTime.Truncate(1e8),
		tracking,
		snap.State,
	)
	r.drawText(0, 0, line, tcell.StyleDefault.Reverse(true))
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// drawPose maps a center-relative pose to a terminal cell below the
// HUD row and draws its glyph there.
func (r *TerminalRenderer) drawPose(arena physics.Rect, pose scene.SpritePose, glyph rune, style tcell.Style) {
	if !pose.Visible {
		return
	}
	x, y := r.cellFor(arena, pose.Position)
	w, h := r.screen.Size()
	if x < 0 || x >= w || y < 1 || y >= h {
		return
	}
	r.screen.SetContent(x, y, glyph, nil, style)
}

// drawExplosion draws a diamond of '#' whose radius follows the
// animation scale.
func (r *TerminalRenderer) drawExplosion(arena physics.Rect, pose scene.SpritePose) {
	if !pose.Visible {
		return
	}
	cx, cy := r.cellFor(arena, pose.Position)
	w, h := r.screen.Size()
	radius := int(pose.ScaleX * 2)
	if radius < 1 {
		radius = 1
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if abs(dx)+abs(dy) > radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= w || y < 1 || y >= h {
				continue
			}
			r.screen.SetContent(x, y, '#', nil, style)
		}
	}
}

func (r *TerminalRenderer) cellFor(arena physics.Rect, pos physics.Vector2D) (int, int) {
	x := int((pos.X + arena.Width/2) / cellUnitsX)
	y := int((pos.Y+arena.Height/2)/cellUnitsY) + 1
	return x, y
}

// shipGlyph picks the arrow nearest the ship's heading.
func shipGlyph(rotation float64) rune {
	switch {
	case rotation < 45 || rotation >= 315:
		return '^'
	case rotation < 135:
		return '>'
	case rotation < 225:
		return 'v'
	default:
		return '<'
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
