// pkg/render/terminal_test.go
package render

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func TestTerminalRenderer_Bounds(t *testing.T) {
	screen := simScreen(t)
	r, err := NewTerminalRenderer(screen)
	if err != nil {
		t.Fatalf("NewTerminalRenderer: %v", err)
	}

	arena := r.Bounds()
	// One HUD row is excluded from the 80x24 surface.
	if arena.Width != 80*cellUnitsX {
		t.Errorf("arena width = %v, want %v", arena.Width, 80*cellUnitsX)
	}
	if arena.Height != 23*cellUnitsY {
		t.Errorf("arena height = %v, want %v", arena.Height, 23*cellUnitsY)
	}
}

func TestTerminalRenderer_RendersShipAndHUD(t *testing.T) {
	screen := simScreen(t)
	r, err := NewTerminalRenderer(screen)
	if err != nil {
		t.Fatalf("NewTerminalRenderer: %v", err)
	}

	arena := r.Bounds()
	snap := scene.Snapshot{
		State:        scene.StateActive,
		Tracked:      true,
		SurvivalTime: 3 * time.Second,
		Arena:        arena,
		Ship: scene.SpritePose{
			ScaleX: 1, ScaleY: 1, Visible: true,
		},
	}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Ship at the arena center faces up.
	cx := int((arena.Width / 2) / cellUnitsX)
	cy := int((arena.Height/2)/cellUnitsY) + 1
	if got := cellRune(t, screen, cx, cy); got != '^' {
		t.Errorf("center cell = %q, want '^'", got)
	}

	// HUD row starts with the hit counter.
	if got := cellRune(t, screen, 1, 0); got != 'h' {
		t.Errorf("HUD cell = %q, want 'h'", got)
	}
}

func TestTerminalRenderer_HiddenSpritesNotDrawn(t *testing.T) {
	screen := simScreen(t)
	r, err := NewTerminalRenderer(screen)
	if err != nil {
		t.Fatalf("NewTerminalRenderer: %v", err)
	}

	arena := r.Bounds()
	snap := scene.Snapshot{
		Arena: arena,
		Ship: scene.SpritePose{
			ScaleX: 1, ScaleY: 1, Visible: false,
		},
	}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render: %v", err)
	}

	cx := int((arena.Width / 2) / cellUnitsX)
	cy := int((arena.Height/2)/cellUnitsY) + 1
	if got := cellRune(t, screen, cx, cy); got != ' ' {
		t.Errorf("center cell = %q for hidden ship, want blank", got)
	}
}

func TestTerminalRenderer_ExplosionGrowsWithScale(t *testing.T) {
	screen := simScreen(t)
	r, err := NewTerminalRenderer(screen)
	if err != nil {
		t.Fatalf("NewTerminalRenderer: %v", err)
	}

	arena := r.Bounds()
	snap := scene.Snapshot{
		State: scene.StateExploding,
		Arena: arena,
		Explosion: scene.SpritePose{
			ScaleX: 2, ScaleY: 2, Visible: true,
		},
	}
	if err := r.Render(snap); err != nil {
		t.Fatalf("Render: %v", err)
	}

	cx := int((arena.Width / 2) / cellUnitsX)
	cy := int((arena.Height/2)/cellUnitsY) + 1
	for _, offset := range []struct{ dx, dy int }{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if got := cellRune(t, screen, cx+offset.dx, cy+offset.dy); got != '#' {
			t.Errorf("cell (%d,%d) = %q, want '#'", cx+offset.dx, cy+offset.dy, got)
		}
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '^'},
		{44, '^'},
		{90, '>'},
		{180, 'v'},
		{270, '<'},
		{315, '^'},
	}
	for _, tt := range tests {
		if got := shipGlyph(tt.rotation); got != tt.want {
			t.Errorf("shipGlyph(%v) = %q, want %q", tt.rotation, got, tt.want)
		}
	}
}

func TestKeyboardProvider_SteeringRamp(t *testing.T) {
	p := NewKeyboardProvider(nil)

	d, err := p.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !d.Tracked || !d.HandClosed || d.SteerProgress != 0.5 {
		t.Fatalf("initial detection = %+v, want tracked centered hand-closed", d)
	}

	left := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	for i := 0; i < 3; i++ {
		p.HandleEvent(left)
	}
	d, _ = p.Poll()
	if math.Abs(d.SteerProgress-0.35) > 1e-9 {
		t.Errorf("progress after 3 lefts = %v, want 0.35", d.SteerProgress)
	}
	if !d.TurnLeft || d.TurnRight || d.HandClosed {
		t.Errorf("detection %+v, want turn-left context only", d)
	}

	// Ramp clamps at zero.
	for i := 0; i < 20; i++ {
		p.HandleEvent(left)
	}
	d, _ = p.Poll()
	if d.SteerProgress != 0 {
		t.Errorf("progress after many lefts = %v, want clamped 0", d.SteerProgress)
	}

	p.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	d, _ = p.Poll()
	if d.SteerProgress != 0.5 || !d.HandClosed {
		t.Errorf("detection after recenter = %+v, want centered hand-closed", d)
	}

	p.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	d, _ = p.Poll()
	if math.Abs(d.SteerProgress-0.55) > 1e-9 || !d.TurnRight {
		t.Errorf("detection after right = %+v, want 0.55 turn-right", d)
	}
}

func TestKeyboardProvider_Toggles(t *testing.T) {
	p := NewKeyboardProvider(nil)

	p.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	d, _ := p.Poll()
	if d.TurnLeft || d.TurnRight || d.HandClosed {
		t.Errorf("detection %+v after disengage, want no gesture context", d)
	}

	p.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	d, _ = p.Poll()
	if d.Tracked {
		t.Error("Tracked = true after tracking toggle")
	}
}

func TestKeyboardProvider_Quit(t *testing.T) {
	quits := 0
	p := NewKeyboardProvider(func() { quits++ })

	p.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	p.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if quits != 2 {
		t.Errorf("quit callback fired %d times, want 2", quits)
	}
}

var _ scene.BoundsProvider = (*TerminalRenderer)(nil)
