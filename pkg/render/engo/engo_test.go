// pkg/render/engo/engo_test.go
package engo

import (
	"image/color"
	"testing"
)

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager()

	if am == nil {
		t.Fatal("NewAssetManager() returned nil")
	}
	if am.GetShipSprite() != nil {
		t.Error("ship sprite should be nil before LoadAssets")
	}
	if am.GetAsteroidSprite() != nil {
		t.Error("asteroid sprite should be nil before LoadAssets")
	}
	if am.GetExplosionSprite() != nil {
		t.Error("explosion sprite should be nil before LoadAssets")
	}
}

// LoadAssets needs an OpenGL context for texture upload, so only the
// image-building halves are covered here.

func TestAssetManager_CreateBaseImage(t *testing.T) {
	am := NewAssetManager()
	img := am.createBaseImage(8, 4)

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 4 {
		t.Errorf("image size = %dx%d, want 8x4", bounds.Dx(), bounds.Dy())
	}

	// Fully transparent everywhere.
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				t.Fatalf("pixel (%d,%d) not transparent", x, y)
			}
		}
	}
}

func TestAssetManager_DrawPatternOnImage(t *testing.T) {
	am := NewAssetManager()
	img := am.createBaseImage(4, 4)

	pattern := [][]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	am.drawPatternOnImage(img, pattern, 4, 4)

	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := img.RGBAAt(x, y)
			if x == y && got != white {
				t.Errorf("pixel (%d,%d) = %v, want white", x, y, got)
			}
			if x != y && got.A != 0 {
				t.Errorf("pixel (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestAssetManager_DrawPatternClipsToImage(t *testing.T) {
	am := NewAssetManager()
	img := am.createBaseImage(2, 2)

	// Pattern larger than the image must not panic.
	pattern := [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
	am.drawPatternOnImage(img, pattern, 2, 2)

	if got := img.RGBAAt(1, 1); got.A == 0 {
		t.Error("in-bounds pixel not drawn")
	}
}

func TestInputSystem_PollContexts(t *testing.T) {
	is := NewInputSystem(nil)

	d, err := is.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !d.Tracked || !d.HandClosed || d.SteerProgress != 0.5 {
		t.Errorf("initial detection = %+v, want tracked centered hand-closed", d)
	}

	is.progress = 0.2
	d, _ = is.Poll()
	if !d.TurnLeft || d.TurnRight || d.HandClosed {
		t.Errorf("detection %+v at progress 0.2, want turn-left context", d)
	}

	is.progress = 0.8
	d, _ = is.Poll()
	if !d.TurnRight || d.TurnLeft {
		t.Errorf("detection %+v at progress 0.8, want turn-right context", d)
	}

	is.engaged = false
	d, _ = is.Poll()
	if d.TurnLeft || d.TurnRight || d.HandClosed {
		t.Errorf("detection %+v while disengaged, want no gesture context", d)
	}

	is.tracked = false
	d, _ = is.Poll()
	if d.Tracked {
		t.Error("Tracked = true after tracking disabled")
	}
}

func TestGameScene_Type(t *testing.T) {
	gs := NewGameScene(nil, 5, nil)
	if gs.Type() != "AsterDodgeScene" {
		t.Errorf("Type() = %q", gs.Type())
	}
}
