package internal

import (
	"testing"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestRasterizeEveryIcon(t *testing.T) {
	white := HexToColor(0xFFFFFF)
	for name := range constants.IconSVG {
		img, err := RasterizeIcon(name, 48, white)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
			t.Errorf("%s: bounds %v", name, b)
		}

		painted := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				painted++
			}
		}
		if painted == 0 {
			t.Errorf("%s: nothing drawn", name)
		}
	}
}

func TestRasterizeIconColorAndShape(t *testing.T) {
	color := sdl.Color{R: 0x63, G: 0x66, B: 0xF1, A: 255}
	img, err := RasterizeIcon(constants.IconHome, 24, color)
	if err != nil {
		t.Fatal(err)
	}

	inside := img.NRGBAAt(7, 14)
	if inside.A != 255 || inside.R != color.R || inside.G != color.G || inside.B != color.B {
		t.Errorf("wall pixel = %+v, want opaque %+v", inside, color)
	}
	if corner := img.NRGBAAt(0, 0); corner.A != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", corner.A)
	}
	if door := img.NRGBAAt(12, 19); door.A != 0 {
		t.Errorf("door pixel alpha = %d, want 0", door.A)
	}
}

func TestRasterizeIconGearHole(t *testing.T) {
	img, err := RasterizeIcon(constants.IconSettings, 24, HexToColor(0xFFFFFF))
	if err != nil {
		t.Fatal(err)
	}
	if hole := img.NRGBAAt(12, 12); hole.A != 0 {
		t.Errorf("gear center alpha = %d, want 0", hole.A)
	}
	if ring := img.NRGBAAt(12, 6); ring.A == 0 {
		t.Error("gear ring not drawn")
	}
}

func TestRasterizeIconOpacity(t *testing.T) {
	img, err := RasterizeIcon(constants.IconHome, 24, HexToColorAlpha(0xFFFFFF, 0.5))
	if err != nil {
		t.Fatal(err)
	}
	a := img.NRGBAAt(7, 14).A
	if a < 120 || a > 135 {
		t.Errorf("half-opacity alpha = %d", a)
	}
}

func TestRasterizeIconErrors(t *testing.T) {
	if _, err := RasterizeIcon("rocket", 24, sdl.Color{}); err == nil {
		t.Error("unknown icon accepted")
	}
	if _, err := RasterizeIcon(constants.IconHome, 0, sdl.Color{}); err == nil {
		t.Error("zero size accepted")
	}
}
