package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestRoundedInsetCorners(t *testing.T) {
	tests := []struct {
		i, length, radius int32
		want              int32
	}{
		{0, 56, 28, 23},
		{27, 56, 28, 0},
		{28, 56, 28, 0},
		{55, 56, 28, 23},
		{50, 100, 10, 0},
		{0, 40, 0, 0},
		{-1, 40, 10, 0},
		{40, 40, 10, 0},
	}
	for _, tt := range tests {
		if got := roundedInset(tt.i, tt.length, tt.radius); got != tt.want {
			t.Errorf("roundedInset(%d, %d, %d) = %d, want %d", tt.i, tt.length, tt.radius, got, tt.want)
		}
	}
}

func TestRoundedInsetSymmetricAndMonotonic(t *testing.T) {
	const length, radius = 80, 24
	for i := int32(0); i < length; i++ {
		if a, b := roundedInset(i, length, radius), roundedInset(length-1-i, length, radius); a != b {
			t.Fatalf("row %d inset %d, mirrored row inset %d", i, a, b)
		}
	}
	for i := int32(1); i < radius; i++ {
		if roundedInset(i, length, radius) > roundedInset(i-1, length, radius) {
			t.Fatalf("inset grows at row %d", i)
		}
	}
}

func TestRoundedInsetClampsRadiusToHalfLength(t *testing.T) {
	if got, want := roundedInset(0, 20, 100), roundedInset(0, 20, 10); got != want {
		t.Errorf("oversized radius inset = %d, want %d", got, want)
	}
}

func TestScaleRect(t *testing.T) {
	got := ScaleRect(sdl.Rect{X: 0, Y: 0, W: 100, H: 50}, 0.5)
	want := sdl.Rect{X: 25, Y: 12, W: 50, H: 25}
	if got != want {
		t.Errorf("ScaleRect = %+v, want %+v", got, want)
	}

	if got := ScaleRect(want, 1); got != want {
		t.Errorf("unit scale changed rect: %+v", got)
	}
}

func TestPaddingInset(t *testing.T) {
	p := UniformPadding(10)
	got := p.Inset(sdl.Rect{X: 5, Y: 5, W: 100, H: 15})
	want := sdl.Rect{X: 15, Y: 15, W: 80, H: 0}
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
}
