package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	got := HexToColor(0x6366F1)
	want := sdl.Color{R: 0x63, G: 0x66, B: 0xF1, A: 255}
	if got != want {
		t.Errorf("HexToColor = %+v, want %+v", got, want)
	}
}

func TestHexToColorAlpha(t *testing.T) {
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{0.1, 26},
		{0.9, 230},
		{1, 255},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if got := HexToColorAlpha(0xFFFFFF, tt.opacity).A; got != tt.want {
			t.Errorf("opacity %v: alpha %d, want %d", tt.opacity, got, tt.want)
		}
	}
}

func TestGradientAt(t *testing.T) {
	black := sdl.Color{A: 255}
	white := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	red := sdl.Color{R: 255, A: 255}
	stops := []sdl.Color{black, white, red}

	tests := []struct {
		name string
		t    float64
		want sdl.Color
	}{
		{"start", 0, black},
		{"middle stop", 0.5, white},
		{"end", 1, red},
		{"past end", 3, red},
		{"quarter", 0.25, sdl.Color{R: 128, G: 128, B: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientAt(stops, tt.t); got != tt.want {
				t.Errorf("GradientAt(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}

	if got := GradientAt(nil, 0.5); got != (sdl.Color{}) {
		t.Errorf("empty gradient = %+v", got)
	}
	if got := GradientAt([]sdl.Color{red}, 0.7); got != red {
		t.Errorf("single stop = %+v", got)
	}
}

func TestColorToHex(t *testing.T) {
	if got := ColorToHex(HexToColor(0x9CA3AF)); got != "#9CA3AF" {
		t.Errorf("ColorToHex = %q", got)
	}
}
