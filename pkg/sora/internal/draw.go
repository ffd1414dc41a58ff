package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// roundedInset returns how far the line at offset i (of length lines) is
// pulled in by corners of the given radius.
func roundedInset(i, length, radius int32) int32 {
	r := min(radius, length/2)
	if r <= 0 || i < 0 || i >= length {
		return 0
	}

	var d float64
	switch {
	case i < r:
		d = float64(r-i) - 0.5
	case i >= length-r:
		d = float64(i-(length-r)) + 0.5
	default:
		return 0
	}

	rf := float64(r)
	return r - int32(math.Round(math.Sqrt(rf*rf-d*d)))
}

func clampRadius(rect sdl.Rect, radius int32) int32 {
	return max(0, min(radius, rect.W/2, rect.H/2))
}

func setColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// FillRoundedRect fills rect with a solid color and rounded corners.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	FillRoundedGradient(renderer, rect, radius, []sdl.Color{color}, false)
}

// FillCircle fills a circle centered on (cx, cy).
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32, color sdl.Color) {
	FillRoundedRect(renderer, sdl.Rect{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}, radius, color)
}

// FillRoundedGradient fills rect with a gradient running left to right when
// horizontal is set and top to bottom otherwise.
func FillRoundedGradient(renderer *sdl.Renderer, rect sdl.Rect, radius int32, stops []sdl.Color, horizontal bool) {
	if rect.W <= 0 || rect.H <= 0 || len(stops) == 0 {
		return
	}
	radius = clampRadius(rect, radius)

	if horizontal {
		for x := int32(0); x < rect.W; x++ {
			inset := roundedInset(x, rect.W, radius)
			setColor(renderer, GradientAt(stops, float64(x)/float64(max(rect.W-1, 1))))
			renderer.FillRect(&sdl.Rect{X: rect.X + x, Y: rect.Y + inset, W: 1, H: rect.H - 2*inset})
		}
		return
	}

	for y := int32(0); y < rect.H; y++ {
		inset := roundedInset(y, rect.H, radius)
		setColor(renderer, GradientAt(stops, float64(y)/float64(max(rect.H-1, 1))))
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + y, W: rect.W - 2*inset, H: 1})
	}
}

// StrokeRoundedRect draws a rounded outline of the given width inside rect.
// No pixel is drawn twice, so translucent colors blend evenly.
func StrokeRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius, width int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 || width <= 0 {
		return
	}
	radius = clampRadius(rect, radius)
	setColor(renderer, color)

	inner := sdl.Rect{X: rect.X + width, Y: rect.Y + width, W: rect.W - 2*width, H: rect.H - 2*width}
	innerRadius := max(radius-width, 0)

	for y := int32(0); y < rect.H; y++ {
		outer := roundedInset(y, rect.H, radius)
		iy := y - width
		if inner.W <= 0 || inner.H <= 0 || iy < 0 || iy >= inner.H {
			renderer.FillRect(&sdl.Rect{X: rect.X + outer, Y: rect.Y + y, W: rect.W - 2*outer, H: 1})
			continue
		}

		in := width + roundedInset(iy, inner.H, innerRadius)
		if in <= outer {
			continue
		}
		renderer.FillRect(&sdl.Rect{X: rect.X + outer, Y: rect.Y + y, W: in - outer, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + rect.W - in, Y: rect.Y + y, W: in - outer, H: 1})
	}
}

// ScaleRect scales rect around its center.
func ScaleRect(rect sdl.Rect, scale float64) sdl.Rect {
	w := int32(math.Round(float64(rect.W) * scale))
	h := int32(math.Round(float64(rect.H) * scale))
	return sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	}
}
