package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}

// Inset shrinks rect by the padding. Sizes never go negative.
func (p Padding) Inset(rect sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: rect.X + p.Left,
		Y: rect.Y + p.Top,
		W: max(0, rect.W-p.Horizontal()),
		H: max(0, rect.H-p.Vertical()),
	}
}
