package internal

import (
	"strings"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// TextSize measures text without rendering it.
func TextSize(font *ttf.Font, text string) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// alignX returns the left edge for a box of width w anchored at x.
func alignX(x, w int32, align constants.TextAlign) int32 {
	switch align {
	case constants.TextAlignCenter:
		return x - w/2
	case constants.TextAlignRight:
		return x - w
	default:
		return x
	}
}

// RenderText draws a single line anchored at (x, y) and returns its size.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32, align constants.TextAlign) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return 0, 0
	}
	defer surface.Free()

	return blit(renderer, surface, x, y, align)
}

// RenderMultilineText draws text wrapped at maxWidth pixels.
func RenderMultilineText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y, maxWidth int32, align constants.TextAlign) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8BlendedWrapped(text, color, int(maxWidth))
	if err != nil {
		GetInternalLogger().Error("Failed to render wrapped text", "error", err)
		return 0, 0
	}
	defer surface.Free()

	return blit(renderer, surface, x, y, align)
}

func blit(renderer *sdl.Renderer, surface *sdl.Surface, x, y int32, align constants.TextAlign) (int32, int32) {
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "error", err)
		return 0, 0
	}
	defer texture.Destroy()

	dst := sdl.Rect{X: alignX(x, surface.W, align), Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &dst)
	return surface.W, surface.H
}

// WrappedLineCount estimates how many lines text takes when wrapped at
// maxWidth, honoring explicit newlines.
func WrappedLineCount(font *ttf.Font, text string, maxWidth int32) int32 {
	return wrappedLineCount(func(s string) int32 { w, _ := TextSize(font, s); return w }, text, maxWidth)
}

func wrappedLineCount(measure func(string) int32, text string, maxWidth int32) int32 {
	if text == "" {
		return 0
	}
	maxWidth = max(maxWidth, 1)
	var total int32
	for _, line := range strings.Split(text, "\n") {
		w := measure(line)
		total += max(1, (w+maxWidth-1)/maxWidth)
	}
	return total
}
