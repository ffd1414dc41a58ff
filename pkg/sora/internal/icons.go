package internal

import (
	"fmt"
	"image"
	"image/draw"
	"strings"
	"unsafe"

	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

var iconCache = NewTextureCacheWithSize(24)

// ColorToHex formats the RGB part of a color as #RRGGBB.
func ColorToHex(c sdl.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RasterizeIcon renders the named icon into a size x size image with
// straight (non-premultiplied) alpha. The color's alpha becomes the icon opacity.
func RasterizeIcon(name string, size int, color sdl.Color) (*image.NRGBA, error) {
	src, ok := constants.IconSVG[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("icon %q: invalid size %d", name, size)
	}

	src = strings.ReplaceAll(src, constants.IconFillPlaceholder, ColorToHex(color))
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse icon %q: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	bounds := image.Rect(0, 0, size, size)
	rgba := image.NewRGBA(bounds)
	scanner := rasterx.NewScannerGV(size, size, rgba, bounds)
	icon.Draw(rasterx.NewDasher(size, size, scanner), float64(color.A)/255)

	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, rgba, image.Point{}, draw.Src)
	return out, nil
}

// IconTexture returns a cached texture for the icon at the given size and color.
// The texture is owned by the cache; callers must not destroy it.
func IconTexture(renderer *sdl.Renderer, name string, size int32, color sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s/%d/%s%02X", name, size, ColorToHex(color), color.A)
	if texture := iconCache.Get(key); texture != nil {
		return texture, nil
	}

	img, err := RasterizeIcon(name, int(size), color)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		size, size, 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("icon %q surface: %w", name, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon %q texture: %w", name, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	iconCache.Set(key, texture)
	return texture, nil
}

// DestroyIconCache releases every cached icon texture.
func DestroyIconCache() {
	iconCache.Destroy()
}
