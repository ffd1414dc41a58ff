package sora

import (
	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// FooterHelpItem is one "button: action" hint shown along the bottom edge.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// renderFooter draws hints in a row ending at the right margin, bottom aligned.
func renderFooter(renderer *sdl.Renderer, items []FooterHelpItem, bottom int32) {
	if len(items) == 0 {
		return
	}
	theme := internal.GetTheme()
	font := internal.GetFonts().Small
	window := internal.GetWindow()

	const gap, pillPad int32 = 16, 6
	x := window.GetWidth() - 20
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		tw, th := internal.TextSize(font, item.HelpText)
		y := bottom - th
		internal.RenderText(renderer, font, item.HelpText, theme.HintColor, x, y, constants.TextAlignRight)
		x -= tw + pillPad

		bw, bh := internal.TextSize(font, item.ButtonName)
		pill := sdl.Rect{X: x - bw - 2*pillPad, Y: y - (bh-th)/2 - 2, W: bw + 2*pillPad, H: bh + 4}
		internal.FillRoundedRect(renderer, pill, pill.H/2, theme.InactiveFillColor)
		internal.RenderText(renderer, font, item.ButtonName, theme.TextColor, pill.X+pillPad, pill.Y+2, constants.TextAlignLeft)
		x = pill.X - gap
	}
}
