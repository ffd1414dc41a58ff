package sora

import (
	"github.com/soracell/sora/pkg/sora/constants"
	"github.com/soracell/sora/pkg/sora/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ContentRow is one card in a screen's list.
type ContentRow struct {
	Title    string
	Subtitle string
	Value    string // Right-aligned detail, e.g. "On" or "12.4 GB"
	Data     any    // Returned with the selection
	Static   bool   // Informational only; cannot be selected
}

// Screen layout in logical pixels.
const (
	screenMargin  int32 = 24
	headerTop     int32 = 28
	rowHeight     int32 = 72
	rowGap        int32 = 12
	rowRadius     int32 = 16
	rowTextInset  int32 = 18
	focusRingPad  int32 = 3
	headerSpacing int32 = 20
)

// rowList is a vertical, scrollable list of cards with a focus cursor.
type rowList struct {
	rows       []ContentRow
	focus      int // -1 when nothing in the list is focused
	scroll     int32
	top        int32 // viewport in window coordinates
	bottom     int32
	selectable bool // focus only lands on non-static rows
}

func newRowList(rows []ContentRow, selectable bool) rowList {
	return rowList{rows: rows, focus: -1, selectable: selectable}
}

func (l *rowList) canFocus(i int) bool {
	return i >= 0 && i < len(l.rows) && (!l.selectable || !l.rows[i].Static)
}

// first returns the first focusable row, or -1.
func (l *rowList) first() int {
	for i := range l.rows {
		if l.canFocus(i) {
			return i
		}
	}
	return -1
}

func (l *rowList) last() int {
	for i := len(l.rows) - 1; i >= 0; i-- {
		if l.canFocus(i) {
			return i
		}
	}
	return -1
}

// move steps the focus by delta over focusable rows. It reports false,
// leaving the focus alone, when there is nothing further that way.
func (l *rowList) move(delta int) bool {
	for i := l.focus + delta; i >= 0 && i < len(l.rows); i += delta {
		if l.canFocus(i) {
			l.focus = i
			l.ensureVisible()
			return true
		}
	}
	return false
}

func (l *rowList) setFocus(i int) {
	if l.canFocus(i) {
		l.focus = i
		l.ensureVisible()
	}
}

func (l *rowList) contentHeight() int32 {
	n := int32(len(l.rows))
	if n == 0 {
		return 0
	}
	return n*rowHeight + (n-1)*rowGap
}

// ensureVisible scrolls the minimum amount to show the focused row.
func (l *rowList) ensureVisible() {
	if l.focus < 0 {
		return
	}
	viewport := l.bottom - l.top
	rowTop := int32(l.focus) * (rowHeight + rowGap)
	rowBottom := rowTop + rowHeight

	if rowTop < l.scroll {
		l.scroll = rowTop
	} else if rowBottom > l.scroll+viewport {
		l.scroll = rowBottom - viewport
	}
	l.scroll = max(0, min(l.scroll, max(0, l.contentHeight()-viewport)))
}

func (l *rowList) rowRect(i int, x, w int32) sdl.Rect {
	return sdl.Rect{X: x, Y: l.top + int32(i)*(rowHeight+rowGap) - l.scroll, W: w, H: rowHeight}
}

// rowAt returns the row under window y, or -1 for gaps and anything
// outside the viewport.
func (l *rowList) rowAt(y int32) int {
	if y < l.top || y >= l.bottom {
		return -1
	}
	offset := y - l.top + l.scroll
	i := int(offset / (rowHeight + rowGap))
	if i >= len(l.rows) || offset%(rowHeight+rowGap) >= rowHeight {
		return -1
	}
	return i
}

func (l *rowList) render(renderer *sdl.Renderer, x, w int32, focused bool) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	renderer.SetClipRect(&sdl.Rect{X: 0, Y: l.top, W: x*2 + w, H: l.bottom - l.top})
	defer renderer.SetClipRect(nil)

	for i, row := range l.rows {
		rect := l.rowRect(i, x, w)
		if rect.Y+rect.H < l.top || rect.Y > l.bottom {
			continue
		}

		internal.FillRoundedRect(renderer, rect, rowRadius, theme.InactiveFillColor)
		if focused && i == l.focus {
			ring := sdl.Rect{X: rect.X - focusRingPad, Y: rect.Y - focusRingPad, W: rect.W + 2*focusRingPad, H: rect.H + 2*focusRingPad}
			internal.StrokeRoundedRect(renderer, ring, rowRadius+focusRingPad, constants.FocusRingWidth, theme.AccentColor)
		}

		textX := rect.X + rowTextInset
		if row.Subtitle == "" {
			_, th := internal.TextSize(fonts.Medium, row.Title)
			internal.RenderText(renderer, fonts.Medium, row.Title, theme.TextColor, textX, rect.Y+(rect.H-th)/2, constants.TextAlignLeft)
		} else {
			_, th := internal.RenderText(renderer, fonts.Medium, row.Title, theme.TextColor, textX, rect.Y+12, constants.TextAlignLeft)
			internal.RenderText(renderer, fonts.Small, row.Subtitle, theme.HintColor, textX, rect.Y+14+th, constants.TextAlignLeft)
		}

		if row.Value != "" {
			_, vh := internal.TextSize(fonts.Medium, row.Value)
			internal.RenderText(renderer, fonts.Medium, row.Value, theme.AccentColor, rect.X+rect.W-rowTextInset, rect.Y+(rect.H-vh)/2, constants.TextAlignRight)
		}
	}
}

// renderHeader draws a title and optional subtitle starting at x and
// returns the y just below them.
func renderHeader(renderer *sdl.Renderer, title, subtitle string, x int32) int32 {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	y := headerTop
	_, th := internal.RenderText(renderer, fonts.Large, title, theme.TextColor, x, y, constants.TextAlignLeft)
	y += th + constants.DefaultTitleSpacing
	if subtitle != "" {
		_, sh := internal.RenderText(renderer, fonts.Small, subtitle, theme.HintColor, x, y, constants.TextAlignLeft)
		y += sh
	}
	return y + headerSpacing
}
