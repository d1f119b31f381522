package tui

import "github.com/LISSConsulting/LISSTech.TabDeck/internal/tabs"

// Minimum terminal size for the deck.
const (
	minWidth  = 30
	minHeight = 6
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout holds the computed geometry for a given terminal size.
type Layout struct {
	Bar, Content, Footer Rect
	TooSmall             bool // true when terminal is below the minimum size
}

// Calculate computes the deck layout for a terminal of the given dimensions.
// barWidth is the natural width of a vertical tab bar and is ignored for top
// and bottom bars.
//
// Algorithm:
//   - Footer: full width, 1 row at bottom
//   - top/bottom bar: full width, 1 row above or below the content
//   - left/right bar: barWidth+2 columns, clamped to a third of the width
//   - Content: the remaining area, including its 1-cell border
func Calculate(width, height int, pos tabs.BarPosition, barWidth int) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 1
	footer := Rect{X: 0, Y: height - 1, Width: width, Height: 1}

	switch pos {
	case tabs.BarLeft, tabs.BarRight:
		barW := barWidth + 2
		if barW > width/3 {
			barW = width / 3
		}
		contentW := width - barW
		if pos == tabs.BarLeft {
			return Layout{
				Bar:     Rect{X: 0, Y: 0, Width: barW, Height: bodyH},
				Content: Rect{X: barW, Y: 0, Width: contentW, Height: bodyH},
				Footer:  footer,
			}
		}
		return Layout{
			Bar:     Rect{X: contentW, Y: 0, Width: barW, Height: bodyH},
			Content: Rect{X: 0, Y: 0, Width: contentW, Height: bodyH},
			Footer:  footer,
		}
	case tabs.BarBottom:
		return Layout{
			Bar:     Rect{X: 0, Y: bodyH - 1, Width: width, Height: 1},
			Content: Rect{X: 0, Y: 0, Width: width, Height: bodyH - 1},
			Footer:  footer,
		}
	default:
		return Layout{
			Bar:     Rect{X: 0, Y: 0, Width: width, Height: 1},
			Content: Rect{X: 0, Y: 1, Width: width, Height: bodyH - 1},
			Footer:  footer,
		}
	}
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
