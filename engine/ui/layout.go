// Package ui holds the screen geometry shared by the HUD renderer and the
// pointer hit-testing in the input handler, so both agree on where things are.
package ui

import (
	"image"
)

// Default HUD geometry in top-left-origin window pixels. Text positions are baselines.
const (
	DefaultMarginX      = 20
	DefaultLineHeight   = 20
	DefaultPauseY       = 340
	DefaultPauseWidth   = 80
	DefaultListInset    = 150
	DefaultListRightGap = 20
	DefaultListHeaderY  = 30

	// Ascent and Descent bound a text line around its baseline for hit-testing.
	Ascent  = 15
	Descent = 5
)

// Layout describes where the HUD elements sit for a given window size.
type Layout struct {
	// Width and Height are the window size in pixels.
	Width, Height int
	// MarginX is the left edge of the status column.
	MarginX int
	// PauseY is the baseline of the Play/Pause label.
	PauseY int
	// PauseButton is the clickable Play/Pause rectangle.
	PauseButton image.Rectangle
	// ListX is the left edge of the body list text.
	ListX int
	// ListRight is the right edge of the clickable list column.
	ListRight int
	// HeaderY is the baseline of the list header; row i sits at HeaderY + (i+1)*RowHeight.
	HeaderY int
	// RowHeight is the vertical pitch of list rows.
	RowHeight int
}

// NewLayout computes the default layout for a window of the given size.
//
// Parameters:
//   - width, height: window size in pixels
//
// Returns:
//   - Layout: the HUD geometry
func NewLayout(width, height int) Layout {
	return Layout{
		Width:   width,
		Height:  height,
		MarginX: DefaultMarginX,
		PauseY:  DefaultPauseY,
		PauseButton: image.Rect(
			DefaultMarginX, DefaultPauseY-Ascent,
			DefaultMarginX+DefaultPauseWidth, DefaultPauseY+Descent,
		),
		ListX:     width - DefaultListInset,
		ListRight: width - DefaultListRightGap,
		HeaderY:   DefaultListHeaderY,
		RowHeight: DefaultLineHeight,
	}
}

// InPauseButton reports whether (x, y) hits the pause button. Edges are inclusive.
func (l Layout) InPauseButton(x, y int) bool {
	r := l.PauseButton
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// ListRow returns the list row under (x, y), or false when the point is
// outside the list column or above the first row. The row index is not
// bounded by the number of bodies; callers check that.
//
// Parameters:
//   - x, y: pointer position in window pixels
//
// Returns:
//   - int: zero-based row index
//   - bool: whether the point is inside the list column at or below the first row
func (l Layout) ListRow(x, y int) (int, bool) {
	top := l.listTop()
	if x < l.ListX || x > l.ListRight || y < top || l.RowHeight <= 0 {
		return 0, false
	}
	return (y - top) / l.RowHeight, true
}

// RowBaseline returns the text baseline for list row i.
func (l Layout) RowBaseline(i int) int {
	return l.HeaderY + (i+1)*l.RowHeight
}

// listTop is the upper edge of row 0's hit band.
func (l Layout) listTop() int {
	return l.RowBaseline(0) - Ascent
}
