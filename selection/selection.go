// Package selection tracks one in-progress drag selection per overlay
// window. All mutation happens on the UI thread through the owning
// window's input handlers.
package selection

import (
	"screen-capture-overlay/capture"
	"screen-capture-overlay/geometry"
)

// Mode indicator glyphs drawn next to the selection rectangle.
const (
	GlyphRaw   = "☰"
	GlyphParse = "★"
)

// ModeGlyph returns the indicator glyph for a capture mode. Modes this
// core does not know render no indicator.
func ModeGlyph(mode capture.Mode) string {
	switch mode {
	case capture.ModeRaw:
		return GlyphRaw
	case capture.ModeParse:
		return GlyphParse
	default:
		return ""
	}
}

// State is the drag selection state machine: Idle, then Selecting from
// primary-button press until release or cancellation. The rectangle is
// window-local and may have inverted spans mid-drag; top/left stay
// pinned at the press point while bottom/right follow the pointer.
type State struct {
	selecting bool
	rect      geometry.Rect
	glyph     string
}

// Selecting reports whether a drag is in progress.
func (s *State) Selecting() bool { return s.selecting }

// Rect returns the current selection rectangle in window-local space.
func (s *State) Rect() geometry.Rect { return s.rect }

// Glyph returns the mode indicator chosen when the drag started.
func (s *State) Glyph() string { return s.glyph }

// Begin starts a selection at the press point. All four edges collapse
// onto the point; the mode indicator is polled once, here.
func (s *State) Begin(x, y int, mode capture.Mode) {
	s.selecting = true
	s.glyph = ModeGlyph(mode)
	s.rect.Top = y
	s.rect.Left = x
	s.rect.Bottom = y
	s.rect.Right = x
}

// Drag moves the bottom/right edges to the pointer position. Top/left
// remain pinned, so dragging in any direction works.
func (s *State) Drag(x, y int) {
	s.rect.Bottom = y
	s.rect.Right = x
}

// Finish finalizes the selection at the release point, leaves the
// Selecting state, and returns the raw window-local rectangle. The
// stored rectangle is reset to empty.
func (s *State) Finish(x, y int) geometry.Rect {
	s.rect.Bottom = y
	s.rect.Right = x
	s.selecting = false

	r := s.rect
	s.rect = geometry.Rect{}
	return r
}

// Cancel aborts an in-progress selection without emitting anything.
func (s *State) Cancel() {
	s.selecting = false
	s.rect = geometry.Rect{}
}
