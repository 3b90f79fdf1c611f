//go:build !windows

package overlay

import (
	"fmt"

	"screen-capture-overlay/geometry"
)

// Host is the native surface backend. Only Windows ships one in this
// module; on other platforms the embedding toolkit supplies Surface
// implementations and Run reports the absence instead of degrading.
type Host struct {
	surfaces []*nativeSurface
}

// NewHost creates an empty host.
func NewHost() *Host { return &Host{} }

// NewSurface returns an inert surface targeting the given screen bounds.
func (h *Host) NewSurface(screen geometry.Rect) *nativeSurface {
	s := &nativeSurface{screen: screen}
	h.surfaces = append(h.surfaces, s)
	return s
}

// Bind attaches the overlay window a surface dispatches to.
func (h *Host) Bind(s *nativeSurface, w *Window) { s.window = w }

// Run fails: there is no native message loop on this platform.
func (h *Host) Run() error {
	return fmt.Errorf("native overlay host is not available on this platform")
}

// Quit is a no-op without a message loop.
func (h *Host) Quit() {}

// MinimizeAll is a no-op without native windows.
func (h *Host) MinimizeAll() {}

// SetCursorWait is a no-op without native windows.
func (h *Host) SetCursorWait() {}

type nativeSurface struct {
	window *Window
	screen geometry.Rect
}

func (s *nativeSurface) SetTitle(title string)                  {}
func (s *nativeSurface) SetAccentBorder(color string)           {}
func (s *nativeSurface) ApplyFlags(flags Flags)                 {}
func (s *nativeSurface) SetBackground(r, g, b uint8, a float64) {}
func (s *nativeSurface) SetStrongFocus()                        {}
func (s *nativeSurface) ForceActive()                           {}
func (s *nativeSurface) Move(x, y int)                          { s.screen.Left, s.screen.Top = x, y }
func (s *nativeSurface) SetMinimumSize(w, h int)                {}
func (s *nativeSurface) SetGeometry(x, y, w, h int)             {}
func (s *nativeSurface) Show()                                  {}
func (s *nativeSurface) ShowFullScreen()                        {}
func (s *nativeSurface) Redraw()                                {}
