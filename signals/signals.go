// Package signals defines the messages the overlay windows emit and a
// small router that delivers them to registered listeners. There is no
// global bus; the main window owns a Router instance and sibling windows
// reach it through their main-window reference.
package signals

import "screen-capture-overlay/geometry"

// Message is the base interface for all overlay signals.
type Message interface {
	Type() string
}

const (
	TypeRegionSelected   = "RegionSelected"
	TypeQuitOrHide       = "QuitOrHide"
	TypeSetCursorWait    = "SetCursorWait"
	TypeMinimizeWindows  = "MinimizeWindows"
	TypeWindowPositioned = "WindowPositioned"
)

// RegionSelected carries a completed selection: the sanitized rectangle
// in global coordinates plus the index of the screen it was drawn on.
type RegionSelected struct {
	Rect        geometry.Rect
	ScreenIndex int
}

func (m RegionSelected) Type() string { return TypeRegionSelected }

// QuitOrHide asks the application shell to quit or hide all windows.
type QuitOrHide struct {
	Reason string
}

func (m QuitOrHide) Type() string { return TypeQuitOrHide }

// SetCursorWait asks the shell to switch to a wait cursor before the
// heavy capture work begins.
type SetCursorWait struct{}

func (m SetCursorWait) Type() string { return TypeSetCursorWait }

// MinimizeWindows asks the shell to minimize all overlay windows before
// the heavy capture work begins.
type MinimizeWindows struct{}

func (m MinimizeWindows) Type() string { return TypeMinimizeWindows }

// WindowPositioned reports that one window finished its asynchronous
// Wayland placement. Emitted exactly once per window.
type WindowPositioned struct{}

func (m WindowPositioned) Type() string { return TypeWindowPositioned }

// Envelope wraps a message with its source for logging and routing.
type Envelope struct {
	From    string
	Message Message
}
