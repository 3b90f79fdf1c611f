// Package overlay implements the per-screen capture overlay windows:
// fullscreen, borderless, topmost surfaces the user drags a selection
// rectangle on. The windowing toolkit is reached through the Surface
// interface so that the selection and placement logic stays independent
// of any one backend.
package overlay

// Flags are the window-manager hints a placement strategy applies once
// at construction.
type Flags struct {
	Frameless           bool
	BypassWindowManager bool
	AlwaysOnTop         bool
	NoDropShadow        bool
}

// Surface is the minimal window-toolkit contract the overlay needs. A
// native implementation wraps a real window; tests use a recording fake.
// All calls happen on the UI thread.
type Surface interface {
	// SetTitle applies the window identity/title.
	SetTitle(title string)
	// SetAccentBorder draws the fixed border around the whole surface
	// and switches the cursor to a crosshair.
	SetAccentBorder(color string)
	// ApplyFlags sets the window-manager hints.
	ApplyFlags(flags Flags)
	// SetBackground fills the window background. Alpha 0 is fully
	// transparent; some platforms need a faint non-zero alpha to keep
	// the window from becoming click-through.
	SetBackground(r, g, b uint8, alpha float64)
	// SetStrongFocus requests strong keyboard focus.
	SetStrongFocus()
	// ForceActive forces the window into the active state.
	ForceActive()
	// Move places the window's top-left corner at global (x, y).
	Move(x, y int)
	// SetMinimumSize constrains the window to at least w x h.
	SetMinimumSize(w, h int)
	// SetGeometry moves and sizes the window in one call.
	SetGeometry(x, y, w, h int)
	// Show makes the window visible.
	Show()
	// ShowFullScreen makes the window visible in fullscreen mode.
	ShowFullScreen()
	// Redraw schedules a repaint; the backend renders the owning
	// window's current Frame.
	Redraw()
}
