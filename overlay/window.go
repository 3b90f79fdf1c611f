package overlay

import (
	"fmt"
	"log"

	"screen-capture-overlay/capture"
	"screen-capture-overlay/geometry"
	"screen-capture-overlay/selection"
	"screen-capture-overlay/signals"
	"screen-capture-overlay/sysinfo"
)

// WindowTitle is applied to every overlay window.
const WindowTitle = "Screen Capture"

// Offsets of the mode-indicator glyph from the selection rectangle's
// bottom-left corner.
const (
	glyphMarginX = 18
	glyphMarginY = 8
)

// Button identifies a pointer button in input events.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Repositioner is the external primitive that moves the active window
// to a screen position on display servers that deny programmatic
// placement (Wayland). It may have OS-level side effects outside this
// core's control.
type Repositioner interface {
	MoveActiveWindow(screen geometry.Rect) error
}

// Config describes one overlay window at construction time.
type Config struct {
	Sys         sysinfo.SystemInfo
	ScreenIndex int
	AccentColor string
	Mode        capture.ModeProvider
	// Main is the signal-routing window; nil marks this window as main.
	// The reference is non-owning: the main window outlives siblings.
	Main *Window
	// Reposition is required only under Wayland.
	Reposition Repositioner
}

// Window is one per-screen overlay. It owns the selection state, renders
// it through its Surface, and forwards input events into the state
// machine. All methods run on the UI thread.
type Window struct {
	sys         sysinfo.SystemInfo
	screenIndex int
	accent      string
	mode        capture.ModeProvider
	main        *Window
	com         *signals.Router
	reposition  Repositioner
	surface     Surface
	sel         selection.State
	positioned  bool
}

// New builds a window for one screen and places it fullscreen with the
// platform strategy. The screen index is assumed valid; the constructing
// collaborator validates it. An unsupported platform is fatal.
func New(cfg Config, surface Surface) (*Window, error) {
	w := &Window{
		sys:         cfg.Sys,
		screenIndex: cfg.ScreenIndex,
		accent:      cfg.AccentColor,
		mode:        cfg.Mode,
		main:        cfg.Main,
		reposition:  cfg.Reposition,
		surface:     surface,
	}
	if w.main == nil {
		w.com = signals.NewRouter()
	}

	place, err := Placement(cfg.Sys.Platform, cfg.Sys.DisplayManager)
	if err != nil {
		return nil, err
	}

	log.Printf("Overlay: Creating window for screen %d", w.screenIndex)
	surface.SetTitle(WindowTitle)
	surface.SetAccentBorder(w.accent)
	place(surface, w.screen().Geometry)
	return w, nil
}

// Name identifies the window in signal envelopes and logs.
func (w *Window) Name() string { return fmt.Sprintf("window-%d", w.screenIndex) }

// Com returns the signal router, owned by the main window and shared by
// all siblings.
func (w *Window) Com() *signals.Router {
	if w.main != nil {
		return w.main.Com()
	}
	return w.com
}

// Positioned reports whether the Wayland activation placement has run.
func (w *Window) Positioned() bool { return w.positioned }

func (w *Window) screen() sysinfo.Screen {
	return w.sys.Screens[w.screenIndex]
}

// MousePress starts a selection on the primary button.
func (w *Window) MousePress(x, y int, btn Button) {
	if btn != ButtonPrimary {
		return
	}
	w.sel.Begin(x, y, w.mode.Mode())
	w.surface.Redraw()
}

// MouseMove extends an in-progress selection toward the pointer.
func (w *Window) MouseMove(x, y int) {
	if !w.sel.Selecting() {
		return
	}
	w.sel.Drag(x, y)
	w.surface.Redraw()
}

// MouseRelease completes a selection: the rectangle is converted to
// global coordinates, sanitized, and broadcast. The cursor-wait and
// minimize signals go out first so the shell can react before the heavy
// capture work starts.
func (w *Window) MouseRelease(x, y int, btn Button) {
	if btn != ButtonPrimary || !w.sel.Selecting() {
		return
	}
	raw := w.sel.Finish(x, y)

	com := w.Com()
	com.Broadcast(w.Name(), signals.SetCursorWait{})
	com.Broadcast(w.Name(), signals.MinimizeWindows{})

	rect := geometry.Sanitize(geometry.ToGlobal(raw, w.screen().Geometry))
	log.Printf("Overlay: Region selected on screen %d: %+v", w.screenIndex, rect)
	com.Broadcast(w.Name(), signals.RegionSelected{Rect: rect, ScreenIndex: w.screenIndex})

	w.surface.Redraw()
}

// KeyEscape aborts an in-progress selection, or asks the shell to quit
// or hide when idle.
func (w *Window) KeyEscape() {
	if w.sel.Selecting() {
		w.sel.Cancel()
		w.surface.Redraw()
		return
	}
	w.Com().Broadcast(w.Name(), signals.QuitOrHide{Reason: "esc button pressed"})
}

// Activated handles the window becoming active. Wayland denies window
// placement at creation, so the first activation triggers the external
// reposition primitive; window-positioned is emitted exactly once.
func (w *Window) Activated() {
	if w.sys.DisplayManager != sysinfo.DisplayManagerWayland || w.positioned {
		return
	}
	log.Printf("Overlay: Positioning window on screen %d", w.screenIndex)
	if w.reposition != nil {
		if err := w.reposition.MoveActiveWindow(w.screen().Geometry); err != nil {
			log.Printf("Overlay: Reposition failed for screen %d: %v", w.screenIndex, err)
		}
	}
	w.positioned = true
	w.Com().Broadcast(w.Name(), signals.WindowPositioned{})
}

// Frame is the render contract: while selecting, a dashed outline in
// the accent color plus the mode glyph near the rectangle's bottom-left
// corner; otherwise nothing.
type Frame struct {
	Selecting bool
	Rect      geometry.Rect
	Accent    string
	PenWidth  int
	Glyph     string
	GlyphX    int
	GlyphY    int
}

// Frame returns what the surface should paint right now.
func (w *Window) Frame() Frame {
	if !w.sel.Selecting() {
		return Frame{}
	}
	r := w.sel.Rect()
	return Frame{
		Selecting: true,
		Rect:      r,
		Accent:    w.accent,
		PenWidth:  geometry.PenWidth,
		Glyph:     w.sel.Glyph(),
		GlyphX:    min(r.Left, r.Right) + glyphMarginX,
		GlyphY:    max(r.Top, r.Bottom) - glyphMarginY,
	}
}
