// Package wayland implements the "reposition active window" primitive
// for display servers that deny programmatic window placement. GNOME
// Shell is asked over the session bus to move the focused window onto
// the target screen; the call has OS-level side effects outside the
// overlay core's control.
package wayland

import (
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"

	"screen-capture-overlay/geometry"
)

const (
	shellDestination = "org.gnome.Shell"
	shellObjectPath  = "/org/gnome/Shell"
	shellEvalMethod  = "org.gnome.Shell.Eval"
)

// Mover moves the active window via GNOME Shell's Eval interface.
type Mover struct {
	conn *dbus.Conn
}

// NewMover connects to the session bus.
func NewMover() (*Mover, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %v", err)
	}
	return &Mover{conn: conn}, nil
}

// MoveActiveWindow moves and resizes the currently focused window to the
// given screen geometry.
func (m *Mover) MoveActiveWindow(screen geometry.Rect) error {
	log.Printf("Wayland: Moving active window to %+v", screen)

	obj := m.conn.Object(shellDestination, dbus.ObjectPath(shellObjectPath))
	call := obj.Call(shellEvalMethod, 0, evalScript(screen))
	if call.Err != nil {
		return fmt.Errorf("gnome shell eval call failed: %v", call.Err)
	}

	var ok bool
	var result string
	if err := call.Store(&ok, &result); err != nil {
		return fmt.Errorf("failed to decode eval reply: %v", err)
	}
	if !ok {
		return fmt.Errorf("gnome shell rejected eval: %s", result)
	}
	return nil
}

// Close releases the bus connection.
func (m *Mover) Close() error { return m.conn.Close() }

// evalScript builds the shell snippet that moves the focused window.
func evalScript(screen geometry.Rect) string {
	return fmt.Sprintf(
		`global.get_window_actors().forEach(function (a) {
	var mw = a.meta_window;
	if (mw.has_focus()) {
		mw.move_resize_frame(0, %d, %d, %d, %d);
	}
});`,
		screen.Left, screen.Top, screen.Width(), screen.Height(),
	)
}
