package overlay

import (
	"fmt"

	"screen-capture-overlay/geometry"
	"screen-capture-overlay/sysinfo"
)

// PlacementFunc places a surface as a fullscreen overlay covering the
// given screen geometry. One variant exists per supported platform and
// display-server combination; the branches share no state.
type PlacementFunc func(s Surface, screen geometry.Rect)

type placementKey struct {
	platform sysinfo.Platform
	manager  sysinfo.DisplayManager
}

var placements = map[placementKey]PlacementFunc{
	{sysinfo.PlatformLinux, sysinfo.DisplayManagerX11}:     placeLinux,
	{sysinfo.PlatformLinux, sysinfo.DisplayManagerWayland}: placeLinux,
	{sysinfo.PlatformLinux, sysinfo.DisplayManagerOther}:   placeLinux,
	{sysinfo.PlatformMacOS, sysinfo.DisplayManagerOther}:   placeMacOS,
	{sysinfo.PlatformWindows, sysinfo.DisplayManagerOther}: placeWindows,
}

// Placement selects the fullscreen strategy for a platform and display
// manager. The choice is made once at window construction. An unsupported
// platform is a fatal error; there is no fallback.
func Placement(platform sysinfo.Platform, manager sysinfo.DisplayManager) (PlacementFunc, error) {
	if platform != sysinfo.PlatformLinux {
		manager = sysinfo.DisplayManagerOther
	}
	fn, ok := placements[placementKey{platform, manager}]
	if !ok {
		return nil, fmt.Errorf("platform %s not supported", platform)
	}
	return fn, nil
}

// placeLinux covers X11-like servers and Wayland alike: bypass the
// window manager entirely and force the window active. Under Wayland the
// move is denied by the compositor; the activation-triggered reposition
// in Window.Activated finishes the job.
func placeLinux(s Surface, screen geometry.Rect) {
	s.ApplyFlags(Flags{
		Frameless:           true,
		BypassWindowManager: true,
		AlwaysOnTop:         true,
	})
	s.SetBackground(0, 0, 0, 0)
	s.SetStrongFocus()
	s.ForceActive()
	s.Move(screen.Left, screen.Top)
	s.SetMinimumSize(screen.Width(), screen.Height())
	s.Show()
}

// placeMacOS keeps a faint non-zero background alpha: a fully
// transparent window is click-through on macOS.
func placeMacOS(s Surface, screen geometry.Rect) {
	s.ApplyFlags(Flags{
		Frameless:    true,
		AlwaysOnTop:  true,
		NoDropShadow: true,
	})
	s.SetBackground(128, 128, 128, 0.03)
	s.SetStrongFocus()
	s.SetGeometry(screen.Left, screen.Top, screen.Width(), screen.Height())
}

// placeWindows also needs the faint alpha to avoid click-through.
func placeWindows(s Surface, screen geometry.Rect) {
	s.ApplyFlags(Flags{
		Frameless:   true,
		AlwaysOnTop: true,
	})
	s.SetBackground(0, 0, 0, 0.01)
	s.Move(screen.Left, screen.Top)
	s.ShowFullScreen()
}
