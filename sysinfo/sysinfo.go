// Package sysinfo describes the environment the overlay windows run in:
// the OS platform, the display server, and the attached screens in
// global desktop coordinates.
package sysinfo

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/kbinani/screenshot"

	"screen-capture-overlay/geometry"
)

// Platform identifies the operating system.
type Platform int

const (
	PlatformLinux Platform = iota
	PlatformMacOS
	PlatformWindows
	PlatformUnknown
)

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// DisplayManager identifies the display server. Only meaningful on
// Linux; other platforms normalize to DisplayManagerOther.
type DisplayManager int

const (
	DisplayManagerX11 DisplayManager = iota
	DisplayManagerWayland
	DisplayManagerOther
)

func (d DisplayManager) String() string {
	switch d {
	case DisplayManagerX11:
		return "x11"
	case DisplayManagerWayland:
		return "wayland"
	default:
		return "other"
	}
}

// Screen is an immutable description of one physical display. Geometry
// is in global desktop coordinates and is never mutated by the overlay
// core.
type Screen struct {
	Index    int
	Geometry geometry.Rect
}

// SystemInfo is supplied once at window construction and treated as
// read-only afterwards.
type SystemInfo struct {
	Platform       Platform
	DisplayManager DisplayManager
	Screens        []Screen
}

// Collect detects the platform, display server, and attached screens.
func Collect() (SystemInfo, error) {
	info := SystemInfo{
		Platform:       detectPlatform(runtime.GOOS),
		DisplayManager: DisplayManagerOther,
	}
	if info.Platform == PlatformLinux {
		info.DisplayManager = detectDisplayManager(os.Getenv("XDG_SESSION_TYPE"), os.Getenv("WAYLAND_DISPLAY"))
	}

	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return SystemInfo{}, fmt.Errorf("no active displays found")
	}
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		info.Screens = append(info.Screens, Screen{
			Index: i,
			Geometry: geometry.Rect{
				Top:    b.Min.Y,
				Left:   b.Min.X,
				Bottom: b.Max.Y,
				Right:  b.Max.X,
			},
		})
		log.Printf("Sysinfo: Display %d bounds x=%d y=%d w=%d h=%d", i, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
	}

	log.Printf("Sysinfo: platform=%s display_manager=%s screens=%d", info.Platform, info.DisplayManager, len(info.Screens))
	return info, nil
}

func detectPlatform(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// detectDisplayManager classifies the Linux session. Anything that is
// not recognizably Wayland is treated as X11-like, matching how window
// placement actually behaves under XWayland-less compositors.
func detectDisplayManager(sessionType, waylandDisplay string) DisplayManager {
	if strings.EqualFold(strings.TrimSpace(sessionType), "wayland") {
		return DisplayManagerWayland
	}
	if strings.TrimSpace(waylandDisplay) != "" {
		return DisplayManagerWayland
	}
	return DisplayManagerX11
}
