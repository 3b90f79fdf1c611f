package overlay

import (
	"testing"

	"screen-capture-overlay/capture"
	"screen-capture-overlay/geometry"
	"screen-capture-overlay/signals"
	"screen-capture-overlay/sysinfo"
)

func testSystemInfo() sysinfo.SystemInfo {
	return sysinfo.SystemInfo{
		Platform:       sysinfo.PlatformLinux,
		DisplayManager: sysinfo.DisplayManagerX11,
		Screens: []sysinfo.Screen{
			{Index: 0, Geometry: geometry.Rect{Top: 0, Left: 0, Bottom: 1080, Right: 1920}},
			{Index: 1, Geometry: geometry.Rect{Top: 0, Left: 1920, Bottom: 1080, Right: 3840}},
		},
	}
}

func fixedMode(m capture.Mode) capture.ModeProvider {
	return capture.ModeFunc(func() capture.Mode { return m })
}

type fakeRepositioner struct {
	calls   int
	screens []geometry.Rect
}

func (f *fakeRepositioner) MoveActiveWindow(screen geometry.Rect) error {
	f.calls++
	f.screens = append(f.screens, screen)
	return nil
}

func newTestWindow(t *testing.T, cfg Config) (*Window, *fakeSurface, <-chan signals.Envelope) {
	t.Helper()
	s := &fakeSurface{}
	w, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Com().SetMessageLogging(false)
	ch, err := w.Com().Register("shell", 16)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return w, s, ch
}

func drainTypes(ch <-chan signals.Envelope) []string {
	var types []string
	for {
		select {
		case env := <-ch:
			types = append(types, env.Message.Type())
		default:
			return types
		}
	}
}

func TestConstructionAppliesIdentityAndPlacement(t *testing.T) {
	w, s, _ := newTestWindow(t, Config{
		Sys:         testSystemInfo(),
		ScreenIndex: 1,
		AccentColor: "#FF2E88",
		Mode:        fixedMode(capture.ModeRaw),
	})

	if s.title != WindowTitle {
		t.Fatalf("Expected title %q, got %q", WindowTitle, s.title)
	}
	if s.accent != "#FF2E88" {
		t.Fatalf("Expected accent border %q, got %q", "#FF2E88", s.accent)
	}
	if !s.moved || s.movedX != 1920 || s.movedY != 0 {
		t.Fatalf("Expected placement at (1920,0), got (%d,%d)", s.movedX, s.movedY)
	}
	if w.Name() != "window-1" {
		t.Fatalf("Expected name window-1, got %q", w.Name())
	}
}

func TestUnsupportedPlatformIsFatal(t *testing.T) {
	sys := testSystemInfo()
	sys.Platform = sysinfo.PlatformUnknown
	_, err := New(Config{Sys: sys, Mode: fixedMode(capture.ModeRaw)}, &fakeSurface{})
	if err == nil {
		t.Fatal("Expected construction to fail on unsupported platform")
	}
}

func TestSelectionEndToEnd(t *testing.T) {
	// Screen 1 at (left=1920, top=0, 1920x1080); drag from local
	// (100,100) up-right to (300,50).
	w, _, ch := newTestWindow(t, Config{
		Sys:         testSystemInfo(),
		ScreenIndex: 1,
		AccentColor: "#FF2E88",
		Mode:        fixedMode(capture.ModeRaw),
	})

	w.MousePress(100, 100, ButtonPrimary)
	w.MouseMove(200, 80)
	w.MouseMove(300, 50)
	w.MouseRelease(300, 50, ButtonPrimary)

	types := drainTypes(ch)
	want := []string{
		signals.TypeSetCursorWait,
		signals.TypeMinimizeWindows,
		signals.TypeRegionSelected,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d signals, got %v", len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("Expected signal %d to be %s, got %s", i, want[i], types[i])
		}
	}
}

func TestSelectionEmitsGlobalSanitizedRect(t *testing.T) {
	w, _, ch := newTestWindow(t, Config{
		Sys:         testSystemInfo(),
		ScreenIndex: 1,
		Mode:        fixedMode(capture.ModeRaw),
	})

	w.MousePress(100, 100, ButtonPrimary)
	w.MouseMove(300, 50)
	w.MouseRelease(300, 50, ButtonPrimary)

	var selected signals.RegionSelected
	found := false
	for {
		select {
		case env := <-ch:
			if m, ok := env.Message.(signals.RegionSelected); ok {
				selected = m
				found = true
			}
			continue
		default:
		}
		break
	}
	if !found {
		t.Fatal("Expected a RegionSelected signal")
	}

	// ToGlobal adds (1920,0) and shrinks by the pen width; Sanitize
	// swaps the inverted vertical span with margin correction 4.
	want := geometry.Rect{Top: 52, Left: 2022, Bottom: 98, Right: 2218}
	if selected.Rect != want {
		t.Fatalf("Expected rect %+v, got %+v", want, selected.Rect)
	}
	if selected.ScreenIndex != 1 {
		t.Fatalf("Expected screen index 1, got %d", selected.ScreenIndex)
	}
}

func TestSelectionResetsAfterRelease(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{
		Sys:  testSystemInfo(),
		Mode: fixedMode(capture.ModeRaw),
	})

	w.MousePress(10, 10, ButtonPrimary)
	w.MouseRelease(50, 50, ButtonPrimary)

	f := w.Frame()
	if f.Selecting {
		t.Fatal("Expected frame empty after release")
	}
}

func TestEscapeDuringSelectionEmitsNothing(t *testing.T) {
	w, _, ch := newTestWindow(t, Config{
		Sys:  testSystemInfo(),
		Mode: fixedMode(capture.ModeRaw),
	})

	w.MousePress(10, 10, ButtonPrimary)
	w.MouseMove(200, 200)
	w.KeyEscape()

	if types := drainTypes(ch); len(types) != 0 {
		t.Fatalf("Expected no signals after Escape mid-selection, got %v", types)
	}
	if w.Frame().Selecting {
		t.Fatal("Expected selection aborted")
	}

	// A release after the abort must not emit either.
	w.MouseRelease(200, 200, ButtonPrimary)
	if types := drainTypes(ch); len(types) != 0 {
		t.Fatalf("Expected no signals after aborted selection, got %v", types)
	}
}

func TestEscapeWhileIdleEmitsQuitOrHide(t *testing.T) {
	w, _, ch := newTestWindow(t, Config{
		Sys:  testSystemInfo(),
		Mode: fixedMode(capture.ModeRaw),
	})

	w.KeyEscape()

	env := <-ch
	q, ok := env.Message.(signals.QuitOrHide)
	if !ok {
		t.Fatalf("Expected QuitOrHide, got %T", env.Message)
	}
	if q.Reason != "esc button pressed" {
		t.Fatalf("Expected reason %q, got %q", "esc button pressed", q.Reason)
	}
}

func TestSecondaryButtonIgnored(t *testing.T) {
	w, _, ch := newTestWindow(t, Config{
		Sys:  testSystemInfo(),
		Mode: fixedMode(capture.ModeRaw),
	})

	w.MousePress(10, 10, ButtonSecondary)
	if w.Frame().Selecting {
		t.Fatal("Expected no selection on secondary button")
	}
	w.MouseRelease(50, 50, ButtonSecondary)
	if types := drainTypes(ch); len(types) != 0 {
		t.Fatalf("Expected no signals, got %v", types)
	}
}

func TestFrameWhileSelecting(t *testing.T) {
	w, _, _ := newTestWindow(t, Config{
		Sys:         testSystemInfo(),
		AccentColor: "#FF2E88",
		Mode:        fixedMode(capture.ModeParse),
	})

	w.MousePress(100, 100, ButtonPrimary)
	w.MouseMove(300, 50)

	f := w.Frame()
	if !f.Selecting {
		t.Fatal("Expected selecting frame")
	}
	if f.Rect != (geometry.Rect{Top: 100, Left: 100, Bottom: 50, Right: 300}) {
		t.Fatalf("Unexpected frame rect %+v", f.Rect)
	}
	if f.Glyph != "★" {
		t.Fatalf("Expected parse glyph, got %q", f.Glyph)
	}
	if f.Accent != "#FF2E88" || f.PenWidth != geometry.PenWidth {
		t.Fatalf("Unexpected accent/pen: %q %d", f.Accent, f.PenWidth)
	}
	// Glyph sits near the bottom-left corner regardless of drag direction.
	if f.GlyphX != 100+18 {
		t.Fatalf("Expected glyph x %d, got %d", 100+18, f.GlyphX)
	}
	if f.GlyphY != 100-8 {
		t.Fatalf("Expected glyph y %d, got %d", 100-8, f.GlyphY)
	}
}

func TestModeGlyphPolledAtSelectionStart(t *testing.T) {
	mode := capture.ModeRaw
	w, _, _ := newTestWindow(t, Config{
		Sys:  testSystemInfo(),
		Mode: capture.ModeFunc(func() capture.Mode { return mode }),
	})

	w.MousePress(0, 0, ButtonPrimary)
	mode = capture.ModeParse // changes mid-drag must not affect the glyph
	w.MouseMove(10, 10)

	if g := w.Frame().Glyph; g != "☰" {
		t.Fatalf("Expected raw glyph polled at start, got %q", g)
	}
}

func TestSiblingRoutesThroughMainWindow(t *testing.T) {
	main, _, ch := newTestWindow(t, Config{
		Sys:         testSystemInfo(),
		ScreenIndex: 0,
		Mode:        fixedMode(capture.ModeRaw),
	})

	sibling, _, err := func() (*Window, *fakeSurface, error) {
		s := &fakeSurface{}
		w, err := New(Config{
			Sys:         testSystemInfo(),
			ScreenIndex: 1,
			Mode:        fixedMode(capture.ModeRaw),
			Main:        main,
		}, s)
		return w, s, err
	}()
	if err != nil {
		t.Fatalf("New sibling failed: %v", err)
	}

	sibling.KeyEscape()

	env := <-ch
	if env.Message.Type() != signals.TypeQuitOrHide {
		t.Fatalf("Expected QuitOrHide via main router, got %s", env.Message.Type())
	}
	if env.From != "window-1" {
		t.Fatalf("Expected signal from window-1, got %s", env.From)
	}
}

func TestWaylandActivationPositionsOnce(t *testing.T) {
	sys := testSystemInfo()
	sys.DisplayManager = sysinfo.DisplayManagerWayland
	rep := &fakeRepositioner{}

	w, _, ch := newTestWindow(t, Config{
		Sys:         sys,
		ScreenIndex: 1,
		Mode:        fixedMode(capture.ModeRaw),
		Reposition:  rep,
	})

	w.Activated()
	w.Activated()

	if rep.calls != 1 {
		t.Fatalf("Expected exactly one reposition call, got %d", rep.calls)
	}
	if rep.screens[0] != testSystemInfo().Screens[1].Geometry {
		t.Fatalf("Expected reposition with screen 1 geometry, got %+v", rep.screens[0])
	}
	if !w.Positioned() {
		t.Fatal("Expected window marked positioned")
	}

	types := drainTypes(ch)
	if len(types) != 1 || types[0] != signals.TypeWindowPositioned {
		t.Fatalf("Expected exactly one WindowPositioned, got %v", types)
	}
}

func TestActivationIgnoredOffWayland(t *testing.T) {
	rep := &fakeRepositioner{}
	w, _, ch := newTestWindow(t, Config{
		Sys:        testSystemInfo(),
		Mode:       fixedMode(capture.ModeRaw),
		Reposition: rep,
	})

	w.Activated()

	if rep.calls != 0 {
		t.Fatalf("Expected no reposition on X11, got %d calls", rep.calls)
	}
	if types := drainTypes(ch); len(types) != 0 {
		t.Fatalf("Expected no signals, got %v", types)
	}
}
