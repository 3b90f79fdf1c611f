//go:build windows

package overlay

import (
	"fmt"
	"log"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"

	"screen-capture-overlay/geometry"
)

var (
	gdi32         = syscall.NewLazyDLL("gdi32.dll")
	procCreatePen = gdi32.NewProc("CreatePen")
	procRectangle = gdi32.NewProc("Rectangle")
	procTextOutW  = gdi32.NewProc("TextOutW")

	psDash = uintptr(1) // PS_DASH
)

// Host owns the native overlay surfaces and the Win32 message loop. One
// surface is created per screen; Run pumps messages on the calling
// goroutine until Quit.
type Host struct {
	surfaces []*nativeSurface
}

// surfaceByHwnd routes wndproc callbacks back to their surface. Only the
// UI thread touches it.
var surfaceByHwnd = map[win.HWND]*nativeSurface{}

// NewHost creates an empty host.
func NewHost() *Host { return &Host{} }

// NewSurface creates a surface targeting the given screen bounds. The
// window handle is created lazily on Show/ShowFullScreen so placement
// flags set beforehand take effect at creation.
func (h *Host) NewSurface(screen geometry.Rect) *nativeSurface {
	s := &nativeSurface{host: h, screen: screen}
	h.surfaces = append(h.surfaces, s)
	return s
}

// Bind attaches the overlay window a surface renders and dispatches to.
func (h *Host) Bind(s *nativeSurface, w *Window) { s.window = w }

// Run pumps the Win32 message loop until Quit posts WM_QUIT.
func (h *Host) Run() error {
	var msg win.MSG
	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 {
			log.Printf("Host: WM_QUIT received")
			return nil
		}
		if ret == -1 {
			return fmt.Errorf("GetMessage failed")
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

// Quit ends the message loop. It may be called from any goroutine, so
// the windows are closed via posted messages; the last WM_DESTROY posts
// the quit from the UI thread itself.
func (h *Host) Quit() {
	closed := false
	for _, s := range h.surfaces {
		if s.hwnd != 0 {
			win.PostMessage(s.hwnd, win.WM_CLOSE, 0, 0)
			closed = true
		}
	}
	if !closed {
		win.PostQuitMessage(0)
	}
}

// MinimizeAll minimizes every overlay surface.
func (h *Host) MinimizeAll() {
	for _, s := range h.surfaces {
		if s.hwnd != 0 {
			win.ShowWindow(s.hwnd, win.SW_MINIMIZE)
		}
	}
}

// SetCursorWait switches to the wait cursor while the capture pipeline runs.
func (h *Host) SetCursorWait() {
	win.SetCursor(win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_WAIT)))
}

type nativeSurface struct {
	host   *Host
	window *Window
	screen geometry.Rect
	hwnd   win.HWND

	title     string
	flags     Flags
	alphaByte byte
}

func (s *nativeSurface) SetTitle(title string) { s.title = title }

// The crosshair cursor is set through the window class; the accent color
// is painted per frame, so nothing is stored here.
func (s *nativeSurface) SetAccentBorder(color string) {}

func (s *nativeSurface) ApplyFlags(flags Flags) { s.flags = flags }

func (s *nativeSurface) SetBackground(r, g, b uint8, alpha float64) {
	// Layered-window alpha; keep at least one step above zero so the
	// window still receives mouse input.
	a := byte(alpha * 255)
	if alpha > 0 && a == 0 {
		a = 1
	}
	s.alphaByte = a
}

func (s *nativeSurface) SetStrongFocus() {}

func (s *nativeSurface) ForceActive() {
	if s.hwnd != 0 {
		win.SetForegroundWindow(s.hwnd)
		win.SetFocus(s.hwnd)
	}
}

func (s *nativeSurface) Move(x, y int) { s.screen.Left, s.screen.Top = x, y }

func (s *nativeSurface) SetMinimumSize(w, h int) {
	s.screen.Right = s.screen.Left + w
	s.screen.Bottom = s.screen.Top + h
}

func (s *nativeSurface) SetGeometry(x, y, w, h int) {
	s.screen = geometry.Rect{Top: y, Left: x, Bottom: y + h, Right: x + w}
	s.show()
}

func (s *nativeSurface) Show()           { s.show() }
func (s *nativeSurface) ShowFullScreen() { s.show() }

func (s *nativeSurface) Redraw() {
	if s.hwnd == 0 {
		return
	}
	win.InvalidateRect(s.hwnd, nil, false)
	win.UpdateWindow(s.hwnd)
}

func (s *nativeSurface) show() {
	if s.hwnd != 0 {
		win.ShowWindow(s.hwnd, win.SW_SHOW)
		return
	}
	if err := s.create(); err != nil {
		log.Printf("Surface: Create failed: %v", err)
		return
	}
	win.ShowWindow(s.hwnd, win.SW_SHOW)
	win.SetForegroundWindow(s.hwnd)
	win.SetFocus(s.hwnd)
	win.UpdateWindow(s.hwnd)
}

func (s *nativeSurface) create() error {
	classNameStr := fmt.Sprintf("CaptureOverlay_%d", time.Now().UnixNano())
	className := syscall.StringToUTF16Ptr(classNameStr)
	wndClass := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		Style:         win.CS_HREDRAW | win.CS_VREDRAW,
		LpfnWndProc:   syscall.NewCallback(overlayWndProc),
		HInstance:     win.GetModuleHandle(nil),
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_CROSS)),
		HbrBackground: 0,
		LpszClassName: className,
	}
	if atom := win.RegisterClassEx(&wndClass); atom == 0 {
		return fmt.Errorf("failed to register window class")
	}

	exStyle := uint32(win.WS_EX_LAYERED)
	if s.flags.AlwaysOnTop {
		exStyle |= win.WS_EX_TOPMOST
	}
	style := uint32(win.WS_VISIBLE)
	if s.flags.Frameless {
		style |= win.WS_POPUP
	} else {
		style |= win.WS_OVERLAPPEDWINDOW
	}

	s.hwnd = win.CreateWindowEx(
		exStyle,
		className,
		syscall.StringToUTF16Ptr(s.title),
		style,
		int32(s.screen.Left), int32(s.screen.Top),
		int32(s.screen.Width()), int32(s.screen.Height()),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if s.hwnd == 0 {
		return fmt.Errorf("failed to create overlay window")
	}

	win.SetLayeredWindowAttributes(s.hwnd, 0, s.alphaByte, win.LWA_ALPHA)
	surfaceByHwnd[s.hwnd] = s
	log.Printf("Surface: Overlay window created for screen at (%d,%d)", s.screen.Left, s.screen.Top)
	return nil
}

func overlayWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	s := surfaceByHwnd[hwnd]
	if s == nil || s.window == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_LBUTTONDOWN:
		win.SetCapture(hwnd)
		s.window.MousePress(pointerX(lParam), pointerY(lParam), ButtonPrimary)
		return 0

	case win.WM_MOUSEMOVE:
		s.window.MouseMove(pointerX(lParam), pointerY(lParam))
		return 0

	case win.WM_LBUTTONUP:
		win.ReleaseCapture()
		s.window.MouseRelease(pointerX(lParam), pointerY(lParam), ButtonPrimary)
		return 0

	case win.WM_KEYDOWN:
		if wParam == win.VK_ESCAPE {
			s.window.KeyEscape()
		}
		return 0

	case win.WM_ACTIVATE:
		if win.LOWORD(uint32(wParam)) != 0 { // not WA_INACTIVE
			s.window.Activated()
		}
		return 0

	case win.WM_PAINT:
		var ps win.PAINTSTRUCT
		hdc := win.BeginPaint(hwnd, &ps)
		s.paint(hdc)
		win.EndPaint(hwnd, &ps)
		return 0

	case win.WM_NCHITTEST:
		// Treat the whole window as client area so mouse events arrive.
		return uintptr(win.HTCLIENT)

	case win.WM_DESTROY:
		delete(surfaceByHwnd, hwnd)
		s.hwnd = 0
		if len(surfaceByHwnd) == 0 {
			win.PostQuitMessage(0)
		}
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (s *nativeSurface) paint(hdc win.HDC) {
	frame := s.window.Frame()
	if !frame.Selecting {
		return
	}

	r, g, b := parseAccentColor(frame.Accent)
	colorref := uintptr(uint32(b)<<16 | uint32(g)<<8 | uint32(r))

	pen, _, _ := procCreatePen.Call(psDash, uintptr(frame.PenWidth), colorref)
	oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
	oldBrush := win.SelectObject(hdc, win.GetStockObject(win.NULL_BRUSH))

	procRectangle.Call(
		uintptr(hdc),
		uintptr(frame.Rect.Left), uintptr(frame.Rect.Top),
		uintptr(frame.Rect.Right), uintptr(frame.Rect.Bottom),
	)

	if frame.Glyph != "" {
		win.SetBkMode(hdc, win.TRANSPARENT)
		win.SetTextColor(hdc, win.COLORREF(colorref))
		glyph := syscall.StringToUTF16(frame.Glyph)
		procTextOutW.Call(
			uintptr(hdc),
			uintptr(frame.GlyphX), uintptr(frame.GlyphY),
			uintptr(unsafe.Pointer(&glyph[0])), uintptr(len(glyph)-1),
		)
	}

	win.SelectObject(hdc, oldBrush)
	win.SelectObject(hdc, oldPen)
	win.DeleteObject(win.HGDIOBJ(pen))
}

func pointerX(lParam uintptr) int { return int(int16(win.LOWORD(uint32(lParam)))) }
func pointerY(lParam uintptr) int { return int(int16(win.HIWORD(uint32(lParam)))) }
