//go:build windows

package main

import (
	"log"

	"golang.org/x/sys/windows"
)

// enableDPIAwareness sets per-monitor DPI awareness so screen geometry
// matches physical pixels; without it selections are offset on scaled
// displays.
func enableDPIAwareness() {
	shcore := windows.NewLazySystemDLL("Shcore.dll")
	setProcessDpiAwareness := shcore.NewProc("SetProcessDpiAwareness")
	const processPerMonitorDPIAware = 2
	if err := setProcessDpiAwareness.Find(); err == nil {
		ret, _, _ := setProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
		if ret == 0 {
			log.Printf("DPI: Set per-monitor DPI awareness")
		} else {
			log.Printf("DPI: SetProcessDpiAwareness failed, error code: %d", ret)
		}
		return
	}

	user32 := windows.NewLazySystemDLL("user32.dll")
	setProcessDPIAware := user32.NewProc("SetProcessDPIAware")
	if err := setProcessDPIAware.Find(); err == nil {
		if ret, _, _ := setProcessDPIAware.Call(); ret != 0 {
			log.Printf("DPI: Set system DPI awareness (fallback)")
		} else {
			log.Printf("DPI: SetProcessDPIAware failed")
		}
	} else {
		log.Printf("DPI: No DPI awareness API available")
	}
}
