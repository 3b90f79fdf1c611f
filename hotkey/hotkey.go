// Package hotkey listens for a global key combination and fires a
// callback, used by the application shell to start an overlay session.
package hotkey

import (
	"log"
	"strings"

	gohook "github.com/robotn/gohook"
)

// Listen starts a background goroutine watching for the configured
// combination (e.g. "Ctrl+Alt+Q") and invokes callback each time it is
// pressed.
func Listen(combo string, callback func()) {
	keys := ParseCombo(combo)
	log.Printf("Hotkey: Listening for %v", keys)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("Hotkey: gohook.Start() returned nil channel")
			return
		}
		defer gohook.End()

		gohook.Register(gohook.KeyDown, keys, func(e gohook.Event) {
			log.Printf("Hotkey: Combination detected")
			callback()
		})
		<-gohook.Process(evChan)
	}()
}

// ParseCombo converts a combination like "Ctrl+Alt+q" into gohook key
// names.
func ParseCombo(combo string) []string {
	parts := strings.Split(strings.ToLower(combo), "+")
	var keys []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "ctrl":
			keys = append(keys, "ctrl")
		case "alt":
			keys = append(keys, "alt")
		case "shift":
			keys = append(keys, "shift")
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}

	return keys
}
