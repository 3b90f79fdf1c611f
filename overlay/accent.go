package overlay

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAccentColor parses a "#RRGGBB" accent string. Invalid input falls
// back to an opaque magenta so a misconfigured color is visible rather
// than invisible.
func parseAccentColor(s string) (r, g, b uint8) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0xFF, 0x2E, 0x88
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0xFF, 0x2E, 0x88
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// formatAccentColor renders RGB components back to "#RRGGBB".
func formatAccentColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
