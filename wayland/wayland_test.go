package wayland

import (
	"strings"
	"testing"

	"screen-capture-overlay/geometry"
)

func TestEvalScriptCarriesScreenGeometry(t *testing.T) {
	script := evalScript(geometry.Rect{Top: 0, Left: 1920, Bottom: 1080, Right: 3840})

	if !strings.Contains(script, "move_resize_frame(0, 1920, 0, 1920, 1080)") {
		t.Fatalf("Expected move_resize_frame with screen geometry, got:\n%s", script)
	}
	if !strings.Contains(script, "has_focus()") {
		t.Fatal("Expected script to target the focused window")
	}
}
