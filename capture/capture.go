// Package capture holds the contract between the overlay core and the
// downstream capture/OCR pipeline. The pipeline itself lives outside this
// module; the overlay only reads the active mode and hands over regions.
package capture

import (
	"context"

	"screen-capture-overlay/geometry"
)

// Mode selects what the downstream pipeline does with a captured region.
type Mode int

const (
	// ModeRaw extracts text as-is.
	ModeRaw Mode = iota
	// ModeParse extracts structured/parsed text.
	ModeParse
	// ModeUnknown is any mode this core does not recognize.
	ModeUnknown
)

// ParseMode maps a config string to a Mode. Unrecognized values map to
// ModeUnknown rather than failing; the overlay only uses the mode for
// the indicator glyph.
func ParseMode(s string) Mode {
	switch s {
	case "raw":
		return ModeRaw
	case "parse":
		return ModeParse
	default:
		return ModeUnknown
	}
}

// ModeProvider reports the currently active capture mode. It is polled
// once at selection start.
type ModeProvider interface {
	Mode() Mode
}

// ModeFunc adapts a plain function to ModeProvider.
type ModeFunc func() Mode

func (f ModeFunc) Mode() Mode { return f() }

// Region is a capture request in global virtual-screen coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RegionFromRect converts a sanitized global rectangle into a Region.
func RegionFromRect(r geometry.Rect) Region {
	return Region{X: r.Left, Y: r.Top, Width: r.Width(), Height: r.Height()}
}

// Sink consumes completed selections. Implementations do the heavy
// work (pixel capture, OCR) and must honor the context deadline.
type Sink interface {
	HandleRegion(ctx context.Context, region Region, screenIndex int) error
}
