package geometry

// PenWidth is the width of the border drawn around an in-progress
// selection. ToGlobal shrinks the final rectangle by this amount so the
// drawn border is excluded from the captured region.
const PenWidth = 2

// marginCorrection compensates for selections drawn from bottom/right to
// top/left coming out slightly larger than the opposite direction and
// picking up pixels of the dashed border. The value was measured against
// the rendering stack, not derived; recalibrate if the toolkit changes.
const marginCorrection = 4

// Rect is an axis-aligned rectangle given by its four edges. Edges are
// window-local or global depending on context; conversion between the
// two spaces must go through ToGlobal.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Geometry returns the rectangle as (x, y, width, height).
func (r Rect) Geometry() (x, y, w, h int) {
	return r.Left, r.Top, r.Width(), r.Height()
}

// ToGlobal translates a window-local rectangle into global desktop
// coordinates for the given screen geometry, then shrinks it by PenWidth
// on all sides to remove the selection border from the capture.
func ToGlobal(r, screen Rect) Rect {
	if screen.Left != 0 {
		r.Left += screen.Left
		r.Right += screen.Left
	}
	if screen.Top != 0 {
		r.Top += screen.Top
		r.Bottom += screen.Top
	}

	r.Left += PenWidth
	r.Top += PenWidth
	r.Right -= PenWidth
	r.Bottom -= PenWidth
	return r
}

// Sanitize orders the edges of a rectangle that may be inverted because
// the user dragged toward the top or the left. Each axis is corrected
// independently; an axis that is already ordered is returned untouched,
// an inverted axis is swapped and pulled inward by marginCorrection on
// both resulting edges.
func Sanitize(r Rect) Rect {
	if r.Top > r.Bottom {
		bottom := r.Top - marginCorrection
		top := r.Bottom + marginCorrection
		r.Top = top
		r.Bottom = bottom
	}
	if r.Left > r.Right {
		left := r.Right + marginCorrection
		right := r.Left - marginCorrection
		r.Right = right
		r.Left = left
	}
	return r
}
