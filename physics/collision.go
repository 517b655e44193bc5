package physics

// Rect is an axis-aligned bounding box in screen space (y grows downward)
// Edges are half-open: a box covers [Left, Right) x [Top, Bottom)
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromBottom builds a box from its left edge, its bottom edge and its size
func RectFromBottom(left, bottom, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    bottom - height,
		Right:  left + width,
		Bottom: bottom,
	}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Overlaps reports strict overlap on both axes
// Boxes sharing only an edge coordinate do not overlap
func Overlaps(a, b Rect) bool {
	horizontal := a.Left < b.Right && a.Right > b.Left
	vertical := a.Top < b.Bottom && a.Bottom > b.Top
	return horizontal && vertical
}
