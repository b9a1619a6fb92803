package kdtree

import (
	"fmt"
	"strconv"
)

// Rect is an axis-aligned rectangle. Its boundary belongs to it.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// UnitSquare is the default domain of a Tree.
var UnitSquare = Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}

// NewRect creates a rectangle from its corners. The minimums must not exceed
// the maximums.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	r := Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if !r.valid() {
		return Rect{}, fmt.Errorf("%w: malformed rectangle %v", ErrInvalidArgument, r)
	}
	return r, nil
}

// valid reports whether r is well formed. NaN coordinates and inverted
// extents stand for a missing argument.
func (r Rect) valid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// ContainsRect reports whether other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.MinX >= r.MinX && other.MaxX <= r.MaxX &&
		other.MinY >= r.MinY && other.MaxY <= r.MaxY
}

// Intersects reports whether r and other share at least one point. Touching
// boundaries count.
func (r Rect) Intersects(other Rect) bool {
	return true &&
		(r.MinX <= other.MaxX) && (r.MaxX >= other.MinX) &&
		(r.MinY <= other.MaxY) && (r.MaxY >= other.MinY)
}

// DistanceSquaredTo gives the squared distance from p to the closest point of
// r. It is zero when r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	var dx, dy float64
	if p.X < r.MinX {
		dx = p.X - r.MinX
	} else if p.X > r.MaxX {
		dx = p.X - r.MaxX
	}
	if p.Y < r.MinY {
		dy = p.Y - r.MinY
	} else if p.Y > r.MaxY {
		dy = p.Y - r.MaxY
	}
	return dx*dx + dy*dy
}

func (r Rect) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "[" + f(r.MinX) + ", " + f(r.MaxX) + "] x [" + f(r.MinY) + ", " + f(r.MaxY) + "]"
}

// split divides r at p along axis a, where p must lie within r. The low half
// holds the coordinates strictly below p on that axis and the high half the
// rest. Both halves keep r's extent on the other axis.
func (r Rect) split(p Point, a Axis) (low, high Rect) {
	low, high = r, r
	if a == Vertical {
		low.MaxX, high.MinX = p.X, p.X
	} else {
		low.MaxY, high.MinY = p.Y, p.Y
	}
	return low, high
}
