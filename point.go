package kdtree

import (
	"math"
	"strconv"
)

// Point is a location in the plane. Points are compared by exact value.
type Point struct {
	X, Y float64
}

// DistanceSquaredTo gives the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Less orders points by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// valid reports whether p can take part in comparisons. A point with a NaN
// coordinate stands for a missing argument.
func (p Point) valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// coord gives the coordinate of p that is compared along axis a.
func (p Point) coord(a Axis) float64 {
	if a == Vertical {
		return p.X
	}
	return p.Y
}
