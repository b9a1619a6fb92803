// Package kdtree implements a 2D-tree: an in-memory index over points in the
// plane supporting membership, rectangle range, and nearest neighbour
// queries.
//
// Each node splits the region it is responsible for at its own point,
// alternating between vertical and horizontal splits by depth. A Tree is not
// safe for concurrent use while an Insert is in progress.
package kdtree

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned (possibly wrapped) whenever a point or
// rectangle argument is missing or malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// Axis is the coordinate a tree level compares and splits on.
type Axis int

const (
	// Vertical levels compare X and split with a vertical line.
	Vertical Axis = iota
	// Horizontal levels compare Y and split with a horizontal line.
	Horizontal
)

// Opposite gives the axis used by the next level of the tree.
func (a Axis) Opposite() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Index is the set of operations shared by point collections that answer
// membership, range, and nearest neighbour queries.
type Index interface {
	Size() int
	IsEmpty() bool
	Insert(p Point) error
	Contains(p Point) (bool, error)
	Range(r Rect) ([]Point, error)
	Nearest(q Point) (Point, bool, error)
}

var _ Index = (*Tree)(nil)

// none marks a missing child.
const none = -1

type node struct {
	point  Point
	region Rect
	axis   Axis
	left   int // left or bottom
	right  int // right or top
}

// Tree is a 2D-tree. Its zero value is an empty tree over UnitSquare.
type Tree struct {
	// nodes[0] is the root once the tree is non-empty.
	nodes     []node
	domain    Rect
	hasDomain bool
}

// New creates an empty tree over UnitSquare.
func New() *Tree {
	return &Tree{}
}

// NewWithDomain creates an empty tree whose root region is domain. Only
// points inside domain may be inserted.
func NewWithDomain(domain Rect) (*Tree, error) {
	if !domain.valid() {
		return nil, fmt.Errorf("%w: malformed domain %v", ErrInvalidArgument, domain)
	}
	return &Tree{domain: domain, hasDomain: true}, nil
}

// Domain gives the region of the root node.
func (t *Tree) Domain() Rect {
	if !t.hasDomain {
		return UnitSquare
	}
	return t.domain
}

// Size gives the number of distinct points in the tree.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// IsEmpty reports whether the tree holds no points.
func (t *Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Height gives the number of nodes on the longest root to leaf path.
func (t *Tree) Height() int {
	if len(t.nodes) == 0 {
		return 0
	}
	type item struct{ n, depth int }
	var height int
	stack := []item{{0, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > height {
			height = it.depth
		}
		n := &t.nodes[it.n]
		for _, child := range [2]int{n.left, n.right} {
			if child != none {
				stack = append(stack, item{child, it.depth + 1})
			}
		}
	}
	return height
}

// Contains reports whether p is in the tree.
func (t *Tree) Contains(p Point) (bool, error) {
	if !p.valid() {
		return false, fmt.Errorf("%w: contains called with a missing point", ErrInvalidArgument)
	}
	current := 0
	if len(t.nodes) == 0 {
		current = none
	}
	for current != none {
		n := &t.nodes[current]
		if n.point == p {
			return true, nil
		}
		if p.coord(n.axis) < n.point.coord(n.axis) {
			current = n.left
		} else {
			current = n.right
		}
	}
	return false, nil
}

// Range gives every point of the tree that lies inside r or on its boundary.
// The order of the result is unspecified.
func (t *Tree) Range(r Rect) ([]Point, error) {
	if !r.valid() {
		return nil, fmt.Errorf("%w: range called with a missing rectangle", ErrInvalidArgument)
	}
	if len(t.nodes) == 0 {
		return nil, nil
	}
	var found []Point
	stack := []int{0}
	for len(stack) > 0 {
		n := &t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		// Every point below n lies within n's region.
		if !n.region.Intersects(r) {
			continue
		}
		if r.Contains(n.point) {
			found = append(found, n.point)
		}
		if n.right != none {
			stack = append(stack, n.right)
		}
		if n.left != none {
			stack = append(stack, n.left)
		}
	}
	return found, nil
}

// Nearest gives the point of the tree closest to q. The boolean result is
// false when the tree is empty. Among equally close points, the one that
// sorts first under Point.Less is returned.
func (t *Tree) Nearest(q Point) (Point, bool, error) {
	if !q.valid() {
		return Point{}, false, fmt.Errorf("%w: nearest called with a missing point", ErrInvalidArgument)
	}
	if len(t.nodes) == 0 {
		return Point{}, false, nil
	}

	// bound is a lower bound on the distance from q to any point below n.
	type item struct {
		n     int
		bound float64
	}
	best := t.nodes[0].point
	bestDist := best.DistanceSquaredTo(q)
	stack := []item{{0, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Equal bounds are still visited, as they may hold a tie that sorts
		// before the current best.
		if it.bound > bestDist {
			continue
		}
		n := &t.nodes[it.n]
		if d := n.point.DistanceSquaredTo(q); d < bestDist || (d == bestDist && n.point.Less(best)) {
			best, bestDist = n.point, d
		}

		near, far := n.left, n.right
		if q.coord(n.axis) >= n.point.coord(n.axis) {
			near, far = far, near
		}
		// Push far first so that near is searched first.
		if far != none {
			stack = append(stack, item{far, t.nodes[far].region.DistanceSquaredTo(q)})
		}
		if near != none {
			stack = append(stack, item{near, t.nodes[near].region.DistanceSquaredTo(q)})
		}
	}
	return best, true, nil
}

// Walk visits every node in pre-order, left/bottom before right/top, passing
// its point, region and axis to fn. The walk stops early if fn returns
// false.
func (t *Tree) Walk(fn func(p Point, region Rect, axis Axis) bool) {
	if len(t.nodes) == 0 {
		return
	}
	stack := []int{0}
	for len(stack) > 0 {
		n := &t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if !fn(n.point, n.region, n.axis) {
			return
		}
		if n.right != none {
			stack = append(stack, n.right)
		}
		if n.left != none {
			stack = append(stack, n.left)
		}
	}
}
