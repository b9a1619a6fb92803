// Package pointset is a brute-force point collection. It answers the same
// queries as kdtree.Tree with linear scans over an ordered set, and serves
// as a reference when checking or measuring the tree.
package pointset

import (
	"fmt"
	"math"

	"github.com/google/btree"

	"github.com/peterstace/kdtree"
)

const degree = 32

var _ kdtree.Index = (*Set)(nil)

// Set is an ordered set of points. Its zero value is not usable; create one
// with New.
type Set struct {
	points *btree.BTreeG[kdtree.Point]
}

// New creates an empty set.
func New() *Set {
	return &Set{points: btree.NewG[kdtree.Point](degree, kdtree.Point.Less)}
}

// Size gives the number of distinct points in the set.
func (s *Set) Size() int { return s.points.Len() }

// IsEmpty reports whether the set holds no points.
func (s *Set) IsEmpty() bool { return s.points.Len() == 0 }

// Insert adds p to the set if it is not already present. Unlike a Tree, a
// Set has no domain and accepts any point.
func (s *Set) Insert(p kdtree.Point) error {
	if missing(p) {
		return fmt.Errorf("%w: insert called with a missing point", kdtree.ErrInvalidArgument)
	}
	s.points.ReplaceOrInsert(p)
	return nil
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p kdtree.Point) (bool, error) {
	if missing(p) {
		return false, fmt.Errorf("%w: contains called with a missing point", kdtree.ErrInvalidArgument)
	}
	return s.points.Has(p), nil
}

// Range gives every point inside r or on its boundary, in ascending order.
func (s *Set) Range(r kdtree.Rect) ([]kdtree.Point, error) {
	if !(r.MinX <= r.MaxX && r.MinY <= r.MaxY) {
		return nil, fmt.Errorf("%w: range called with a missing rectangle", kdtree.ErrInvalidArgument)
	}
	var found []kdtree.Point
	s.points.Ascend(func(p kdtree.Point) bool {
		if r.Contains(p) {
			found = append(found, p)
		}
		return true
	})
	return found, nil
}

// Nearest gives the point closest to q, preferring the first in ascending
// order among equally close points. The boolean result is false when the set
// is empty.
func (s *Set) Nearest(q kdtree.Point) (kdtree.Point, bool, error) {
	if missing(q) {
		return kdtree.Point{}, false, fmt.Errorf("%w: nearest called with a missing point", kdtree.ErrInvalidArgument)
	}
	var (
		best     kdtree.Point
		bestDist float64
		found    bool
	)
	s.points.Ascend(func(p kdtree.Point) bool {
		if d := p.DistanceSquaredTo(q); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
		return true
	})
	return best, found, nil
}

func missing(p kdtree.Point) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}
