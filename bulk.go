package kdtree

import (
	"fmt"
	"sort"
)

// BulkLoad builds a tree over domain holding the given points. Splitting at
// the median of each level keeps the tree's height logarithmic in the number
// of distinct points, independent of their order. Duplicates are dropped.
//
// The result is the same tree that inserting the points one at a time in
// pre-order would produce, so it answers every query exactly as an
// incrementally built tree would.
func BulkLoad(points []Point, domain Rect) (*Tree, error) {
	t, err := NewWithDomain(domain)
	if err != nil {
		return nil, err
	}
	items := make([]Point, len(points))
	copy(items, points)
	for _, p := range items {
		if !p.valid() {
			return nil, fmt.Errorf("%w: bulk load called with a missing point", ErrInvalidArgument)
		}
		if !domain.Contains(p) {
			return nil, fmt.Errorf("%w: point %v is outside of domain %v", ErrInvalidArgument, p, domain)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })
	distinct := items[:0]
	for i, p := range items {
		if i == 0 || p != items[i-1] {
			distinct = append(distinct, p)
		}
	}

	t.nodes = make([]node, 0, len(distinct))
	t.bulkInsert(distinct, domain, Vertical)
	return t, nil
}

func (t *Tree) bulkInsert(items []Point, region Rect, axis Axis) int {
	if len(items) == 0 {
		return none
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].coord(axis) < items[j].coord(axis)
	})

	// Move the split down past any equal coordinates, so that everything on
	// the left is strictly less than the split point on this axis.
	split := len(items) / 2
	for split > 0 && items[split-1].coord(axis) == items[split].coord(axis) {
		split--
	}

	n := len(t.nodes)
	t.nodes = append(t.nodes, node{point: items[split], region: region, axis: axis, left: none, right: none})
	low, high := region.split(items[split], axis)
	left := t.bulkInsert(items[:split], low, axis.Opposite())
	right := t.bulkInsert(items[split+1:], high, axis.Opposite())
	t.nodes[n].left = left
	t.nodes[n].right = right
	return n
}
