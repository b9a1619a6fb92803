package kdtree

import "fmt"

// Insert adds p to the tree. Inserting a point that is already present has
// no effect. The point must lie within the tree's domain.
func (t *Tree) Insert(p Point) error {
	if !p.valid() {
		return fmt.Errorf("%w: insert called with a missing point", ErrInvalidArgument)
	}
	domain := t.Domain()
	if !domain.Contains(p) {
		return fmt.Errorf("%w: point %v is outside of domain %v", ErrInvalidArgument, p, domain)
	}

	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{point: p, region: domain, axis: Vertical, left: none, right: none})
		return nil
	}

	current := 0
	for {
		n := &t.nodes[current]
		if n.point == p {
			return nil
		}

		// Points that tie on the axis coordinate go right/top.
		low := p.coord(n.axis) < n.point.coord(n.axis)
		child := &n.right
		if low {
			child = &n.left
		}
		if *child != none {
			current = *child
			continue
		}

		lowRegion, highRegion := n.region.split(n.point, n.axis)
		region := highRegion
		if low {
			region = lowRegion
		}
		axis := n.axis.Opposite()
		*child = len(t.nodes)
		t.nodes = append(t.nodes, node{point: p, region: region, axis: axis, left: none, right: none})
		return nil
	}
}
