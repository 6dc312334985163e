package bintree

import "github.com/piwi3910/binpack/internal/model"

// Stats walks the tree and summarises it.
//
// Width is the sum of node widths along the chain of right children from the
// root and Height the sum of node heights along the chain of lower children.
// Both only approximate the consumed extent: a sibling subtree that is wider or
// taller than the followed chain is not counted. Items lists every occupied node
// in breadth-first order, right child before lower child.
func (t *Tree) Stats() model.Stats {
	var stats model.Stats

	for id := 0; id != none; id = t.nodes[id].children[0] {
		stats.Width += t.nodes[id].dims.Width
	}
	for id := 0; id != none; id = t.nodes[id].children[1] {
		stats.Height += t.nodes[id].dims.Height
	}
	stats.Area = stats.Width * stats.Height

	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := t.nodes[id]
		if n.occupied {
			stats.Items = append(stats.Items, model.Placement{Corner: n.corner, Item: n.item})
			stats.UsedArea += n.dims.Area()
		}
		for _, c := range n.children {
			if c != none {
				queue = append(queue, c)
			}
		}
	}

	stats.Efficiency = 1.0
	if stats.Area != 0 {
		stats.Efficiency = float64(stats.UsedArea) / float64(stats.Area)
	}
	return stats
}

// FreeRegions returns the unoccupied nodes, each as a placement-shaped free rectangle.
func (t *Tree) FreeRegions() []model.Placement {
	var free []model.Placement
	for _, n := range t.nodes {
		if !n.occupied && n.dims.Valid() {
			free = append(free, model.Placement{Corner: n.corner, Item: n.dims})
		}
	}
	return free
}
