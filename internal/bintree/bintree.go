// Package bintree implements a guillotine-split free-space tree for 2D packing.
//
// The root starts as one free rectangle. Placing an item into a free node shrinks
// that node to the item and hangs the leftover space off it as up to two children:
// child 0 to the right of the item, child 1 below it. Every node caches the
// largest item that is known to fit somewhere in its subtree, which lets Insert
// skip subtrees that cannot take the item.
package bintree

import (
	"fmt"

	"github.com/piwi3910/binpack/internal/model"
)

// none marks a missing child or parent index.
const none = -1

// node is a single arena slot. Children and parent are indexes into Tree.nodes.
type node struct {
	dims     model.Item
	occupied bool
	item     model.Item
	corner   model.CornerPoint
	children [2]int
	parent   int
	largest  model.Item
}

// Tree is a guillotine free-space tree. The zero value is not usable; call New.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes []node
}

// New creates a tree with a single free root of the given size.
func New(width, height int) (*Tree, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("bin dimensions must not be negative (given %dx%d)", width, height)
	}
	dims := model.NewItem(width, height)
	return &Tree{
		nodes: []node{{
			dims:     dims,
			children: [2]int{none, none},
			parent:   none,
			largest:  dims,
		}},
	}, nil
}

// Insert places item in the first free node reached by cache-guided descent.
// It returns false without modifying the tree when no such node exists.
func (t *Tree) Insert(item model.Item) bool {
	_, ok := t.Place(item)
	return ok
}

// Place is Insert that also reports where the item landed.
func (t *Tree) Place(item model.Item) (model.CornerPoint, bool) {
	if !item.Valid() {
		return model.CornerPoint{}, false
	}
	id := 0
	for {
		n := &t.nodes[id]
		if !n.occupied && item.FitsIn(n.dims.Width, n.dims.Height) {
			t.split(id, item)
			return t.nodes[id].corner, true
		}
		next := none
		for _, c := range n.children {
			if c != none && item.FitsIn(t.nodes[c].largest.Width, t.nodes[c].largest.Height) {
				next = c
				break
			}
		}
		if next == none {
			return model.CornerPoint{}, false
		}
		id = next
	}
}

// split occupies node id with item and creates the leftover children.
func (t *Tree) split(id int, item model.Item) {
	n := t.nodes[id]
	right := model.NewItem(n.dims.Width-item.Width, item.Height)
	below := model.NewItem(n.dims.Width, n.dims.Height-item.Height)

	children := [2]int{none, none}
	if right.Width > 0 {
		children[0] = t.add(id, right, model.CornerPoint{X: n.corner.X + item.Width, Y: n.corner.Y})
	}
	if below.Height > 0 {
		children[1] = t.add(id, below, model.CornerPoint{X: n.corner.X, Y: n.corner.Y + item.Height})
	}

	// t.add may have grown the arena, so write through the slice again.
	p := &t.nodes[id]
	p.children = children
	p.dims = item
	p.item = item
	p.occupied = true
	t.calcLargestChild(id)
}

func (t *Tree) add(parent int, dims model.Item, corner model.CornerPoint) int {
	t.nodes = append(t.nodes, node{
		dims:     dims,
		corner:   corner,
		children: [2]int{none, none},
		parent:   parent,
		largest:  dims,
	})
	return len(t.nodes) - 1
}

// calcLargestChild recomputes the cache of id and of every ancestor up to the root.
func (t *Tree) calcLargestChild(id int) {
	for id != none {
		n := &t.nodes[id]
		var best model.Item
		if !n.occupied {
			best = n.dims
		}
		for _, c := range n.children {
			var cand model.Item
			if c != none {
				cand = t.nodes[c].largest
			}
			if cand.Area() > best.Area() {
				best = cand
			}
		}
		n.largest = best
		id = n.parent
	}
}

// NodeView is a read-only snapshot of one node.
type NodeView struct {
	ID       int
	Dims     model.Item
	Occupied bool
	Item     model.Item // zero when unoccupied
	Corner   model.CornerPoint
	Children [2]int // -1 for a missing child
	Parent   int    // -1 for the root
	Largest  model.Item
}

// HasChild reports whether child slot i (0 = right, 1 = below) exists.
func (v NodeView) HasChild(i int) bool {
	return v.Children[i] != none
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns a snapshot of the root node.
func (t *Tree) Root() NodeView {
	v, _ := t.Node(0)
	return v
}

// Node returns a snapshot of node id.
func (t *Tree) Node(id int) (NodeView, bool) {
	if id < 0 || id >= len(t.nodes) {
		return NodeView{}, false
	}
	n := t.nodes[id]
	return NodeView{
		ID:       id,
		Dims:     n.dims,
		Occupied: n.occupied,
		Item:     n.item,
		Corner:   n.corner,
		Children: n.children,
		Parent:   n.parent,
		Largest:  n.largest,
	}, true
}

// Child returns a snapshot of child slot i of node id.
func (t *Tree) Child(id, i int) (NodeView, bool) {
	if id < 0 || id >= len(t.nodes) || i < 0 || i > 1 {
		return NodeView{}, false
	}
	return t.Node(t.nodes[id].children[i])
}
