// Package shelf implements shelf-based 2D packing.
//
// A Sheet is a bounded area filled top to bottom with Shelves: horizontal
// strips whose height is fixed by the first item placed in them. Items are laid
// left to right inside a shelf. Which shelf an item goes to is decided by a
// Heuristic; when no existing shelf can take the item a new one is opened below
// the last, as long as the sheet has vertical room left.
package shelf

import "github.com/piwi3910/binpack/internal/model"

// Shelf is a fixed-height strip that packs items left to right.
type Shelf struct {
	width     int
	height    int
	y         int
	available int
	items     []model.Item
}

// NewShelf returns an empty shelf at vertical offset y.
func NewShelf(width, height, y int) *Shelf {
	return &Shelf{
		width:     width,
		height:    height,
		y:         y,
		available: width,
	}
}

func (s *Shelf) Width() int          { return s.width }
func (s *Shelf) Height() int         { return s.height }
func (s *Shelf) Y() int              { return s.y }
func (s *Shelf) AvailableWidth() int { return s.available }

// Items returns a copy of the shelf contents in insertion order.
func (s *Shelf) Items() []model.Item {
	return append([]model.Item(nil), s.items...)
}

func (s *Shelf) fits(item model.Item) bool {
	return item.Width <= s.available && item.Height <= s.height
}

// Insert appends item if it fits the remaining width and the shelf height.
// On false the shelf is unchanged.
func (s *Shelf) Insert(item model.Item) bool {
	_, ok := s.Place(item)
	return ok
}

// Place is Insert that also reports the corner of the placed item.
func (s *Shelf) Place(item model.Item) (model.CornerPoint, bool) {
	if !item.Valid() || !s.fits(item) {
		return model.CornerPoint{}, false
	}
	corner := model.CornerPoint{X: s.width - s.available, Y: s.y}
	s.items = append(s.items, item)
	s.available -= item.Width
	return corner, true
}

// ShelfState is a read-only snapshot of a shelf.
type ShelfState struct {
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	Y              int          `json:"y"`
	AvailableWidth int          `json:"available_width"`
	Items          []model.Item `json:"items"`
}

// State returns a snapshot of the shelf.
func (s *Shelf) State() ShelfState {
	return ShelfState{
		Width:          s.width,
		Height:         s.height,
		Y:              s.y,
		AvailableWidth: s.available,
		Items:          s.Items(),
	}
}

// Placements returns the corner of every item on the shelf, left to right.
func (s *Shelf) Placements() []model.Placement {
	placements := make([]model.Placement, 0, len(s.items))
	x := 0
	for _, item := range s.items {
		placements = append(placements, model.Placement{
			Corner: model.CornerPoint{X: x, Y: s.y},
			Item:   item,
		})
		x += item.Width
	}
	return placements
}
