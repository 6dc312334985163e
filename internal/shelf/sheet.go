package shelf

import (
	"fmt"

	"github.com/piwi3910/binpack/internal/model"
)

// Sheet stacks shelves inside a fixed width x height area.
//
// A Sheet is not safe for concurrent use.
type Sheet struct {
	width   int
	height  int
	used    int // sum of shelf heights
	shelves []*Shelf
	placed  []model.Placement
}

// NewSheet returns an empty sheet.
func NewSheet(width, height int) (*Sheet, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("sheet dimensions must not be negative (given %dx%d)", width, height)
	}
	return &Sheet{width: width, height: height}, nil
}

func (s *Sheet) Width() int  { return s.width }
func (s *Sheet) Height() int { return s.height }

// RemainingHeight returns the vertical space not yet claimed by a shelf.
func (s *Sheet) RemainingHeight() int {
	return s.height - s.used
}

// Insert places item on the shelf chosen by h, opening a new shelf if none fits.
// It reports false, with the sheet unchanged, when the item cannot be placed.
// An invalid h yields ErrUnknownHeuristic.
func (s *Sheet) Insert(item model.Item, h Heuristic) (bool, error) {
	_, ok, err := s.Place(item, h)
	return ok, err
}

// Place is Insert that also reports the corner of the placed item.
func (s *Sheet) Place(item model.Item, h Heuristic) (model.CornerPoint, bool, error) {
	if !h.Valid() {
		return model.CornerPoint{}, false, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(h))
	}
	if !item.Valid() {
		return model.CornerPoint{}, false, nil
	}

	target := choose(s.shelves, item, h)
	if target < 0 {
		if item.Height > s.RemainingHeight() || item.Width > s.width {
			return model.CornerPoint{}, false, nil
		}
		s.shelves = append(s.shelves, NewShelf(s.width, item.Height, s.used))
		s.used += item.Height
		target = len(s.shelves) - 1
	}

	corner, ok := s.shelves[target].Place(item)
	if !ok {
		// choose and the new-shelf sizing both guarantee a fit.
		panic(fmt.Sprintf("shelf %d rejected item %v it was selected for", target, item))
	}
	s.placed = append(s.placed, model.Placement{Corner: corner, Item: item})
	return corner, true, nil
}

// Items returns every placed item in arrival order.
func (s *Sheet) Items() []model.Item {
	items := make([]model.Item, len(s.placed))
	for i, p := range s.placed {
		items[i] = p.Item
	}
	return items
}

// Placements returns every placed item with its corner, in arrival order.
func (s *Sheet) Placements() []model.Placement {
	return append([]model.Placement(nil), s.placed...)
}

// Len returns the number of shelves.
func (s *Sheet) Len() int {
	return len(s.shelves)
}

// Shelves returns snapshots of all shelves, top to bottom.
func (s *Sheet) Shelves() []ShelfState {
	states := make([]ShelfState, len(s.shelves))
	for i, sh := range s.shelves {
		states[i] = sh.State()
	}
	return states
}

// Stats summarises the sheet in the same shape as the bin tree statistics.
// Width is the sheet width once a shelf exists and Height the total shelf height.
func (s *Sheet) Stats() model.Stats {
	stats := model.Stats{
		Height: s.used,
		Items:  s.Placements(),
	}
	if len(s.shelves) > 0 {
		stats.Width = s.width
	}
	stats.Area = stats.Width * stats.Height
	for _, p := range s.placed {
		stats.UsedArea += p.Item.Area()
	}
	stats.Efficiency = 1.0
	if stats.Area != 0 {
		stats.Efficiency = float64(stats.UsedArea) / float64(stats.Area)
	}
	return stats
}

// FreeRegions returns the unused tail of each shelf and the space below the last shelf.
func (s *Sheet) FreeRegions() []model.Placement {
	var free []model.Placement
	for _, sh := range s.shelves {
		if sh.available > 0 {
			free = append(free, model.Placement{
				Corner: model.CornerPoint{X: sh.width - sh.available, Y: sh.y},
				Item:   model.NewItem(sh.available, sh.height),
			})
		}
	}
	if rest := s.RemainingHeight(); rest > 0 && s.width > 0 {
		free = append(free, model.Placement{
			Corner: model.CornerPoint{X: 0, Y: s.used},
			Item:   model.NewItem(s.width, rest),
		})
	}
	return free
}
