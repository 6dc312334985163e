package engine

import (
	"cmp"
	"fmt"

	"github.com/piwi3910/binpack/internal/model"
)

// SortFunc compares two items for presorting. Negative means a goes first.
type SortFunc func(a, b model.Item) int

// SortArea orders by area, largest first.
func SortArea(a, b model.Item) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter orders by perimeter, largest first.
func SortPerimeter(a, b model.Item) int {
	return cmp.Compare(b.Width+b.Height, a.Width+a.Height)
}

// SortMaxSide orders by the longer side, largest first.
func SortMaxSide(a, b model.Item) int {
	return cmp.Compare(max(b.Width, b.Height), max(a.Width, a.Height))
}

// SortMinSide orders by the shorter side, largest first.
func SortMinSide(a, b model.Item) int {
	return cmp.Compare(min(b.Width, b.Height), min(a.Width, a.Height))
}

// SortWidth orders by width, widest first.
func SortWidth(a, b model.Item) int {
	return cmp.Compare(b.Width, a.Width)
}

// SortHeight orders by height, tallest first. This is the classic order for shelf packing.
func SortHeight(a, b model.Item) int {
	return cmp.Compare(b.Height, a.Height)
}

// sortFunc resolves a SortOrder. SortNone and the empty string yield nil.
func sortFunc(order model.SortOrder) (SortFunc, error) {
	switch order {
	case model.SortNone, "":
		return nil, nil
	case model.SortArea:
		return SortArea, nil
	case model.SortPerimeter:
		return SortPerimeter, nil
	case model.SortMaxSide:
		return SortMaxSide, nil
	case model.SortMinSide:
		return SortMinSide, nil
	case model.SortWidth:
		return SortWidth, nil
	case model.SortHeight:
		return SortHeight, nil
	}
	return nil, fmt.Errorf("unknown sort order %q", order)
}
