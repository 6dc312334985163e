package model

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Offcut is a free region of a packed bin large enough to be worth reusing.
type Offcut struct {
	ID       string `json:"id"`
	BinIndex int    `json:"bin_index"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func (o Offcut) Area() int {
	return o.Width * o.Height
}

// ToBinPreset converts an offcut into a bin preset so it can be packed again.
func (o Offcut) ToBinPreset() BinPreset {
	return NewBinPreset("Offcut "+o.ID, o.Width, o.Height, "")
}

// OffcutLimits sets the smallest free region that still counts as an offcut.
type OffcutLimits struct {
	MinSide int `json:"min_side"`
	MinArea int `json:"min_area"`
}

// DefaultOffcutLimits keeps anything at least 1x1.
func DefaultOffcutLimits() OffcutLimits {
	return OffcutLimits{MinSide: 1, MinArea: 1}
}

// DetectOffcuts returns the free regions of br that satisfy limits, largest first.
// Ties keep the order the packer reported them in.
func DetectOffcuts(br BinResult, limits OffcutLimits) []Offcut {
	var offcuts []Offcut
	for _, f := range br.Free {
		w, h := f.Item.Width, f.Item.Height
		if w < limits.MinSide || h < limits.MinSide || w*h < limits.MinArea {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:       uuid.New().String()[:8],
			BinIndex: br.Index,
			X:        f.Corner.X,
			Y:        f.Corner.Y,
			Width:    w,
			Height:   h,
		})
	}

	slices.SortStableFunc(offcuts, func(a, b Offcut) int {
		return cmp.Compare(b.Area(), a.Area())
	})
	return offcuts
}

// DetectAllOffcuts finds offcuts across every bin of a result.
func DetectAllOffcuts(result PackResult, limits OffcutLimits) []Offcut {
	var all []Offcut
	for _, b := range result.Bins {
		all = append(all, DetectOffcuts(b, limits)...)
	}
	return all
}

// TotalOffcutArea returns the summed area of offcuts.
func TotalOffcutArea(offcuts []Offcut) int {
	total := 0
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
