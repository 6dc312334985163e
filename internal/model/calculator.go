package model

import "math"

// BinEstimate is a lower-bound estimate of how many bins a job needs.
type BinEstimate struct {
	TotalItemArea   int        `json:"total_item_area"`
	BinArea         int        `json:"bin_area"`
	BinsNeededExact float64    `json:"bins_needed_exact"`   // Fractional number of bins
	BinsNeededMin   int        `json:"bins_needed_min"`     // Ceiling of exact
	BinsWithWaste   int        `json:"bins_with_waste"`     // Recommended bins including waste factor
	WastePercent    float64    `json:"waste_percent"`
	Oversized       []ItemSpec `json:"oversized,omitempty"` // Specs that cannot fit any bin of this size
}

// EstimateBins computes how many binWidth x binHeight bins the specs need by
// area alone, then applies an extra waste percentage. Specs with non-positive
// quantity or size are ignored. Specs larger than the bin are reported in
// Oversized and left out of the area total.
func EstimateBins(specs []ItemSpec, binWidth, binHeight int, wastePercent float64) BinEstimate {
	var total int
	var oversized []ItemSpec
	for _, s := range specs {
		item := s.Item()
		if !item.Valid() || s.Quantity <= 0 {
			continue
		}
		if !item.FitsIn(binWidth, binHeight) {
			oversized = append(oversized, s)
			continue
		}
		total += item.Area() * s.Quantity
	}

	binArea := binWidth * binHeight
	if binArea <= 0 {
		return BinEstimate{
			TotalItemArea: total,
			WastePercent:  wastePercent,
			Oversized:     oversized,
		}
	}

	exact := float64(total) / float64(binArea)
	minBins := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minBins {
		withWaste = minBins
	}

	return BinEstimate{
		TotalItemArea:   total,
		BinArea:         binArea,
		BinsNeededExact: exact,
		BinsNeededMin:   minBins,
		BinsWithWaste:   withWaste,
		WastePercent:    wastePercent,
		Oversized:       oversized,
	}
}
