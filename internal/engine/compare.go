package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/shelf"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.JobSettings
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PackResult
	BinsUsed      int
	PlacedCount   int
	UnplacedCount int
	Efficiency    float64 // percent of opened bin area covered by items
	WastePercent  float64
	Err           error // settings rejected; Result is empty
}

// CompareScenarios packs specs under each scenario and returns the results in
// scenario order. A scenario with invalid settings reports its error in Err
// instead of aborting the comparison.
func CompareScenarios(scenarios []ComparisonScenario, specs []model.ItemSpec, logger *log.Logger) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		cr := ComparisonResult{Scenario: scenario}

		p, err := New(scenario.Settings, logger)
		if err == nil {
			cr.Result, err = p.Pack(specs)
		}
		if err != nil {
			cr.Err = err
			results = append(results, cr)
			continue
		}

		cr.BinsUsed = len(cr.Result.Bins)
		cr.PlacedCount = cr.Result.PlacedCount()
		cr.UnplacedCount = len(cr.Result.Unplaced)
		cr.Efficiency = cr.Result.TotalEfficiency()
		cr.WastePercent = 100.0 - cr.Efficiency
		results = append(results, cr)
	}

	return results
}

// Best returns the index of the result that places the most items, then uses
// the fewest bins, then has the highest efficiency. Earlier scenarios win ties.
// It returns -1 when every scenario failed.
func Best(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := results[best]
		switch {
		case r.PlacedCount != b.PlacedCount:
			if r.PlacedCount > b.PlacedCount {
				best = i
			}
		case r.BinsUsed != b.BinsUsed:
			if r.BinsUsed < b.BinsUsed {
				best = i
			}
		case r.Efficiency > b.Efficiency:
			best = i
		}
	}
	return best
}

// BuildDefaultScenarios returns the base settings run through the bin tree and
// through every shelf heuristic, keeping size, bin count and sort order.
func BuildDefaultScenarios(base model.JobSettings) []ComparisonScenario {
	tree := base
	tree.Algorithm = model.AlgorithmBinTree
	tree.Heuristic = ""
	scenarios := []ComparisonScenario{{Name: "Bin tree", Settings: tree}}

	for _, h := range shelf.Heuristics() {
		s := base
		s.Algorithm = model.AlgorithmShelf
		s.Heuristic = h.String()
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Shelf %s", h),
			Settings: s,
		})
	}
	return scenarios
}
