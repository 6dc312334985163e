package engine

import (
	"errors"
	"testing"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/shelf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	base := testSettings(model.AlgorithmShelf, "first_fit", 100, 50)
	base.MaxBins = 4
	base.Sort = model.SortHeight

	scenarios := BuildDefaultScenarios(base)
	require.Len(t, scenarios, 1+len(shelf.Heuristics()))

	assert.Equal(t, "Bin tree", scenarios[0].Name)
	assert.Equal(t, model.AlgorithmBinTree, scenarios[0].Settings.Algorithm)
	assert.Empty(t, scenarios[0].Settings.Heuristic)

	assert.Equal(t, "Shelf next_fit", scenarios[1].Name)
	assert.Equal(t, "best_area_fit", scenarios[7].Settings.Heuristic)

	for _, sc := range scenarios {
		assert.Equal(t, 100, sc.Settings.Width, sc.Name)
		assert.Equal(t, 50, sc.Settings.Height, sc.Name)
		assert.Equal(t, 4, sc.Settings.MaxBins, sc.Name)
		assert.Equal(t, model.SortHeight, sc.Settings.Sort, sc.Name)
	}
}

func TestCompareScenarios(t *testing.T) {
	scenarios := BuildDefaultScenarios(testSettings(model.AlgorithmShelf, "first_fit", 10, 10))
	specs := []model.ItemSpec{
		model.NewItemSpec("A", 5, 5, 2),
		model.NewItemSpec("B", 10, 2, 1),
	}

	results := CompareScenarios(scenarios, specs, quietLogger())
	require.Len(t, results, len(scenarios))

	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		require.NoError(t, r.Err)
		assert.Equal(t, 1, r.BinsUsed, r.Scenario.Name)
		assert.Equal(t, 3, r.PlacedCount, r.Scenario.Name)
		assert.Zero(t, r.UnplacedCount, r.Scenario.Name)
		assert.InDelta(t, 70.0, r.Efficiency, 1e-9, r.Scenario.Name)
		assert.InDelta(t, 30.0, r.WastePercent, 1e-9, r.Scenario.Name)
	}
}

func TestCompareScenarios_InvalidScenarioDoesNotAbort(t *testing.T) {
	good := testSettings(model.AlgorithmBinTree, "", 10, 10)
	bad := good
	bad.Width = 0

	results := CompareScenarios([]ComparisonScenario{
		{Name: "bad", Settings: bad},
		{Name: "good", Settings: good},
	}, []model.ItemSpec{model.NewItemSpec("A", 3, 3, 1)}, quietLogger())

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, ErrInvalidSettings)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 1, results[1].PlacedCount)
	assert.Equal(t, 1, Best(results))
}

func TestBest(t *testing.T) {
	tests := []struct {
		name    string
		results []ComparisonResult
		want    int
	}{
		{"empty", nil, -1},
		{"all failed", []ComparisonResult{{Err: errors.New("x")}, {Err: errors.New("y")}}, -1},
		{"most placed wins", []ComparisonResult{
			{PlacedCount: 3, BinsUsed: 1, Efficiency: 90},
			{PlacedCount: 4, BinsUsed: 2, Efficiency: 50},
		}, 1},
		{"fewer bins wins", []ComparisonResult{
			{PlacedCount: 4, BinsUsed: 2, Efficiency: 80},
			{PlacedCount: 4, BinsUsed: 1, Efficiency: 60},
		}, 1},
		{"higher efficiency wins", []ComparisonResult{
			{PlacedCount: 4, BinsUsed: 1, Efficiency: 60},
			{PlacedCount: 4, BinsUsed: 1, Efficiency: 75},
		}, 1},
		{"earlier wins ties", []ComparisonResult{
			{PlacedCount: 4, BinsUsed: 1, Efficiency: 75},
			{PlacedCount: 4, BinsUsed: 1, Efficiency: 75},
		}, 0},
		{"failed results are skipped", []ComparisonResult{
			{Err: errors.New("x"), PlacedCount: 10},
			{PlacedCount: 1, BinsUsed: 1},
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Best(tt.results))
		})
	}
}
