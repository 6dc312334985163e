package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/binpack/internal/model"
)

func placedAt(label string, x, y, w, h int) model.PlacedItem {
	return model.PlacedItem{
		Label:     label,
		Placement: model.Placement{Corner: model.CornerPoint{X: x, Y: y}, Item: model.NewItem(w, h)},
	}
}

func TestCheckResult_PackedResultIsClean(t *testing.T) {
	for _, sc := range BuildDefaultScenarios(testSettings(model.AlgorithmShelf, "first_fit", 20, 20)) {
		p := newPacker(t, sc.Settings)
		result, err := p.Pack([]model.ItemSpec{
			model.NewItemSpec("a", 7, 3, 4),
			model.NewItemSpec("b", 5, 9, 2),
			model.NewItemSpec("c", 2, 2, 6),
		})
		require.NoError(t, err, sc.Name)
		assert.Empty(t, CheckResult(result), sc.Name)
	}
}

func TestCheckResult_Conflicts(t *testing.T) {
	result := model.PackResult{Bins: []model.BinResult{
		{
			Index: 0, Width: 10, Height: 10,
			Placements: []model.PlacedItem{
				placedAt("a", 0, 0, 5, 5),
				placedAt("b", 4, 4, 3, 3),  // overlaps a
				placedAt("c", 5, 0, 5, 4),  // touches a and b
				placedAt("d", 8, 8, 3, 3),  // out of bounds
				placedAt("e", 0, 6, 0, 2),  // invalid
				placedAt("f", -1, 9, 1, 1), // out of bounds
			},
		},
	}}

	conflicts := CheckResult(result)
	require.Len(t, conflicts, 4)

	assert.Equal(t, ConflictOverlap, conflicts[0].Kind)
	assert.Equal(t, "a", conflicts[0].Label)
	assert.Equal(t, "b", conflicts[0].OtherLabel)
	assert.Equal(t, 1, conflicts[0].OtherIndex)

	assert.Equal(t, ConflictOutOfBounds, conflicts[1].Kind)
	assert.Equal(t, "d", conflicts[1].Label)
	assert.Equal(t, -1, conflicts[1].OtherIndex)

	assert.Equal(t, ConflictInvalidSize, conflicts[2].Kind)
	assert.Equal(t, "e", conflicts[2].Label)

	assert.Equal(t, ConflictOutOfBounds, conflicts[3].Kind)
	assert.Equal(t, "f", conflicts[3].Label)
}

func TestFormatConflicts(t *testing.T) {
	msgs := FormatConflicts([]Conflict{
		{Kind: ConflictOverlap, BinIndex: 1, Label: "a", OtherLabel: "b",
			Placement: model.Placement{Corner: model.CornerPoint{X: 1, Y: 2}, Item: model.NewItem(3, 4)}},
		{Kind: ConflictOutOfBounds, Label: "c", Placement: model.Placement{Item: model.NewItem(1, 1)}},
		{Kind: ConflictInvalidSize, Label: "d"},
	})

	assert.Equal(t, []string{
		`Bin 2: "a" 3x4 at (1, 2) overlaps "b"`,
		`Bin 1: "c" 1x1 at (0, 0) extends outside the bin`,
		`Bin 1: "d" 0x0 at (0, 0) has an invalid size`,
	}, msgs)
}
