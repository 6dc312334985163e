package engine

import (
	"slices"
	"testing"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortFunc_Resolves(t *testing.T) {
	for _, order := range model.SortOrders() {
		f, err := sortFunc(order)
		require.NoError(t, err, order)
		if order == model.SortNone {
			assert.Nil(t, f)
		} else {
			assert.NotNil(t, f, order)
		}
	}

	f, err := sortFunc("")
	assert.NoError(t, err)
	assert.Nil(t, f)

	_, err = sortFunc("diagonal")
	assert.Error(t, err)
}

func TestSortFuncs_LargestFirst(t *testing.T) {
	items := []model.Item{{Width: 1, Height: 9}, {Width: 4, Height: 4}, {Width: 6, Height: 1}}

	tests := []struct {
		name string
		fn   SortFunc
		want []model.Item
	}{
		// areas 9, 16, 6
		{"area", SortArea, []model.Item{{Width: 4, Height: 4}, {Width: 1, Height: 9}, {Width: 6, Height: 1}}},
		// perimeters 10, 8, 7
		{"perimeter", SortPerimeter, []model.Item{{Width: 1, Height: 9}, {Width: 4, Height: 4}, {Width: 6, Height: 1}}},
		{"max side", SortMaxSide, []model.Item{{Width: 1, Height: 9}, {Width: 6, Height: 1}, {Width: 4, Height: 4}}},
		{"min side", SortMinSide, []model.Item{{Width: 4, Height: 4}, {Width: 1, Height: 9}, {Width: 6, Height: 1}}},
		{"width", SortWidth, []model.Item{{Width: 6, Height: 1}, {Width: 4, Height: 4}, {Width: 1, Height: 9}}},
		{"height", SortHeight, []model.Item{{Width: 1, Height: 9}, {Width: 4, Height: 4}, {Width: 6, Height: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(items)
			slices.SortStableFunc(got, tt.fn)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_StableForEqualKeys(t *testing.T) {
	s := testSettings(model.AlgorithmShelf, "first_fit", 10, 10)
	s.Sort = model.SortHeight
	p := newPacker(t, s)

	units := p.expand([]model.ItemSpec{
		model.NewItemSpec("first", 3, 2, 1),
		model.NewItemSpec("tall", 1, 5, 1),
		model.NewItemSpec("second", 7, 2, 2),
	})

	labels := make([]string, len(units))
	for i, u := range units {
		labels[i] = u.spec.Label
		assert.Equal(t, 1, u.spec.Quantity)
	}
	assert.Equal(t, []string{"tall", "first", "second", "second"}, labels)
}
