package shelf

import (
	"testing"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestShelf_InsertOnce(t *testing.T) {
	s := NewShelf(8, 4, 0)
	item := model.NewItem(4, 2)

	assert.True(t, s.Insert(item))
	assert.Equal(t, []model.Item{item}, s.Items())
	assert.Equal(t, 4, s.AvailableWidth())
}

func TestShelf_InsertTwice(t *testing.T) {
	s := NewShelf(8, 4, 0)
	item := model.NewItem(4, 2)

	assert.True(t, s.Insert(item))
	assert.True(t, s.Insert(item))
	assert.Equal(t, []model.Item{item, item}, s.Items())
	assert.Equal(t, 0, s.AvailableWidth())
}

func TestShelf_ItemTooWide(t *testing.T) {
	s := NewShelf(8, 4, 0)

	assert.False(t, s.Insert(model.NewItem(9, 2)))
	assert.Empty(t, s.Items())
	assert.Equal(t, 8, s.AvailableWidth())
}

func TestShelf_ItemTooTall(t *testing.T) {
	s := NewShelf(8, 4, 0)

	assert.False(t, s.Insert(model.NewItem(6, 5)))
	assert.Empty(t, s.Items())
	assert.Equal(t, 8, s.AvailableWidth())
}

func TestShelf_RejectAfterFill(t *testing.T) {
	s := NewShelf(8, 4, 0)
	assert.True(t, s.Insert(model.NewItem(5, 4)))

	before := s.State()
	assert.False(t, s.Insert(model.NewItem(4, 1)))
	assert.Equal(t, before, s.State())
}

func TestShelf_WidthConservation(t *testing.T) {
	s := NewShelf(20, 3, 6)
	for _, w := range []int{3, 7, 1, 9, 2, 5} {
		s.Insert(model.NewItem(w, 2))

		sum := 0
		for _, it := range s.Items() {
			sum += it.Width
		}
		assert.Equal(t, sum, s.Width()-s.AvailableWidth())
		assert.GreaterOrEqual(t, s.AvailableWidth(), 0)
	}
}

func TestShelf_PlaceReportsCorner(t *testing.T) {
	s := NewShelf(8, 2, 6)

	c, ok := s.Place(model.NewItem(3, 2))
	assert.True(t, ok)
	assert.Equal(t, model.CornerPoint{X: 0, Y: 6}, c)

	c, ok = s.Place(model.NewItem(2, 1))
	assert.True(t, ok)
	assert.Equal(t, model.CornerPoint{X: 3, Y: 6}, c)

	assert.Equal(t, []model.Placement{
		{Corner: model.CornerPoint{X: 0, Y: 6}, Item: model.NewItem(3, 2)},
		{Corner: model.CornerPoint{X: 3, Y: 6}, Item: model.NewItem(2, 1)},
	}, s.Placements())
}

func TestShelf_ItemsIsACopy(t *testing.T) {
	s := NewShelf(8, 2, 0)
	s.Insert(model.NewItem(3, 2))

	items := s.Items()
	items[0] = model.NewItem(1, 1)
	assert.Equal(t, model.NewItem(3, 2), s.Items()[0])
}
