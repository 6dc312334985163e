package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is a rectangle to be packed. Items are values and compare by dimensions.
type Item struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// NewItem returns an Item of the given size.
func NewItem(w, h int) Item {
	return Item{Width: w, Height: h}
}

// Area returns width * height.
func (i Item) Area() int {
	return i.Width * i.Height
}

// Valid reports whether both dimensions are positive.
func (i Item) Valid() bool {
	return i.Width > 0 && i.Height > 0
}

// FitsIn reports whether the item fits inside a w x h space without rotation.
func (i Item) FitsIn(w, h int) bool {
	return i.Width <= w && i.Height <= h
}

func (i Item) String() string {
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

// CornerPoint is the absolute top-left position of a placed item.
type CornerPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c CornerPoint) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Placement pairs a placed item with its corner.
type Placement struct {
	Corner CornerPoint `json:"corner"`
	Item   Item        `json:"item"`
}

// Right returns the x coordinate of the right edge.
func (p Placement) Right() int {
	return p.Corner.X + p.Item.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (p Placement) Bottom() int {
	return p.Corner.Y + p.Item.Height
}

// Overlaps reports whether two placements share any area (touching edges do not count).
func (p Placement) Overlaps(o Placement) bool {
	return p.Corner.X < o.Right() && o.Corner.X < p.Right() &&
		p.Corner.Y < o.Bottom() && o.Corner.Y < p.Bottom()
}

// ItemSpec is a labelled request for Quantity identical items.
type ItemSpec struct {
	ID       string `json:"id" toml:"id"`
	Label    string `json:"label" toml:"label"`
	Width    int    `json:"width" toml:"width"`
	Height   int    `json:"height" toml:"height"`
	Quantity int    `json:"quantity" toml:"quantity"`
}

func NewItemSpec(label string, w, h, qty int) ItemSpec {
	return ItemSpec{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// Item returns the dimensions of a single unit of the spec.
func (s ItemSpec) Item() Item {
	return Item{Width: s.Width, Height: s.Height}
}

// Algorithm selects the packing strategy.
type Algorithm string

const (
	AlgorithmBinTree Algorithm = "bintree" // Guillotine split free-space tree
	AlgorithmShelf   Algorithm = "shelf"   // Shelf packing with a selectable heuristic
)

// Valid reports whether the algorithm is a known value.
func (a Algorithm) Valid() bool {
	return a == AlgorithmBinTree || a == AlgorithmShelf
}

// SortOrder selects how items are ordered before packing.
type SortOrder string

const (
	SortNone      SortOrder = "none" // Keep input order
	SortArea      SortOrder = "area"
	SortPerimeter SortOrder = "perimeter"
	SortMaxSide   SortOrder = "max_side"
	SortMinSide   SortOrder = "min_side"
	SortWidth     SortOrder = "width"
	SortHeight    SortOrder = "height"
)

// SortOrders lists every accepted sort order.
func SortOrders() []SortOrder {
	return []SortOrder{SortNone, SortArea, SortPerimeter, SortMaxSide, SortMinSide, SortWidth, SortHeight}
}

// JobSettings holds packing configuration.
type JobSettings struct {
	Algorithm Algorithm `json:"algorithm" toml:"algorithm"` // "bintree" or "shelf"
	Heuristic string    `json:"heuristic" toml:"heuristic"` // Shelf heuristic name, ignored by bintree
	Width     int       `json:"width" toml:"width"`         // Bin width
	Height    int       `json:"height" toml:"height"`       // Bin height
	MaxBins   int       `json:"max_bins" toml:"max_bins"`   // Bins that may be opened, at least 1
	Sort      SortOrder `json:"sort" toml:"sort"`           // Presort order, largest first
	Reverse   bool      `json:"reverse" toml:"reverse"`     // Smallest first instead
}

func DefaultSettings() JobSettings {
	return JobSettings{
		Algorithm: AlgorithmShelf,
		Heuristic: "best_area_fit",
		Width:     1024,
		Height:    1024,
		MaxBins:   1,
		Sort:      SortNone,
		Reverse:   false,
	}
}

// PlacedItem is a placement tagged with the spec it came from.
type PlacedItem struct {
	Label string `json:"label"`
	Placement
}

// Stats summarises one bin.
type Stats struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Area       int         `json:"area"`
	UsedArea   int         `json:"used_area"`
	Efficiency float64     `json:"efficiency"` // UsedArea / Area, 1.0 when Area is zero
	Items      []Placement `json:"items"`
}

// BinResult is one packed bin.
type BinResult struct {
	Index      int          `json:"index"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Placements []PlacedItem `json:"placements"`
	Free       []Placement  `json:"free,omitempty"` // Unused regions, when the algorithm tracks them
	Stats      Stats        `json:"stats"`
}

// UsedArea returns the total area of placed items.
func (b BinResult) UsedArea() int {
	total := 0
	for _, p := range b.Placements {
		total += p.Item.Area()
	}
	return total
}

// TotalArea returns the bin's capacity.
func (b BinResult) TotalArea() int {
	return b.Width * b.Height
}

// Efficiency returns the usage percentage of the full bin.
func (b BinResult) Efficiency() float64 {
	ta := b.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(b.UsedArea()) / float64(ta) * 100.0
}

// PackResult holds the full outcome of a job.
type PackResult struct {
	Algorithm Algorithm   `json:"algorithm"`
	Heuristic string      `json:"heuristic,omitempty"`
	Bins      []BinResult `json:"bins"`
	Unplaced  []ItemSpec  `json:"unplaced"`
}

// PlacedCount returns the number of placed items across all bins.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, b := range r.Bins {
		n += len(b.Placements)
	}
	return n
}

// TotalEfficiency returns overall usage percentage across opened bins.
func (r PackResult) TotalEfficiency() float64 {
	var used, total int
	for _, b := range r.Bins {
		used += b.UsedArea()
		total += b.TotalArea()
	}
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100.0
}

// Job ties items, settings and an optional result together for save/load.
type Job struct {
	ID       string      `json:"id" toml:"id"`
	Name     string      `json:"name" toml:"name"`
	Items    []ItemSpec  `json:"items" toml:"items"`
	Settings JobSettings `json:"settings" toml:"settings"`
	Result   *PackResult `json:"result,omitempty" toml:"-"`
}

func NewJob() Job {
	return Job{
		ID:       uuid.New().String(),
		Name:     "Untitled",
		Items:    []ItemSpec{},
		Settings: DefaultSettings(),
	}
}
