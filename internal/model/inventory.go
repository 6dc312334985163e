package model

import "github.com/google/uuid"

// BinPreset is a reusable named bin size.
type BinPreset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Note   string `json:"note,omitempty"`
}

// NewBinPreset creates a new BinPreset with a generated ID.
func NewBinPreset(name string, width, height int, note string) BinPreset {
	return BinPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
		Note:   note,
	}
}

// ApplyToSettings copies the preset's bin size into the given JobSettings.
func (bp BinPreset) ApplyToSettings(s *JobSettings) {
	s.Width = bp.Width
	s.Height = bp.Height
}

// Inventory holds the user's saved bin presets.
type Inventory struct {
	Bins []BinPreset `json:"bins"`
}

// DefaultInventory returns an inventory populated with common sizes.
func DefaultInventory() Inventory {
	return Inventory{
		Bins: []BinPreset{
			NewBinPreset("Texture 512", 512, 512, "Sprite atlas"),
			NewBinPreset("Texture 1024", 1024, 1024, "Sprite atlas"),
			NewBinPreset("Texture 2048", 2048, 2048, "Sprite atlas"),
			NewBinPreset("Texture 4096", 4096, 4096, "Sprite atlas"),
			NewBinPreset("Plywood 2440x1220", 2440, 1220, "mm"),
			NewBinPreset("A4 portrait", 210, 297, "mm"),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindByID(id string) *BinPreset {
	for i := range inv.Bins {
		if inv.Bins[i].ID == id {
			return &inv.Bins[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindByName(name string) *BinPreset {
	for i := range inv.Bins {
		if inv.Bins[i].Name == name {
			return &inv.Bins[i]
		}
	}
	return nil
}

// Names returns the preset names in order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.Bins))
	for i, b := range inv.Bins {
		names[i] = b.Name
	}
	return names
}
