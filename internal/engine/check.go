package engine

import (
	"fmt"

	"github.com/piwi3910/binpack/internal/model"
)

// ConflictKind classifies a broken placement.
type ConflictKind string

const (
	ConflictInvalidSize ConflictKind = "invalid_size"  // Non-positive width or height
	ConflictOutOfBounds ConflictKind = "out_of_bounds" // Extends past the bin edge
	ConflictOverlap     ConflictKind = "overlap"       // Shares area with another placement
)

// Conflict describes one placement that a valid packing could not contain.
type Conflict struct {
	Kind       ConflictKind
	BinIndex   int
	Index      int // Placement index within the bin
	Label      string
	Placement  model.Placement
	OtherIndex int // Second placement of an overlap, -1 otherwise
	OtherLabel string
}

// CheckResult verifies every bin of result: each placement must have a
// positive size, lie inside its bin and not overlap any other placement.
// Overlaps are reported once per pair, on the earlier placement.
// A result produced by Pack never has conflicts; this is for results read
// back from job files.
func CheckResult(result model.PackResult) []Conflict {
	var conflicts []Conflict

	for _, b := range result.Bins {
		for i, p := range b.Placements {
			base := Conflict{BinIndex: b.Index, Index: i, Label: p.Label, Placement: p.Placement, OtherIndex: -1}

			if !p.Item.Valid() {
				base.Kind = ConflictInvalidSize
				conflicts = append(conflicts, base)
				continue
			}
			if p.Corner.X < 0 || p.Corner.Y < 0 || p.Right() > b.Width || p.Bottom() > b.Height {
				c := base
				c.Kind = ConflictOutOfBounds
				conflicts = append(conflicts, c)
			}
			for j := i + 1; j < len(b.Placements); j++ {
				o := b.Placements[j]
				if !o.Item.Valid() || !p.Overlaps(o.Placement) {
					continue
				}
				c := base
				c.Kind = ConflictOverlap
				c.OtherIndex = j
				c.OtherLabel = o.Label
				conflicts = append(conflicts, c)
			}
		}
	}

	return conflicts
}

// FormatConflicts produces human-readable messages for conflicts.
func FormatConflicts(conflicts []Conflict) []string {
	msgs := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		where := fmt.Sprintf("Bin %d: %q %s at %s", c.BinIndex+1, c.Label, c.Placement.Item, c.Placement.Corner)
		switch c.Kind {
		case ConflictOverlap:
			msgs = append(msgs, fmt.Sprintf("%s overlaps %q", where, c.OtherLabel))
		case ConflictOutOfBounds:
			msgs = append(msgs, where+" extends outside the bin")
		default:
			msgs = append(msgs, where+" has an invalid size")
		}
	}
	return msgs
}
