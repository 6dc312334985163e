package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/binpack/internal/bintree"
	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/shelf"
)

// ErrInvalidSettings wraps every settings validation failure.
var ErrInvalidSettings = errors.New("invalid job settings")

// Packer runs a packing job: it feeds items one at a time into one or more bins
// using either the bin tree or the shelf strategy.
type Packer struct {
	Settings model.JobSettings

	heuristic shelf.Heuristic
	sort      SortFunc
	logger    *log.Logger
}

// New validates settings and returns a Packer. A nil logger uses log.Default().
func New(settings model.JobSettings, logger *log.Logger) (*Packer, error) {
	if logger == nil {
		logger = log.Default()
	}
	p := &Packer{Settings: settings, logger: logger}

	if !settings.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidSettings, settings.Algorithm)
	}
	if settings.Width <= 0 || settings.Height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be greater than 0 (given %dx%d)",
			ErrInvalidSettings, settings.Width, settings.Height)
	}
	if settings.MaxBins < 1 {
		return nil, fmt.Errorf("%w: max bins must be at least 1 (given %d)", ErrInvalidSettings, settings.MaxBins)
	}
	if settings.Algorithm == model.AlgorithmShelf {
		h, err := shelf.ParseHeuristic(settings.Heuristic)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
		p.heuristic = h
	}
	sf, err := sortFunc(settings.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	p.sort = sf
	return p, nil
}

// bin is one packing surface.
type bin interface {
	place(item model.Item) (model.CornerPoint, bool, error)
	stats() model.Stats
	free() []model.Placement
}

type treeBin struct {
	tree *bintree.Tree
}

func (b treeBin) place(item model.Item) (model.CornerPoint, bool, error) {
	c, ok := b.tree.Place(item)
	return c, ok, nil
}

func (b treeBin) stats() model.Stats      { return b.tree.Stats() }
func (b treeBin) free() []model.Placement { return b.tree.FreeRegions() }

type sheetBin struct {
	sheet     *shelf.Sheet
	heuristic shelf.Heuristic
}

func (b sheetBin) place(item model.Item) (model.CornerPoint, bool, error) {
	return b.sheet.Place(item, b.heuristic)
}

func (b sheetBin) stats() model.Stats      { return b.sheet.Stats() }
func (b sheetBin) free() []model.Placement { return b.sheet.FreeRegions() }

func (p *Packer) newBin() (bin, error) {
	if p.Settings.Algorithm == model.AlgorithmBinTree {
		tree, err := bintree.New(p.Settings.Width, p.Settings.Height)
		if err != nil {
			return nil, err
		}
		return treeBin{tree: tree}, nil
	}
	sheet, err := shelf.NewSheet(p.Settings.Width, p.Settings.Height)
	if err != nil {
		return nil, err
	}
	return sheetBin{sheet: sheet, heuristic: p.heuristic}, nil
}

// unit is one item of a spec after quantity expansion.
type unit struct {
	spec model.ItemSpec
	item model.Item
}

// expand turns specs into single units and applies the presort.
func (p *Packer) expand(specs []model.ItemSpec) []unit {
	var units []unit
	for _, s := range specs {
		one := s
		one.Quantity = 1
		for i := 0; i < s.Quantity; i++ {
			units = append(units, unit{spec: one, item: s.Item()})
		}
	}
	if p.sort != nil {
		cmp := p.sort
		if p.Settings.Reverse {
			cmp = func(a, b model.Item) int { return p.sort(b, a) }
		}
		slices.SortStableFunc(units, func(a, b unit) int { return cmp(a.item, b.item) })
	} else if p.Settings.Reverse {
		slices.Reverse(units)
	}
	return units
}

// Pack places every unit of specs. Each unit tries the open bins in order and a
// new bin is opened only when all of them reject it and fewer than MaxBins are
// open. Units that still do not fit are returned in Unplaced.
func (p *Packer) Pack(specs []model.ItemSpec) (model.PackResult, error) {
	result := model.PackResult{Algorithm: p.Settings.Algorithm}
	if p.Settings.Algorithm == model.AlgorithmShelf {
		result.Heuristic = p.heuristic.String()
	}

	units := p.expand(specs)
	var bins []bin
	placed := make([][]model.PlacedItem, 0, p.Settings.MaxBins)

	for _, u := range units {
		if !u.item.Valid() {
			p.logger.Warn("skipping item with non-positive size", "label", u.spec.Label, "size", u.item)
			result.Unplaced = append(result.Unplaced, u.spec)
			continue
		}

		idx, corner, err := p.placeInOpenBins(bins, u.item)
		if err != nil {
			return model.PackResult{}, err
		}
		if idx < 0 && len(bins) < p.Settings.MaxBins && u.item.FitsIn(p.Settings.Width, p.Settings.Height) {
			b, err := p.newBin()
			if err != nil {
				return model.PackResult{}, err
			}
			var ok bool
			corner, ok, err = b.place(u.item)
			if err != nil {
				return model.PackResult{}, err
			}
			// A bin is only kept once it holds something.
			if ok {
				bins = append(bins, b)
				placed = append(placed, nil)
				idx = len(bins) - 1
				p.logger.Debug("opened bin", "index", idx, "for", u.item)
			}
		}
		if idx < 0 {
			p.logger.Debug("item rejected", "label", u.spec.Label, "size", u.item)
			result.Unplaced = append(result.Unplaced, u.spec)
			continue
		}
		placed[idx] = append(placed[idx], model.PlacedItem{
			Label:     u.spec.Label,
			Placement: model.Placement{Corner: corner, Item: u.item},
		})
	}

	for i, b := range bins {
		br := model.BinResult{
			Index:      i,
			Width:      p.Settings.Width,
			Height:     p.Settings.Height,
			Placements: placed[i],
			Free:       b.free(),
			Stats:      b.stats(),
		}
		result.Bins = append(result.Bins, br)
	}

	p.logger.Info("packed",
		"algorithm", result.Algorithm,
		"bins", len(result.Bins),
		"placed", result.PlacedCount(),
		"unplaced", len(result.Unplaced),
		"efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency()))
	return result, nil
}

func (p *Packer) placeInOpenBins(bins []bin, item model.Item) (int, model.CornerPoint, error) {
	for i, b := range bins {
		corner, ok, err := b.place(item)
		if err != nil {
			return -1, model.CornerPoint{}, err
		}
		if ok {
			return i, corner, nil
		}
	}
	return -1, model.CornerPoint{}, nil
}
