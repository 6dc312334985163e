package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
)

// settingsFlags are the job settings that can be overridden on the command line.
type settingsFlags struct {
	algorithm string
	heuristic string
	size      string
	preset    string
	bins      int
	sort      string
	reverse   bool
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.algorithm, "algorithm", "a", "", "packing algorithm: bintree or shelf")
	fs.StringVar(&f.heuristic, "heuristic", "", "shelf heuristic (see 'binpack heuristics')")
	fs.StringVarP(&f.size, "size", "s", "", "bin size as WxH, or a single number for a square bin")
	fs.StringVarP(&f.preset, "preset", "p", "", "bin preset name or ID (see 'binpack presets')")
	fs.IntVarP(&f.bins, "bins", "n", 0, "maximum number of bins to open")
	fs.StringVar(&f.sort, "sort", "", "presort order: none, area, perimeter, max_side, min_side, width, height")
	fs.BoolVar(&f.reverse, "reverse", false, "pack smallest first")
}

// apply overwrites s with every flag the user set. A preset is applied before
// --size so an explicit size wins.
func (f *settingsFlags) apply(cmd *cobra.Command, s *model.JobSettings, loadInventory func() (model.Inventory, error)) error {
	fs := cmd.Flags()

	if fs.Changed("preset") {
		inv, err := loadInventory()
		if err != nil {
			return err
		}
		bp := inv.FindByName(f.preset)
		if bp == nil {
			bp = inv.FindByID(f.preset)
		}
		if bp == nil {
			return fmt.Errorf("unknown bin preset %q", f.preset)
		}
		bp.ApplyToSettings(s)
	}
	if fs.Changed("size") {
		w, h, err := parseSize(f.size)
		if err != nil {
			return err
		}
		s.Width, s.Height = w, h
	}
	if fs.Changed("algorithm") {
		s.Algorithm = model.Algorithm(strings.ToLower(f.algorithm))
	}
	if fs.Changed("heuristic") {
		s.Heuristic = f.heuristic
	}
	if fs.Changed("bins") {
		s.MaxBins = f.bins
	}
	if fs.Changed("sort") {
		s.Sort = model.SortOrder(strings.ToLower(f.sort))
	}
	if fs.Changed("reverse") {
		s.Reverse = f.reverse
	}
	return nil
}

// parseSize parses "WxH" (also "W*H" or "W,H") or a single side length.
func parseSize(v string) (w, h int, err error) {
	v = strings.ToLower(strings.TrimSpace(v))
	parts := strings.FieldsFunc(v, func(r rune) bool { return r == 'x' || r == '*' || r == ',' })
	switch len(parts) {
	case 1:
		w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		h = w
	case 2:
		w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err == nil {
			h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		}
	default:
		return 0, 0, fmt.Errorf("invalid size %q: want WxH", v)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", v, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: sides must be positive", v)
	}
	return w, h, nil
}
