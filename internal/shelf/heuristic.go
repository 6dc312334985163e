package shelf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piwi3910/binpack/internal/model"
)

// Heuristic selects which existing shelf receives an item.
type Heuristic int

const (
	NextFit Heuristic = iota
	FirstFit
	BestWidthFit
	WorstWidthFit
	BestHeightFit
	WorstHeightFit
	BestAreaFit
	WorstAreaFit

	numHeuristics
)

// ErrUnknownHeuristic is returned for a Heuristic value or name outside the known set.
var ErrUnknownHeuristic = errors.New("unknown shelf heuristic")

var heuristicNames = [numHeuristics]string{
	NextFit:        "next_fit",
	FirstFit:       "first_fit",
	BestWidthFit:   "best_width_fit",
	WorstWidthFit:  "worst_width_fit",
	BestHeightFit:  "best_height_fit",
	WorstHeightFit: "worst_height_fit",
	BestAreaFit:    "best_area_fit",
	WorstAreaFit:   "worst_area_fit",
}

// Heuristics returns every heuristic in declaration order.
func Heuristics() []Heuristic {
	hs := make([]Heuristic, numHeuristics)
	for i := range hs {
		hs[i] = Heuristic(i)
	}
	return hs
}

// Valid reports whether h is one of the declared heuristics.
func (h Heuristic) Valid() bool {
	return h >= 0 && h < numHeuristics
}

func (h Heuristic) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return heuristicNames[h]
}

// ParseHeuristic maps a snake_case name such as "best_width_fit" to its Heuristic.
// Matching ignores case and surrounding whitespace; dashes are accepted for underscores.
func ParseHeuristic(name string) (Heuristic, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range heuristicNames {
		if n == normalized {
			return Heuristic(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// scoreFunc rates placing item on s; lower is better.
type scoreFunc func(s *Shelf, item model.Item) int

func widthLeftover(s *Shelf, item model.Item) int {
	return s.available - item.Width
}

func heightLeftover(s *Shelf, item model.Item) int {
	return s.height - item.Height
}

func areaLeftover(s *Shelf, item model.Item) int {
	return (s.available - item.Width) * s.height
}

func negate(f scoreFunc) scoreFunc {
	return func(s *Shelf, item model.Item) int { return -f(s, item) }
}

// scorers holds the scan-based heuristics. NextFit is handled separately
// because it never scans past the newest shelf.
var scorers = map[Heuristic]scoreFunc{
	FirstFit:       func(*Shelf, model.Item) int { return 0 },
	BestWidthFit:   widthLeftover,
	WorstWidthFit:  negate(widthLeftover),
	BestHeightFit:  heightLeftover,
	WorstHeightFit: negate(heightLeftover),
	BestAreaFit:    areaLeftover,
	WorstAreaFit:   negate(areaLeftover),
}

// choose returns the index of the feasible shelf picked by h, or -1.
// Ties go to the earliest shelf.
func choose(shelves []*Shelf, item model.Item, h Heuristic) int {
	if h == NextFit {
		last := len(shelves) - 1
		if last >= 0 && shelves[last].fits(item) {
			return last
		}
		return -1
	}

	score := scorers[h]
	best := -1
	bestScore := 0
	for i, s := range shelves {
		if !s.fits(item) {
			continue
		}
		if sc := score(s, item); best < 0 || sc < bestScore {
			best = i
			bestScore = sc
		}
	}
	return best
}
