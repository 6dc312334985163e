package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/shelf"
)

var heuristicHelp = map[shelf.Heuristic]string{
	shelf.NextFit:        "only the newest shelf",
	shelf.FirstFit:       "first shelf with room",
	shelf.BestWidthFit:   "least width left over",
	shelf.WorstWidthFit:  "most width left over",
	shelf.BestHeightFit:  "least height left over",
	shelf.WorstHeightFit: "most height left over",
	shelf.BestAreaFit:    "least area left over",
	shelf.WorstAreaFit:   "most area left over",
}

// heuristicsCommand creates the "heuristics" command.
func (c *CLI) heuristicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "heuristics",
		Short: "List algorithms, shelf heuristics and sort orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printTitle("Algorithms")
			c.printKeyValue(string(model.AlgorithmBinTree), "guillotine split free-space tree")
			c.printKeyValue(string(model.AlgorithmShelf), "rows of shelves chosen by heuristic")

			c.printTitle("Shelf heuristics")
			for _, h := range shelf.Heuristics() {
				c.printKeyValue(h.String(), heuristicHelp[h])
			}

			c.printTitle("Sort orders")
			for _, s := range model.SortOrders() {
				fmt.Fprintln(c.Out, "  "+string(s))
			}
			return nil
		},
	}
}
