package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/engine"
)

// compareCommand creates the "compare" command.
func (c *CLI) compareCommand() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "compare <file>",
		Short: "Pack the same items with the bin tree and every shelf heuristic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.loadJob(args[0])
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &job.Settings, c.loadInventory); err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			results := engine.CompareScenarios(engine.BuildDefaultScenarios(job.Settings), job.Items, c.Logger)
			prog.done(fmt.Sprintf("Compared %d strategies", len(results)))

			c.printComparison(results)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) printComparison(results []engine.ComparisonResult) {
	best := engine.Best(results)

	c.printTitle("%-24s %6s %8s %8s %10s", "Strategy", "Bins", "Placed", "Left", "Efficiency")
	for i, r := range results {
		if r.Err != nil {
			c.printWarning("%-22s %v", r.Scenario.Name, r.Err)
			continue
		}
		line := fmt.Sprintf("%-24s %6d %8d %8d %9.1f%%",
			r.Scenario.Name, r.BinsUsed, r.PlacedCount, r.UnplacedCount, r.Efficiency)
		if i == best {
			c.printSuccess("%s", line)
		} else {
			fmt.Fprintln(c.Out, "  "+line)
		}
	}
	if best >= 0 {
		c.printDetail("Best: %s", results[best].Scenario.Name)
	}
}
