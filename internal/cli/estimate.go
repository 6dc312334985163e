package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
)

// estimateCommand creates the "estimate" command.
func (c *CLI) estimateCommand() *cobra.Command {
	var (
		flags settingsFlags
		waste float64
	)

	cmd := &cobra.Command{
		Use:   "estimate <file>",
		Short: "Estimate how many bins a job needs by area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.loadJob(args[0])
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &job.Settings, c.loadInventory); err != nil {
				return err
			}

			est := model.EstimateBins(job.Items, job.Settings.Width, job.Settings.Height, waste)

			c.printTitle("%s (%dx%d bins)", job.Name, job.Settings.Width, job.Settings.Height)
			c.printKeyValue("Item area", fmt.Sprintf("%d", est.TotalItemArea))
			c.printKeyValue("Bin area", fmt.Sprintf("%d", est.BinArea))
			c.printKeyValue("Exact", fmt.Sprintf("%.2f", est.BinsNeededExact))
			c.printKeyValue("Minimum", fmt.Sprintf("%d", est.BinsNeededMin))
			c.printKeyValue(fmt.Sprintf("With %.0f%% waste", est.WastePercent), fmt.Sprintf("%d", est.BinsWithWaste))
			for _, s := range est.Oversized {
				c.printWarning("%s (%dx%d) is larger than the bin", s.Label, s.Width, s.Height)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&waste, "waste", 10, "extra waste percentage")
	return cmd
}
