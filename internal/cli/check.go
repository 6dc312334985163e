package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/engine"
	"github.com/piwi3910/binpack/internal/project"
)

// checkCommand creates the "check" command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <job.json>",
		Short: "Verify the saved result of a job file",
		Long:  `Check reports placements in a saved result that overlap, extend outside their bin or have a non-positive size.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := project.LoadJob(args[0])
			if err != nil {
				return err
			}
			if job.Result == nil {
				return fmt.Errorf("%s has no saved result; save it with 'binpack pack -o file.json'", args[0])
			}

			conflicts := engine.CheckResult(*job.Result)
			if len(conflicts) == 0 {
				c.printSuccess("%d placements in %d bin(s), no conflicts", job.Result.PlacedCount(), len(job.Result.Bins))
				return nil
			}
			for _, msg := range engine.FormatConflicts(conflicts) {
				c.printWarning("%s", msg)
			}
			return fmt.Errorf("%d conflict(s) found", len(conflicts))
		},
	}
}
