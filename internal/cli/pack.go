package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/engine"
	"github.com/piwi3910/binpack/internal/export"
	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/project"
)

type packOptions struct {
	settings settingsFlags

	pdf    string
	labels string
	xlsx   string
	save   string

	offcuts     bool
	keepOffcuts bool
	minOffcut   int
}

// packCommand creates the "pack" command.
func (c *CLI) packCommand() *cobra.Command {
	var opts packOptions

	cmd := &cobra.Command{
		Use:   "pack <file>",
		Short: "Pack the items of a job or import file into bins",
		Long: `Pack reads a job file (.json, .toml) or an item list (.csv, .tsv, .txt, .xlsx, .dxf),
packs it and prints per-bin statistics. Flags override the job's settings.`,
		Example: `  binpack pack sprites.csv --size 1024x1024 --heuristic best_area_fit --pdf atlas.pdf
  binpack pack job.toml --algorithm bintree --bins 3 --xlsx placements.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPack(cmd, args[0], opts)
		},
	}

	opts.settings.register(cmd)
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write a PDF layout report")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "write a PDF label sheet with QR codes")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write an Excel workbook of placements")
	cmd.Flags().StringVarP(&opts.save, "output", "o", "", "save the job (.json keeps the result, .toml does not)")
	cmd.Flags().BoolVar(&opts.offcuts, "offcuts", false, "list reusable free regions")
	cmd.Flags().BoolVar(&opts.keepOffcuts, "keep-offcuts", false, "add reusable free regions to the bin presets")
	cmd.Flags().IntVar(&opts.minOffcut, "min-offcut", 1, "smallest side of a reusable free region")

	return cmd
}

func (c *CLI) runPack(cmd *cobra.Command, path string, opts packOptions) error {
	job, err := c.loadJob(path)
	if err != nil {
		return err
	}
	if err := opts.settings.apply(cmd, &job.Settings, c.loadInventory); err != nil {
		return err
	}

	packer, err := engine.New(job.Settings, c.Logger)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := packer.Pack(job.Items)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d of %d items", result.PlacedCount(), unitCount(job.Items)))

	if err := cmd.Context().Err(); err != nil {
		return err
	}

	job.Result = &result
	c.printResult(job.Name, result)

	if opts.offcuts || opts.keepOffcuts {
		limits := model.OffcutLimits{MinSide: opts.minOffcut, MinArea: opts.minOffcut * opts.minOffcut}
		offcuts := model.DetectAllOffcuts(result, limits)
		c.printOffcuts(offcuts)
		if opts.keepOffcuts && len(offcuts) > 0 {
			if err := c.keepOffcuts(offcuts); err != nil {
				return err
			}
		}
	}

	if err := c.writeOutputs(job, opts); err != nil {
		return err
	}

	c.rememberJob(path)
	return nil
}

func (c *CLI) writeOutputs(job model.Job, opts packOptions) error {
	result := *job.Result
	outputs := []struct {
		path  string
		write func(string) error
	}{
		{opts.pdf, func(p string) error { return export.ExportPDF(p, result, job.Settings) }},
		{opts.labels, func(p string) error { return export.ExportLabels(p, result) }},
		{opts.xlsx, func(p string) error { return export.ExportXLSX(p, result, job.Settings) }},
		{opts.save, func(p string) error { return project.SaveJob(p, job) }},
	}

	var written []string
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := o.write(o.path); err != nil {
			return fmt.Errorf("write %s: %w", o.path, err)
		}
		written = append(written, o.path)
	}

	if len(written) > 0 {
		c.printSuccess("Wrote %d file(s)", len(written))
		for _, p := range written {
			c.printFile(p)
		}
	}
	return nil
}

func (c *CLI) keepOffcuts(offcuts []model.Offcut) error {
	inv, err := c.loadInventory()
	if err != nil {
		return err
	}
	for _, o := range offcuts {
		inv.Bins = append(inv.Bins, o.ToBinPreset())
	}
	if err := project.SaveInventory(c.inventoryFile(), inv); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	c.printSuccess("Added %d offcut preset(s)", len(offcuts))
	return nil
}

func (c *CLI) printResult(name string, result model.PackResult) {
	strategy := string(result.Algorithm)
	if result.Heuristic != "" {
		strategy += " / " + result.Heuristic
	}

	c.printTitle("%s", name)
	c.printKeyValue("Strategy", strategy)
	c.printKeyValue("Bins", fmt.Sprintf("%d", len(result.Bins)))
	c.printKeyValue("Placed", fmt.Sprintf("%d", result.PlacedCount()))
	c.printKeyValue("Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency()))

	for _, b := range result.Bins {
		c.printInfo("Bin %d (%dx%d): %d items, %.1f%% used, extent %dx%d",
			b.Index+1, b.Width, b.Height, len(b.Placements), b.Efficiency(), b.Stats.Width, b.Stats.Height)
		for _, p := range b.Placements {
			c.printDetail("%s %s at %s", p.Label, p.Item, p.Corner)
		}
	}

	if len(result.Unplaced) > 0 {
		c.printWarning("%d item(s) did not fit", len(result.Unplaced))
		for _, s := range result.Unplaced {
			c.printDetail("%s %dx%d", s.Label, s.Width, s.Height)
		}
	}
}

func (c *CLI) printOffcuts(offcuts []model.Offcut) {
	if len(offcuts) == 0 {
		c.printInfo("No reusable offcuts")
		return
	}
	c.printInfo("%d offcut(s), %d total area", len(offcuts), model.TotalOffcutArea(offcuts))
	for _, o := range offcuts {
		c.printDetail("Bin %d: %dx%d at (%d, %d)", o.BinIndex+1, o.Width, o.Height, o.X, o.Y)
	}
}
