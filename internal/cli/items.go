package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/piwi3910/binpack/internal/importer"
	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/project"
)

// loadJob reads path as a job file when it has a job extension, otherwise
// imports it as an item list and fills settings from the app config.
func (c *CLI) loadJob(path string) (model.Job, error) {
	if _, err := project.JobFormat(path); err == nil {
		job, err := project.LoadJob(path)
		if err != nil {
			return model.Job{}, fmt.Errorf("load job %s: %w", path, err)
		}
		c.Logger.Debug("Loaded job file", "path", path, "specs", len(job.Items))
		return job, nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return model.Job{}, fmt.Errorf("load config: %w", err)
	}

	job := model.NewJob()
	job.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	cfg.ApplyToSettings(&job.Settings)

	res := importer.ImportFile(path)
	for _, w := range res.Warnings {
		c.Logger.Debug(w, "file", path)
	}
	if len(res.Items) == 0 {
		if len(res.Errors) == 0 {
			return model.Job{}, fmt.Errorf("import %s: no items found", path)
		}
		return model.Job{}, fmt.Errorf("import %s: %s", path, strings.Join(res.Errors, "; "))
	}
	for _, e := range res.Errors {
		c.Logger.Warn(e, "file", path)
	}

	job.Items = res.Items
	c.Logger.Debug("Imported items", "path", path, "specs", len(job.Items))
	return job, nil
}

// loadInventory reads the preset inventory, creating the default one on first use.
func (c *CLI) loadInventory() (model.Inventory, error) {
	inv, err := project.LoadInventory(c.inventoryFile())
	if err != nil {
		return inv, fmt.Errorf("load inventory: %w", err)
	}
	return inv, nil
}

// unitCount returns the number of individual items a spec list expands to.
func unitCount(specs []model.ItemSpec) int {
	n := 0
	for _, s := range specs {
		n += max(s.Quantity, 0)
	}
	return n
}
