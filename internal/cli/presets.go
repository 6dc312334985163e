package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/project"
)

// presetsCommand creates the "presets" command and its subcommands.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and manage saved bin sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := c.loadInventory()
			if err != nil {
				return err
			}
			if len(inv.Bins) == 0 {
				c.printInfo("No presets")
				return nil
			}
			for _, b := range inv.Bins {
				c.printKeyValue(b.ID, fmt.Sprintf("%-24s %dx%d  %s", b.Name, b.Width, b.Height, b.Note))
			}
			return nil
		},
	}

	cmd.AddCommand(c.presetsAddCommand())
	cmd.AddCommand(c.presetsRemoveCommand())
	cmd.AddCommand(c.presetsImportCommand())
	return cmd
}

func (c *CLI) presetsAddCommand() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add <name> <WxH>",
		Short: "Save a bin size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := parseSize(args[1])
			if err != nil {
				return err
			}
			inv, err := c.loadInventory()
			if err != nil {
				return err
			}
			if inv.FindByName(args[0]) != nil {
				return fmt.Errorf("preset %q already exists", args[0])
			}

			bp := model.NewBinPreset(args[0], w, h, note)
			inv.Bins = append(inv.Bins, bp)
			if err := project.SaveInventory(c.inventoryFile(), inv); err != nil {
				return fmt.Errorf("save inventory: %w", err)
			}
			c.printSuccess("Added preset %s (%dx%d) as %s", bp.Name, bp.Width, bp.Height, bp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	return cmd
}

func (c *CLI) presetsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name|id>",
		Short: "Delete a saved bin size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := c.loadInventory()
			if err != nil {
				return err
			}

			kept := inv.Bins[:0]
			removed := 0
			for _, b := range inv.Bins {
				if b.ID == args[0] || b.Name == args[0] {
					removed++
					continue
				}
				kept = append(kept, b)
			}
			if removed == 0 {
				return fmt.Errorf("unknown bin preset %q", args[0])
			}
			inv.Bins = kept

			if err := project.SaveInventory(c.inventoryFile(), inv); err != nil {
				return fmt.Errorf("save inventory: %w", err)
			}
			c.printSuccess("Removed %d preset(s)", removed)
			return nil
		},
	}
}

func (c *CLI) presetsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge presets from an inventory JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := c.loadInventory()
			if err != nil {
				return err
			}
			before := len(inv.Bins)

			inv, err = project.ImportInventory(args[0], inv)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			if err := project.SaveInventory(c.inventoryFile(), inv); err != nil {
				return fmt.Errorf("save inventory: %w", err)
			}
			c.printSuccess("Imported %d preset(s)", len(inv.Bins)-before)
			return nil
		},
	}
}
