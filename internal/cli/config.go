package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/project"
)

// configCommand creates the "config" command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, change, back up and restore saved settings",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configSetCommand())
	cmd.AddCommand(c.configExportCommand())
	cmd.AddCommand(c.configImportCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current config as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, string(data))
			return nil
		},
	}
}

func (c *CLI) configSetCommand() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the default settings applied to imported item lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			s := model.DefaultSettings()
			cfg.ApplyToSettings(&s)
			if err := flags.apply(cmd, &s, c.loadInventory); err != nil {
				return err
			}

			cfg.DefaultAlgorithm = s.Algorithm
			cfg.DefaultHeuristic = s.Heuristic
			cfg.DefaultWidth = s.Width
			cfg.DefaultHeight = s.Height
			cfg.DefaultMaxBins = s.MaxBins
			cfg.DefaultSort = s.Sort

			if err := project.SaveAppConfig(c.configFile(), cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			c.printSuccess("Saved defaults")
			c.printFile(c.configFile())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) configExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Back up config, presets and templates to one JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			inv, err := c.loadInventory()
			if err != nil {
				return err
			}
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}

			if err := project.ExportAllData(args[0], cfg, inv, store); err != nil {
				return err
			}
			c.printSuccess("Exported %d preset(s) and %d template(s)", len(inv.Bins), len(store.Templates))
			c.printFile(args[0])
			return nil
		},
	}
}

func (c *CLI) configImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore config, presets and templates from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.RestoreAllData(c.stateDir(), backup); err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			c.Logger.Debug("Restored backup", "version", backup.Version, "created", backup.CreatedAt)
			c.printSuccess("Restored backup from %s", backup.CreatedAt)
			return nil
		},
	}
}
