package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/project"
)

// templateCommand creates the "template" command and its subcommands.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and reuse item lists with their settings",
	}

	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateUseCommand())
	cmd.AddCommand(c.templateRemoveCommand())
	return cmd
}

func (c *CLI) loadTemplates() (model.TemplateStore, error) {
	store, err := project.LoadTemplates(c.templatesFile())
	if err != nil {
		return store, fmt.Errorf("load templates: %w", err)
	}
	return store, nil
}

func (c *CLI) saveTemplates(store model.TemplateStore) error {
	if err := project.SaveTemplates(c.templatesFile(), store); err != nil {
		return fmt.Errorf("save templates: %w", err)
	}
	return nil
}

func (c *CLI) templateSaveCommand() *cobra.Command {
	var (
		flags       settingsFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save the items and settings of a job or import file as a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.loadJob(args[1])
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &job.Settings, c.loadInventory); err != nil {
				return err
			}

			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			store.Add(model.NewJobTemplate(args[0], description, job.Items, job.Settings))
			if err := c.saveTemplates(store); err != nil {
				return err
			}
			c.printSuccess("Saved template %s (%d specs)", args[0], len(job.Items))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			if len(store.Templates) == 0 {
				c.printInfo("No templates")
				return nil
			}
			for _, t := range store.Templates {
				c.printKeyValue(t.Name, fmt.Sprintf("%d specs, %dx%d %s  %s",
					len(t.Items), t.Settings.Width, t.Settings.Height, t.Settings.Algorithm, t.Description))
			}
			return nil
		},
	}
}

func (c *CLI) templateUseCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "use <template> <job-file>",
		Short: "Write a new job file (.json or .toml) from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil {
				return fmt.Errorf("unknown template %q", args[0])
			}

			if name == "" {
				name = t.Name
			}
			if err := project.SaveJob(args[1], t.ToJob(name)); err != nil {
				return fmt.Errorf("save job: %w", err)
			}
			c.printSuccess("Created job from template %s", t.Name)
			c.printFile(args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "job name (default: template name)")
	return cmd
}

func (c *CLI) templateRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadTemplates()
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil || !store.Remove(t.ID) {
				return fmt.Errorf("unknown template %q", args[0])
			}
			if err := c.saveTemplates(store); err != nil {
				return err
			}
			c.printSuccess("Removed template %s", args[0])
			return nil
		},
	}
}
