// Package cli implements the binpack command-line interface.
//
// Commands read item lists from job files (.json, .toml) or import files
// (.csv, .xlsx, .dxf), pack them with the engine and write reports.
// Persistent state (config, bin presets, templates) lives under ~/.binpack
// unless --config points elsewhere.
//
// # Commands
//
//   - pack: pack a job and export PDF, labels, XLSX or a job file
//   - compare: run every strategy over the same items
//   - estimate: lower-bound bin count by area
//   - check: verify a saved result
//   - heuristics: list algorithms, shelf heuristics and sort orders
//   - presets, template, config: manage saved state
package cli

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/binpack/internal/model"
	"github.com/piwi3910/binpack/internal/project"
)

const appName = "binpack"

// recentJobLimit caps AppConfig.RecentJobs.
const recentJobLimit = 10

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	configPath string
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "binpack packs rectangles into bins",
		Long:         `binpack places rectangular items into fixed-size bins using a guillotine bin tree or shelf heuristics, and reports placements, usage statistics and leftover space.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.binpack/config.json)")

	root.AddCommand(c.packCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.estimateCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.heuristicsCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.configCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return project.DefaultConfigPath()
}

// stateDir is the directory holding config, inventory and templates.
func (c *CLI) stateDir() string {
	return filepath.Dir(c.configFile())
}

func (c *CLI) inventoryFile() string {
	return filepath.Join(c.stateDir(), "inventory.json")
}

func (c *CLI) templatesFile() string {
	return filepath.Join(c.stateDir(), "templates.json")
}

func (c *CLI) loadConfig() (model.AppConfig, error) {
	return project.LoadAppConfig(c.configFile())
}

// rememberJob records path in the recent jobs list. Failures are only logged.
func (c *CLI) rememberJob(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfg, err := c.loadConfig()
	if err != nil {
		c.Logger.Warn("Could not read config", "err", err)
		return
	}
	cfg.AddRecentJob(abs, recentJobLimit)
	if err := project.SaveAppConfig(c.configFile(), cfg); err != nil {
		c.Logger.Warn("Could not update recent jobs", "err", err)
	}
}
