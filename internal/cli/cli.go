// Package cli implements the coretrack command-line interface.
//
// The main commands are:
//   - generate: Refresh catalog records for the configured cores
//   - cache: Manage the archive working directory
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// created per invocation and carried on the CLI state.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlanglet/coretrack/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "coretrack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "coretrack curates a catalog of openFPGA cores",
		Long:         `coretrack tracks GitHub releases of openFPGA cores, inspects the descriptor files bundled in their release assets, and maintains a normalized catalog of platform and storage-slot metadata.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.cacheCommand())

	return root
}
