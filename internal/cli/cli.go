// Package cli implements the depflow command-line interface.
//
// This package provides commands for working with graph manifests: printing
// topological orders, walking graphs depth- or breadth-first, and checking
// that a manifest builds an acyclic graph. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - sort: Print a topological order for a manifest
//   - walk: Traverse a graph from a start node (DFS or BFS)
//   - check: Verify that a manifest builds without closing a cycle
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so commands share one configured logger.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/depflow/depflow/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "depflow"

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
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The --verbose flag raises the log level before any
// subcommand runs, and the configured logger is attached to the command
// context for retrieval via loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Depflow orders directed dependency graphs",
		Long:         `Depflow is a CLI tool for ordering problems modeled as directed acyclic graphs: it sorts, traverses, and validates graph manifests.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.checkCommand())

	return root
}

// Execute runs the depflow CLI with default wiring (logger on stderr at
// info level) and returns an error if any command fails.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
