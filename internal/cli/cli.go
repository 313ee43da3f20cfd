// Package cli implements the framegram command-line interface.
//
// framegram has a single command: it reads a frame document, lays it out
// and writes the diagram next to the input. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Flags
//
// Layout flags (-w, -h, --wrap, --bits, --font-size, --supersample) override
// the "opts" of the document only when given on the command line. Because -h
// selects the page height, help is available as --help only.
//
// # Logging
//
// --verbose (-v) switches to debug-level logging. Loggers are passed through
// context.Context; pipeline events are logged at debug level through the
// observability hooks.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framegram/pkg/observability"
	"github.com/matzehuels/framegram/pkg/pipeline"
)

// appName is the application name used for the command and display.
const appName = "framegram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
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

// RegisterHooks routes pipeline and output events to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetOutputHooks(h)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
