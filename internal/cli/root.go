package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/framegram/pkg/buildinfo"
)

// RootCommand creates the framegram command.
func (c *CLI) RootCommand() *cobra.Command {
	buildinfo.Resolve()

	var verbose bool
	opts := defaultRenderOpts()

	root := &cobra.Command{
		Use:          appName + " [flags] file",
		Short:        "Framegram draws bit-field diagrams of protocol frames",
		Long:         `Framegram reads a JSON or TOML description of a protocol frame and draws a diagram of its nested fields, their values and the byte and bit positions they occupy.`,
		Version:      buildinfo.Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.SetLogLevel(levelFor(verbose))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("starting", buildinfo.Keyvals()...)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := opts.pipelineOptions(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), popts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// -h is the page height; keep help on the long form only.
	root.Flags().Bool("help", false, "help for "+appName)
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	opts.register(root)

	return root
}
