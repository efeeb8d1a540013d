package cli

import (
	"github.com/spf13/cobra"

	"github.com/mqtt-plugin/libstage/internal/config"
	"github.com/mqtt-plugin/libstage/internal/descriptor"
)

var resolveFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the build directives for the target platform",
	Long: `Resolve prints the include paths, library search paths, link libraries,
delay-loaded libraries and artifacts to stage for the target platform.
Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", descriptor.FormatYAML, "Output format (yaml, json)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	s := config.Current()
	d := descriptor.Resolve(currentTarget(s), s.Layout())
	return descriptor.Write(cmd.OutOrStdout(), d, resolveFormat)
}
