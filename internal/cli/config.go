package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mqtt-plugin/libstage/internal/config"
)

// settableKeys are the keys `config set` accepts.
var settableKeys = []string{
	config.KeyPlatform,
	config.KeyModuleRoot,
	config.KeyProjectRoot,
	config.KeyThirdPartyRoot,
	config.KeyLibrary,
	config.KeyLogLevel,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage user settings",
	Long:        `Read and write settings stored at ` + config.FilePath() + `.`,
	Annotations: map[string]string{skipProjectAnnotation: ""},
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Set a configuration value",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{skipProjectAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !slices.Contains(settableKeys, key) {
			return fmt.Errorf("unknown config key %q (known: %v)", key, settableKeys)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:         "get <key>",
	Short:       "Get a configuration value",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipProjectAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
