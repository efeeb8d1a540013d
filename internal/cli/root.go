package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mqtt-plugin/libstage/internal/branding"
	"github.com/mqtt-plugin/libstage/internal/config"
	"github.com/mqtt-plugin/libstage/internal/logging"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectFile string
)

// skipProjectAnnotation marks commands that only work on user settings.
const skipProjectAnnotation = "libstage/skip-project"

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves the include paths, library search paths and link libraries
needed to consume a prebuilt native library on a target platform, and stages the
runtime artifacts that platform loads into <project>/Binaries/<platform>/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Root()); err != nil {
			return err
		}
		config.Load()

		merged := ""
		if _, skip := cmd.Annotations[skipProjectAnnotation]; !skip {
			var err error
			if merged, err = config.MergeProject(projectFile); err != nil {
				return err
			}
		}

		logging.Init(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel))
		if merged != "" {
			logging.Debug("loaded project file", "path", merged)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&projectFile, "project-file", "", "Path to the project file (default ./"+branding.ProjectFile()+")")
	pf.String("platform", "", "Target platform: win64, linux, android or android-<abi> (default: host)")
	pf.String("module-root", "", "Directory of the plugin module's build rules")
	pf.String("project-root", "", "Project directory (default: four levels above the module root)")
	pf.String("third-party-root", "", "Third-party directory (default: <module-root>/../../ThirdParty)")
	pf.String("library", "", "Library directory name under the third-party root")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
}

// flagKeys maps setting keys to the persistent flags that override them.
var flagKeys = map[string]string{
	config.KeyPlatform:       "platform",
	config.KeyModuleRoot:     "module-root",
	config.KeyProjectRoot:    "project-root",
	config.KeyThirdPartyRoot: "third-party-root",
	config.KeyLibrary:        "library",
	config.KeyLogLevel:       "log-level",
}

// bindFlags wires root's persistent flags into Viper for this run.
func bindFlags(root *cobra.Command) error {
	pf := root.PersistentFlags()
	for key, name := range flagKeys {
		if err := viper.BindPFlag(key, pf.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// currentTarget resolves the target platform from settings. Unrecognized
// names degrade to platform.Unknown with a warning.
func currentTarget(s config.Settings) platform.Target {
	t, ok := s.Target()
	if !ok {
		logging.Warn("unrecognized platform, resolving nothing", "platform", s.Platform)
	}
	return t
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", branding.CLIName(), err)
	}
	return err
}
