package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mqtt-plugin/libstage/internal/config"
	"github.com/mqtt-plugin/libstage/internal/logging"
	"github.com/mqtt-plugin/libstage/internal/rules"
	"github.com/mqtt-plugin/libstage/internal/staging"
)

var stageJSON bool

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Stage runtime artifacts into the project Binaries directory",
	Long: `Stage resolves the target platform, copies every runtime artifact that is
missing or outdated into <project>/Binaries/<platform>/, and prints the
runtime dependency paths the host build should register.`,
	Args: cobra.NoArgs,
	RunE: runStage,
}

func init() {
	stageCmd.Flags().BoolVar(&stageJSON, "json", false, "Output the result as JSON")
	rootCmd.AddCommand(stageCmd)
}

func runStage(cmd *cobra.Command, args []string) error {
	s := config.Current()
	target := currentTarget(s)

	res, err := rules.Configure(target, s.Layout(), staging.New(logging.Logger()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if stageJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if len(res.Records) == 0 {
		fmt.Fprintf(out, "No runtime artifacts to stage for %s.\n", target)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	var copiedBytes int64
	for _, rec := range res.Records {
		status := "up to date"
		switch rec.Outcome {
		case staging.OutcomeMissing:
			status = "copied"
		case staging.OutcomeStale:
			status = "replaced"
		}
		if rec.Copied {
			copiedBytes += rec.Size
		}
		fmt.Fprintf(w, "%s\t%s\n", status, rec.Destination)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "%d of %d artifacts copied (%d bytes) to %s\n",
		res.Copied(), len(res.Records), copiedBytes, res.BinariesDir)
	return nil
}
