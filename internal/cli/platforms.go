package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mqtt-plugin/libstage/internal/config"
	"github.com/mqtt-plugin/libstage/internal/descriptor"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

var platformsJSON bool

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported target platforms",
	Args:  cobra.NoArgs,
	RunE:  runPlatforms,
}

func init() {
	platformsCmd.Flags().BoolVar(&platformsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(platformsCmd)
}

// platformEntry represents a supported target for display.
type platformEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ABI     string `json:"abi,omitempty"`
	Staging bool   `json:"staging"`
	Host    bool   `json:"host"`
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	l := config.Current().Layout()
	host := platform.Host()

	var entries []platformEntry
	for _, t := range platform.All() {
		entries = append(entries, platformEntry{
			ID:      t.ID(),
			Name:    t.String(),
			ABI:     t.Arch(),
			Staging: descriptor.Resolve(t, l).NeedsStaging(),
			Host:    t == host,
		})
	}

	out := cmd.OutOrStdout()
	if platformsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling platforms: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tABI\tSTAGING")
	for _, e := range entries {
		abi := e.ABI
		if abi == "" {
			abi = "-"
		}
		copies := "no"
		if e.Staging {
			copies = "yes"
		}
		id := e.ID
		if e.Host {
			id += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, e.Name, abi, copies)
	}
	return w.Flush()
}
