package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/touchline/internal/output"
	"github.com/blackwell-systems/touchline/internal/tactics"
)

var heatmapJSON bool

var heatmapCmd = &cobra.Command{
	Use:   "heatmap <squad-file>",
	Short: "Render player influence zones on a pitch",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeatmap,
}

func init() {
	heatmapCmd.Flags().BoolVar(&heatmapJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	zones, coverage := tactics.GenerateHeatZones(&snap.Formation, snap.Players)

	if heatmapJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Zones    []tactics.HeatZone `json:"heatZones"`
			Coverage float64            `json:"coverage"`
		}{zones, coverage})
	}

	fmt.Println(output.Section(fmt.Sprintf("Heat Map — %s", snap.Formation.Name)))
	fmt.Println()
	if len(zones) == 0 {
		fmt.Println(output.StyleMuted.Render(" No players placed on the pitch."))
		return nil
	}
	fmt.Println(output.RenderPitch(zones))
	fmt.Printf("\n Coverage  %s\n", output.ScoreBar(coverage, 20))
	return nil
}
