package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/touchline/internal/output"
	"github.com/blackwell-systems/touchline/internal/tactics"
)

var chemistryJSON bool

var chemistryCmd = &cobra.Command{
	Use:   "chemistry <squad-file>",
	Short: "Show top and bottom chemistry links",
	Long: `Score every unordered pair of players on the team and show the five
strongest and five weakest links.`,
	Args: cobra.ExactArgs(1),
	RunE: runChemistry,
}

func init() {
	chemistryCmd.Flags().BoolVar(&chemistryJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(chemistryCmd)
}

func runChemistry(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	pairs := tactics.CalculateChemistry(&snap.Formation, snap.Players)

	if chemistryJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	}

	if len(pairs) == 0 {
		fmt.Println(output.StyleMuted.Render("Not enough named players to score chemistry."))
		return nil
	}

	names := make(map[string]string, len(snap.Players))
	for _, p := range snap.Players {
		names[p.ID] = p.Name
	}
	display := func(id string) string {
		if n, ok := names[id]; ok && n != "" {
			return n
		}
		return id
	}

	fmt.Println(output.Section("Top Chemistry Links"))
	top := output.NewTable("PLAYERS", "SCORE", "TAG")
	for _, p := range tactics.TopLinks(pairs, tactics.ChemistryLinkCount) {
		top.AddRow(display(p.PlayerA)+" & "+display(p.PlayerB),
			output.StyleGood.Render(fmt.Sprintf("%.0f", p.Score)), p.RelationshipTag)
	}
	fmt.Println()
	top.Print()

	fmt.Println(output.Section("Bottom Chemistry Links"))
	bottom := output.NewTable("PLAYERS", "SCORE", "TAG")
	for _, p := range tactics.BottomLinks(pairs, tactics.ChemistryLinkCount) {
		bottom.AddRow(display(p.PlayerA)+" & "+display(p.PlayerB),
			output.StyleBad.Render(fmt.Sprintf("%.0f", p.Score)), p.RelationshipTag)
	}
	fmt.Println()
	bottom.Print()
	return nil
}
