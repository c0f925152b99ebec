package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/touchline/internal/config"
	"github.com/blackwell-systems/touchline/internal/output"
	"github.com/blackwell-systems/touchline/internal/store"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the persisted coaching log",
	Long: `List recommendations previously applied with 'analyze --apply', newest
first. The log lives in the local touchline database.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Maximum entries to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening coaching log: %w", err)
	}
	defer db.Close()

	entries, err := db.CoachingLog(historyLimit)
	if err != nil {
		return fmt.Errorf("reading coaching log: %w", err)
	}

	if historyJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println(output.StyleMuted.Render("Coaching log is empty. Apply a recommendation with 'analyze --apply <id>'."))
		return nil
	}

	fmt.Println(output.Section("Coaching Log"))
	fmt.Println()
	table := output.NewTable("APPLIED", "PRIORITY", "TYPE", "CONF", "RECOMMENDATION")
	for _, e := range entries {
		table.AddRow(
			e.StoredAt.Local().Format("2006-01-02 15:04"),
			output.PriorityStyle(e.Priority).Render(e.Priority),
			e.Type,
			fmt.Sprintf("%.0f", e.Confidence),
			e.Title,
		)
	}
	table.Print()
	return nil
}
