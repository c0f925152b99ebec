package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/touchline/internal/config"
	"github.com/blackwell-systems/touchline/internal/output"
	"github.com/blackwell-systems/touchline/internal/store"
	"github.com/blackwell-systems/touchline/internal/tactics"
)

var (
	analyzeAI    bool
	analyzeLimit int
	analyzeSave  bool
	analyzeApply string
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <squad-file>",
	Short: "Run a full analysis pass over a squad file",
	Long: `Load a squad file (formation, players, optional match context), run the
tactical analyzers and strategy rules, and print the ranked coaching
recommendations together with chemistry links and field coverage.

Examples:
  touchline analyze squad.json
  touchline analyze squad.json --ai            # include the AI advisory call
  touchline analyze squad.json --save          # persist the pass as a snapshot
  touchline analyze squad.json --apply fit-p7  # log one recommendation as applied`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAI, "ai", false, "Augment heuristics with the AI advisory gateway")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "Maximum recommendations to show (0 = all)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis as a snapshot")
	analyzeCmd.Flags().StringVar(&analyzeApply, "apply", "", "Store the recommendation with this ID in the coaching log")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	engine, advisoryUsed := buildEngine(cfg, analyzeAI)
	if analyzeAI && !advisoryUsed {
		fmt.Fprintln(os.Stderr, "  Warning: --ai requested but no API key configured; running heuristics only")
	}

	analysis, err := engine.Analyze(cmd.Context(), &snap.Formation, snap.Players, snap.Context)
	if err != nil {
		return err
	}
	if analysis.AdvisoryErr != "" {
		fmt.Fprintf(os.Stderr, "  Warning: advisory unavailable, using heuristic results: %s\n", analysis.AdvisoryErr)
	}

	if analyzeSave {
		if err := saveAnalysis(snap.Formation.Name, analysis, advisoryUsed); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	if analyzeApply != "" {
		if err := applyRecommendation(engine, analysis, analyzeApply); err != nil {
			return err
		}
	}

	recs := analysis.Recommendations
	if analyzeLimit > 0 && len(recs) > analyzeLimit {
		recs = recs[:analyzeLimit]
	}

	if analyzeJSON || flagJSON {
		trimmed := *analysis
		trimmed.Recommendations = recs
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(&trimmed)
	}

	renderAnalysis(snap.Formation.Name, analysis, recs)
	return nil
}

func renderAnalysis(formationName string, analysis *tactics.Analysis, recs []tactics.Recommendation) {
	fmt.Println(output.Section(fmt.Sprintf("Analysis — %s", formationName)))
	fmt.Printf("\n Coverage  %s\n\n", output.ScoreBar(analysis.Coverage, 20))

	if len(recs) == 0 {
		fmt.Println(output.StyleMuted.Render(" No recommendations. The setup looks sound."))
		return
	}

	table := output.NewTable("PRIORITY", "TYPE", "CONF", "RECOMMENDATION")
	for _, r := range recs {
		priority := r.Priority.String()
		table.AddRow(
			output.PriorityStyle(priority).Render(priority),
			string(r.Type),
			fmt.Sprintf("%.0f", r.Confidence),
			r.Title,
		)
	}
	table.Print()

	fmt.Println()
	for _, r := range recs {
		fmt.Printf(" %s %s\n", output.StyleBold.Render(r.Title+":"), r.Description)
		if r.Reasoning != "" {
			fmt.Printf("   %s\n", output.StyleMuted.Render(r.Reasoning))
		}
	}
}

func saveAnalysis(formationName string, analysis *tactics.Analysis, advisoryUsed bool) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.SaveAnalysis(formationName, analysis, advisoryUsed)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  Saved snapshot %d\n", id)
	return nil
}

// applyRecommendation stores one recommendation from this pass in the
// engine history and persists the re-stamped entry to the coaching log.
func applyRecommendation(engine *tactics.Engine, analysis *tactics.Analysis, recID string) error {
	for _, r := range analysis.Recommendations {
		if r.ID != recID {
			continue
		}
		entry := engine.StoreRecommendation(r)

		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening coaching log: %w", err)
		}
		defer db.Close()
		if err := db.AppendCoachingLog(entry); err != nil {
			return fmt.Errorf("appending coaching log: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Applied %s as %s\n", recID, entry.ID)
		return nil
	}
	return fmt.Errorf("no recommendation with id %q in this pass", recID)
}
