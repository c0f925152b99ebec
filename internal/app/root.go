// Package app contains the Cobra command tree for touchline.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/touchline/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "touchline",
	Short: "Tactical analysis and coaching recommendations",
	Long: `touchline analyzes a formation, its players, and the match situation,
producing geometric diagnostics, player-position fit scores, pairwise
chemistry, heat zones, and one ranked list of coaching recommendations,
optionally augmented by an AI advisory call with deterministic fallback.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("touchline", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze    Run a full analysis pass over a squad file")
		fmt.Println("  chemistry  Show top and bottom chemistry links")
		fmt.Println("  heatmap    Render player influence zones on a pitch")
		fmt.Println("  history    Show the persisted coaching log")
		fmt.Println("  watch      Re-analyze on an interval and alert on changes")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.AutoDetect()
		}
	})
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/touchline/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
