package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/touchline/internal/config"
	"github.com/blackwell-systems/touchline/internal/monitor"
	"github.com/blackwell-systems/touchline/internal/output"
	"github.com/blackwell-systems/touchline/internal/squad"
	"github.com/blackwell-systems/touchline/internal/tactics"
)

var (
	watchInterval string
	watchAI       bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <squad-file>",
	Short: "Re-analyze on an interval and alert on changes",
	Long: `Re-run the analysis at a fixed interval while the squad file is being
edited by another tool. Alerts fire when new critical or high-priority
recommendations appear or field coverage drops.

Examples:
  touchline watch squad.json                 # re-analyze every 30s (ctrl-c to stop)
  touchline watch squad.json --interval 10s  # custom interval`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchCmd,
}

func init() {
	watchCmd.Flags().StringVar(&watchInterval, "interval", "", "Re-analysis interval (default from config, 30s)")
	watchCmd.Flags().BoolVar(&watchAI, "ai", false, "Include the AI advisory call in each pass")
	rootCmd.AddCommand(watchCmd)
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	intervalStr := watchInterval
	if intervalStr == "" {
		intervalStr = cfg.Watch.Interval
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", intervalStr, err)
	}
	if interval < time.Second {
		return fmt.Errorf("interval must be at least 1s, got %s", interval)
	}

	engine, _ := buildEngine(cfg, watchAI)

	path := args[0]
	source := func() (*tactics.Formation, []tactics.Player, *tactics.GameContext, error) {
		snap, err := squad.Load(path)
		if err != nil {
			return nil, nil, nil, err
		}
		return &snap.Formation, snap.Players, snap.Context, nil
	}

	m := monitor.New(engine, source, interval, printAlert)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Watching %s every %s (ctrl-c to stop)\n", path, interval)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printAlert(a monitor.Alert) {
	stamp := output.StyleMuted.Render(a.Time.Format("15:04:05"))
	var level string
	switch a.Level {
	case "critical":
		level = output.StyleBad.Render("CRITICAL")
	case "warning":
		level = output.StyleWarn.Render("WARNING ")
	default:
		level = output.StyleMuted.Render("INFO    ")
	}
	fmt.Printf("%s  %s  %s — %s\n", stamp, level, output.StyleBold.Render(a.Title), a.Message)
}
