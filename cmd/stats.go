package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/analytics"
	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/logging"
	"github.com/ramanasai/journal/internal/utils"
)

var (
	statsFrom   string
	statsTo     string
	statsPreset string
	statsTop    int
	statsFormat string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Streaks, mood distribution, top tags and word trend",
	Long: `The window defaults to the last analytics.window_days days ending today.

Examples:
	journal stats
	journal stats --preset month --top 10
	journal stats --from 2024-01-01 --to 2024-03-31 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(statsFormat)
		if err != nil {
			return err
		}
		now := today()
		rng, err := statsWindow(now)
		if err != nil {
			return err
		}
		top := cfg.Analytics.TopTags
		if cmd.Flags().Changed("top") {
			top = statsTop
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.store.GetAll()
		if err != nil {
			return err
		}
		logging.FromContext(cmd.Context()).Debug("building dashboard",
			slog.String("range", rng.String()), slog.Int("entries", len(entries)))

		out, err := r.RenderDashboard(analytics.BuildDashboard(entries, rng.Start, rng.End, now, top))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func statsWindow(now time.Time) (daterange.Range, error) {
	rng := daterange.Last(cfg.Analytics.WindowDays, now)
	if statsPreset != "" {
		var err error
		if rng, err = utils.Preset(statsPreset, now); err != nil {
			return rng, fmt.Errorf("invalid --preset %q: %w", statsPreset, err)
		}
	}
	from, to := rng.Start, rng.End
	if statsFrom != "" {
		var err error
		if from, err = utils.ParseDay(statsFrom, now); err != nil {
			return rng, fmt.Errorf("invalid --from date %q: %w", statsFrom, err)
		}
	}
	if statsTo != "" {
		var err error
		if to, err = utils.ParseDay(statsTo, now); err != nil {
			return rng, fmt.Errorf("invalid --to date %q: %w", statsTo, err)
		}
	}
	return daterange.Normalize(from, to), nil
}

func init() {
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "First day of the window")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "Last day of the window")
	statsCmd.Flags().StringVar(&statsPreset, "preset", "", "Window preset: week|month|year|last7|last30|last90|<days>")
	statsCmd.Flags().IntVarP(&statsTop, "top", "n", 5, "Number of top tags (default analytics.top_tags)")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "Output format: default|json")
}
