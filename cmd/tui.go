package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/ui"
)

// tuiCmd launches the Bubble Tea dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the analytics dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		known, err := s.store.KnownTags()
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		tags := make([]string, 0, len(known))
		for _, t := range known {
			tags = append(tags, t.Name)
		}

		return ui.Run(ui.Options{
			Service:    s.svc,
			Now:        cfg.Now,
			Theme:      ui.ThemeFor(cfg.Theme),
			WindowDays: cfg.Analytics.WindowDays,
			TopTags:    cfg.Analytics.TopTags,
			Tags:       tags,
		})
	},
}
