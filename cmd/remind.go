package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/logging"
	"github.com/ramanasai/journal/internal/notify"
	"github.com/ramanasai/journal/internal/schedule"
	"github.com/ramanasai/journal/internal/streak"
)

var remindNow bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily writing reminder in the foreground",
	Long: `Sends a desktop notification at reminder.time on reminder.workdays,
skipping reminder.holidays. The message carries the current streak.

Examples:
	journal remind          # block and notify every scheduled day
	journal remind --now    # send one reminder and exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		if remindNow {
			return sendReminder(ctx)
		}
		if !cfg.Reminder.Enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "Reminders are disabled; set reminder.enabled in the config.")
			return nil
		}

		s := schedule.FromConfig(cfg)
		next := s.NextAt(time.Now())
		log.Info("reminder scheduled", slog.Time("next", next))
		fmt.Fprintf(cmd.OutOrStdout(), "Next reminder at %s. Ctrl+C to stop.\n", next.Format("Mon 2006-01-02 15:04"))

		s.Run(ctx, func() {
			if err := sendReminder(ctx); err != nil {
				log.Warn("reminder failed", slog.Any("error", err))
			}
		})
		return nil
	},
}

func sendReminder(ctx context.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.store.GetAll()
	if err != nil {
		return err
	}
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.EntryDate)
	}
	calc := streak.New(dates)
	day := today()

	title, msg := notify.Reminder(calc.Current(day), calc.Has(day))
	logging.FromContext(ctx).Debug("sending reminder", slog.String("message", msg))
	return notify.Info(title, msg)
}

func init() {
	remindCmd.Flags().BoolVar(&remindNow, "now", false, "Send one reminder immediately and exit")
}
