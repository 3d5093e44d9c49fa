package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/journal"
	"github.com/ramanasai/journal/internal/utils"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the entry of a day (default today)",
	Long: `Examples:
	journal show
	journal show yesterday
	journal show 2024-03-01 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := today()
		if len(args) == 1 {
			var err error
			if day, err = utils.ParseDay(args[0], day); err != nil {
				return err
			}
		}

		r, err := newRenderer(showFormat)
		if err != nil {
			return err
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.svc.OnDate(day)
		if errors.Is(err, journal.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No entry for %s.\n", day.Format("2006-01-02"))
			return nil
		}
		if err != nil {
			return err
		}

		out, err := r.RenderEntry(e)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "", "Output format: default|json")
}
