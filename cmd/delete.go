package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/logging"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete today's entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		deleted, err := s.svc.DeleteToday()
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Fprintln(cmd.OutOrStdout(), "No entry for today.")
			return nil
		}
		logging.FromContext(cmd.Context()).Info("entry deleted")
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted today's entry.")
		return nil
	},
}
