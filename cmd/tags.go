package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/db"
)

var (
	tagsSearch string
	tagsLimit  int
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List known tags with usage counts",
	Long: `Examples:
	journal tags
	journal tags --search wo --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		var tags []db.TagUsage
		if strings.TrimSpace(tagsSearch) != "" {
			tags, err = s.store.SearchTags(tagsSearch, tagsLimit)
		} else {
			tags, err = s.store.KnownTags()
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(tags) == 0 {
			fmt.Fprintln(out, "No tags.")
			return nil
		}
		width := 0
		for _, t := range tags {
			width = max(width, len(t.Name))
		}
		for _, t := range tags {
			fmt.Fprintf(out, "%-*s  %d\n", width, t.Name, t.Entries)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().StringVarP(&tagsSearch, "search", "s", "", "Only tags containing this text")
	tagsCmd.Flags().IntVarP(&tagsLimit, "limit", "n", 20, "Maximum search results")
}
