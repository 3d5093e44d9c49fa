package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
	"github.com/ramanasai/journal/internal/utils"
)

const defaultPerPage = 10

var (
	listSearch  string
	listFrom    string
	listTo      string
	listPreset  string
	listMood    string
	listPage    int
	listPerPage int
	listFormat  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Long: `Examples:
	journal list                                  # every entry, 10 per page
	journal list --search river --page 2          # title/content search
	journal list --preset last30 --mood happy     # happy days of the last 30
	journal list --from "2 weeks ago" --to yesterday --format csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(listFormat)
		if err != nil {
			return err
		}

		filter := journal.Filter{Text: listSearch}
		filters := map[string]string{}
		now := today()

		if listPreset != "" {
			rng, err := utils.Preset(listPreset, now)
			if err != nil {
				return fmt.Errorf("invalid --preset %q: %w", listPreset, err)
			}
			filter.From, filter.To = rng.Start, rng.End
		}
		if listFrom != "" {
			if filter.From, err = utils.ParseDay(listFrom, now); err != nil {
				return fmt.Errorf("invalid --from date %q: %w", listFrom, err)
			}
		}
		if listTo != "" {
			if filter.To, err = utils.ParseDay(listTo, now); err != nil {
				return fmt.Errorf("invalid --to date %q: %w", listTo, err)
			}
		}
		if !filter.From.IsZero() && !filter.To.IsZero() {
			rng := daterange.Normalize(filter.From, filter.To)
			filter.From, filter.To = rng.Start, rng.End
		}
		if !filter.From.IsZero() {
			filters["from"] = filter.From.Format(time.DateOnly)
		}
		if !filter.To.IsZero() {
			filters["to"] = filter.To.Format(time.DateOnly)
		}
		if listMood != "" {
			m, ok := journal.ParseMood(listMood)
			if !ok {
				return fmt.Errorf("unknown mood %q (%s)", listMood, moodList())
			}
			filter.Mood = m
			filters["mood"] = string(m)
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.svc.Search(filter)
		if err != nil {
			return err
		}

		p := utils.NewPagination(len(entries), listPerPage, listPage)
		out, err := r.RenderEntryList(&utils.EntryList{
			Entries:    utils.Paginate(entries, p),
			Total:      p.Total,
			Page:       p.Current,
			PerPage:    p.PerPage,
			TotalPages: p.TotalPages,
			Query:      listSearch,
			Filters:    filters,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive text in title or content")
	listCmd.Flags().StringVar(&listFrom, "from", "", "First day (today, yesterday, 2024-03-01, 3 days ago, ...)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Last day")
	listCmd.Flags().StringVar(&listPreset, "preset", "", "Date preset: week|month|year|last7|last30|last90|<days>")
	listCmd.Flags().StringVarP(&listMood, "mood", "m", "", "Only entries with this primary mood")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", defaultPerPage, "Entries per page (0 for all)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "Output format: default|json|csv|compact|quiet")
}
