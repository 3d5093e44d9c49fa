package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/journal"
	"github.com/ramanasai/journal/internal/logging"
)

var (
	writeTitle    string
	writeMood     string
	writeAlso     string
	writeCategory string
	writeTags     string
)

var writeCmd = &cobra.Command{
	Use:   "write [content]",
	Short: "Create or update today's entry",
	Long: `Examples:
	journal write -t "Long run" -m happy --tags running,health "Ran 10k along the river"
	journal write -t "Quiet day" -m calm --also grateful,relaxed
	echo "notes from stdin" | journal write -t "Evening" -m thoughtful -
	journal write --tags work,family                 # only change the tags of today's entry`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.FromContext(cmd.Context())

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		// Unset flags keep today's values.
		input, err := s.svc.Today()
		if err != nil && !errors.Is(err, journal.ErrNotFound) {
			return err
		}
		existed := err == nil

		flags := cmd.Flags()
		if flags.Changed("title") {
			input.Title = writeTitle
		}
		if flags.Changed("mood") {
			input.PrimaryMood = parseMood(writeMood)
		}
		if flags.Changed("also") {
			input.SecondaryMoods = journal.ParseMoods(writeAlso)
		}
		if flags.Changed("category") {
			input.Category = writeCategory
		}
		if flags.Changed("tags") {
			input.Tags = journal.ParseTags(writeTags)
		}
		switch {
		case len(args) == 1 && args[0] == "-":
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read content: %w", err)
			}
			input.Content = strings.TrimRight(string(b), "\n")
		case len(args) > 0:
			input.Content = strings.Join(args, " ")
		}

		saved, err := s.svc.SaveToday(input)
		if err != nil {
			return err
		}
		log.Info("entry saved", slog.String("id", saved.ID), slog.String("date", saved.EntryDate.Format("2006-01-02")))

		if existed {
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry for %s.\n", saved.EntryDate.Format("2006-01-02"))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved entry for %s.\n", saved.EntryDate.Format("2006-01-02"))
		}
		return nil
	},
}

// parseMood resolves a label case-insensitively and keeps unknown input
// verbatim so validation can name it.
func parseMood(s string) journal.Mood {
	if m, ok := journal.ParseMood(s); ok {
		return m
	}
	return journal.Mood(strings.TrimSpace(s))
}

func init() {
	writeCmd.Flags().StringVarP(&writeTitle, "title", "t", "", "Entry title")
	writeCmd.Flags().StringVarP(&writeMood, "mood", "m", "", "Primary mood: "+moodList())
	writeCmd.Flags().StringVar(&writeAlso, "also", "", "Up to two comma separated secondary moods")
	writeCmd.Flags().StringVarP(&writeCategory, "category", "c", "", "Category")
	writeCmd.Flags().StringVar(&writeTags, "tags", "", "Comma separated tags")
}

func moodList() string {
	moods := journal.Moods()
	labels := make([]string, 0, len(moods))
	for _, m := range moods {
		labels = append(labels, strings.ToLower(string(m)))
	}
	return strings.Join(labels, "|")
}
