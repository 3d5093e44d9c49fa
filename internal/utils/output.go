package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/journal/internal/analytics"
	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
)

// OutputFormat selects how entries and reports are printed.
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ParseFormat accepts the --format flag values.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatDefault:
		return FormatDefault, nil
	case FormatJSON, FormatCSV, FormatCompact, FormatQuiet:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (default, json, csv, compact, quiet)", s)
}

type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{Format: FormatDefault, Width: width, Color: os.Getenv("NO_COLOR") == ""}
}

// EntryList is one page of entries plus how it was selected.
type EntryList struct {
	Entries    []journal.Entry   `json:"entries"`
	Total      int               `json:"total"`
	Page       int               `json:"page,omitempty"`
	PerPage    int               `json:"per_page,omitempty"`
	TotalPages int               `json:"total_pages,omitempty"`
	Query      string            `json:"query,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

type Renderer struct {
	config *RenderConfig
	styles *Styles
}

type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Label     lipgloss.Style
	Date      lipgloss.Style
	Tags      lipgloss.Style
	Text      lipgloss.Style
	Bar       lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Mood      map[journal.MoodCategory]lipgloss.Style
}

func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	plain := lipgloss.NewStyle()
	if !color {
		return &Styles{
			Title: plain.Bold(true), Separator: plain, Meta: plain, Label: plain, Date: plain,
			Tags: plain, Text: plain, Bar: plain, Success: plain, Warning: plain,
			Mood: map[journal.MoodCategory]lipgloss.Style{
				journal.Positive: plain, journal.Neutral: plain, journal.Negative: plain,
			},
		}
	}
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Meta:      lipgloss.NewStyle().Faint(true),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
		Date:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Tags:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
		Text:      lipgloss.NewStyle(),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("#94E2D5")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
		Mood: map[journal.MoodCategory]lipgloss.Style{
			journal.Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
			journal.Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
			journal.Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		},
	}
}

func (r *Renderer) rule() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 100)))
}

func (r *Renderer) mood(m journal.Mood) string {
	return r.styles.Mood[m.Category()].Render(string(m))
}

// RenderEntryList renders a list of entries according to the configured format
func (r *Renderer) RenderEntryList(list *EntryList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return marshalJSON(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatCompact:
		return r.renderCompact(list), nil
	case FormatQuiet:
		var b strings.Builder
		for _, e := range list.Entries {
			b.WriteString(daterange.Key(e.EntryDate))
			b.WriteString("\n")
		}
		return b.String(), nil
	default:
		return r.renderList(list), nil
	}
}

func (r *Renderer) renderList(list *EntryList) string {
	var b strings.Builder
	if list.Query != "" {
		b.WriteString(r.styles.Title.Render("Search Results"))
		b.WriteString(r.styles.Separator.Render("  query: "))
		b.WriteString(list.Query)
	} else {
		b.WriteString(r.styles.Title.Render("Journal Entries"))
	}
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")

	if len(list.Entries) == 0 {
		b.WriteString(r.styles.Meta.Render("No entries."))
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range list.Entries {
		b.WriteString(r.entryHeader(e))
		if preview := preview(e.Content, r.config.Width-4); preview != "" {
			b.WriteString("  ")
			b.WriteString(r.styles.Text.Render(preview))
			b.WriteString("\n")
		}
		b.WriteString(r.rule())
		b.WriteString("\n")
	}

	p := NewPagination(list.Total, list.PerPage, list.Page)
	b.WriteString(r.styles.Meta.Render(p.FormatSummary()))
	b.WriteString("\n")
	if nav := p.FormatNavigation(); nav != "" {
		b.WriteString(r.styles.Meta.Render(nav))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) entryHeader(e journal.Entry) string {
	parts := []string{
		r.styles.Date.Render(daterange.Key(e.EntryDate)),
		r.styles.Title.Render(e.Title),
		r.mood(e.PrimaryMood),
	}
	if e.Category != "" {
		parts = append(parts, r.styles.Meta.Render("["+e.Category+"]"))
	}
	if len(e.Tags) > 0 {
		parts = append(parts, r.styles.Tags.Render("#"+strings.Join(e.Tags, " #")))
	}
	return strings.Join(parts, "  ") + "\n"
}

// RenderEntry prints one entry in full.
func (r *Renderer) RenderEntry(e journal.Entry) (string, error) {
	if r.config.Format == FormatJSON {
		return marshalJSON(e)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Journal Entry - " + daterange.Key(e.EntryDate)))
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")

	secondary := make([]string, 0, len(e.SecondaryMoods))
	for _, m := range e.SecondaryMoods {
		secondary = append(secondary, r.mood(m))
	}
	fields := []struct{ label, value string }{
		{"Title", e.Title},
		{"Category", e.Category},
		{"Primary Mood", r.mood(e.PrimaryMood)},
		{"Secondary Moods", strings.Join(secondary, ", ")},
		{"Tags", strings.Join(e.Tags, ", ")},
		{"Words", strconv.Itoa(analytics.CountWords(e.Content))},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render(fmt.Sprintf("%-16s", f.label+":")), f.value)
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Text.Render(e.Content))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Meta.Render(fmt.Sprintf("Created %s  Updated %s",
		e.CreatedAt.Local().Format("2006-01-02 15:04"), e.UpdatedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n")
	return b.String(), nil
}

func (r *Renderer) renderCSV(list *EntryList) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "date", "title", "primary_mood", "secondary_moods", "category", "tags", "words", "content"})
	for _, e := range list.Entries {
		_ = w.Write([]string{
			e.ID,
			daterange.Key(e.EntryDate),
			e.Title,
			string(e.PrimaryMood),
			journal.JoinMoods(e.SecondaryMoods),
			e.Category,
			journal.JoinTags(e.Tags),
			strconv.Itoa(analytics.CountWords(e.Content)),
			e.Content,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return b.String(), nil
}

func (r *Renderer) renderCompact(list *EntryList) string {
	var b strings.Builder
	for _, e := range list.Entries {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.styles.Date.Render(daterange.Key(e.EntryDate)), r.mood(e.PrimaryMood), e.Title)
	}
	return b.String()
}

// RenderDashboard prints the analytics report.
func (r *Renderer) RenderDashboard(d analytics.Dashboard) (string, error) {
	if r.config.Format == FormatJSON {
		return marshalJSON(d)
	}

	var b strings.Builder
	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(r.styles.Title.Render(title))
		b.WriteString("\n")
	}
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", r.styles.Label.Render(fmt.Sprintf("%-18s", label)), value)
	}

	b.WriteString(r.styles.Title.Render("Journal Analytics"))
	b.WriteString(r.styles.Meta.Render("  " + d.Range.String()))
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")

	section("Streaks")
	row("Current", countOf(d.CurrentStreak, "day"))
	longest := countOf(d.LongestStreak, "day")
	for _, run := range d.LongestRanges {
		longest += r.styles.Meta.Render(fmt.Sprintf("  %s..%s", daterange.Key(run.Start), daterange.Key(run.End)))
	}
	row("Longest", longest)
	row("Missed in range", strconv.Itoa(len(d.MissedDays)))

	section("Writing")
	row("Entries", strconv.Itoa(d.EntriesInRange))
	row("Words", strconv.Itoa(d.TotalWords))
	row("Avg words/entry", fmt.Sprintf("%.1f", d.AverageWords))

	section("Mood")
	for _, c := range journal.MoodCategories {
		row(string(c), r.bar(d.MoodDistribution[c], d.EntriesInRange, 30)+" "+strconv.Itoa(d.MoodDistribution[c]))
	}
	if d.MostFrequentMood != "" {
		row("Most frequent", r.mood(journal.Mood(d.MostFrequentMood)))
	}
	for _, c := range d.MoodCounts {
		row("  "+c.Label, strconv.Itoa(c.Count))
	}

	section("Top Tags")
	if len(d.TopTags) == 0 {
		b.WriteString(r.styles.Meta.Render("  none"))
		b.WriteString("\n")
	}
	for _, c := range d.TopTags {
		row("#"+c.Label, strconv.Itoa(c.Count))
	}

	section("Word Trend")
	peak := 0
	for _, p := range d.WordTrend {
		peak = max(peak, p.Words)
	}
	for _, p := range d.WordTrend {
		row(p.Date.Format("Mon 2006-01-02"), r.bar(p.Words, peak, 30)+" "+strconv.Itoa(p.Words))
	}
	return b.String(), nil
}

// bar draws n/total as a block bar of at most width cells.
func (r *Renderer) bar(n, total, width int) string {
	if total <= 0 || n <= 0 {
		return strings.Repeat("·", width)
	}
	filled := min(width, max(1, n*width/total))
	return r.styles.Bar.Render(strings.Repeat("█", filled)) + strings.Repeat("·", width-filled)
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func preview(content string, width int) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if width > 3 && len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return line
}

func countOf(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
