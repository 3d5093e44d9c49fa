// Package ui is the interactive journal dashboard.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/journal/internal/analytics"
	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
)

type view int

const (
	viewDashboard view = iota
	viewEntries
	viewWrite
)

var viewNames = []string{"Dashboard", "Entries", "Write"}

// Options wires the dashboard to its data.
type Options struct {
	Service    *journal.Service
	Now        func() time.Time
	Theme      Theme
	WindowDays int
	TopTags    int
	Tags       []string
}

type Model struct {
	svc     *journal.Service
	now     func() time.Time
	theme   Theme
	topTags int

	view    view
	window  int             // days in the analytics window
	offset  int             // days the window end lies before today
	all     []journal.Entry // every entry; the dashboard is built from these
	entries []journal.Entry // entries matching the filter
	dash    analytics.Dashboard

	cursor    int
	filter    textinput.Model
	filtering bool

	title, mood, secondary, tags Autocomplete
	content                      textarea.Model
	field                        int

	help          help.Model
	width, height int
	status        string
	err           error
}

type entriesLoadedMsg struct {
	all     []journal.Entry
	entries []journal.Entry
	err     error
}

type savedMsg struct {
	entry journal.Entry
	err   error
}

func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WindowDays < 1 {
		opts.WindowDays = 30
	}
	if opts.Theme.Mood == nil {
		opts.Theme = DefaultTheme
	}

	moods := make([]string, 0, len(journal.Moods()))
	for _, m := range journal.Moods() {
		moods = append(moods, string(m))
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "search title or content"

	content := textarea.New()
	content.Placeholder = "How was your day?"
	content.ShowLineNumbers = false
	content.SetHeight(8)

	return Model{
		svc:       opts.Service,
		now:       opts.Now,
		theme:     opts.Theme,
		topTags:   opts.TopTags,
		window:    opts.WindowDays,
		filter:    filter,
		title:     NewAutocomplete("Title", nil, false),
		mood:      NewAutocomplete("Primary mood", moods, false),
		secondary: NewAutocomplete("Up to two more moods, comma separated", moods, true),
		tags:      NewAutocomplete("Tags, comma separated", opts.Tags, true),
		content:   content,
		help:      help.New(),
	}
}

// Run starts the full-screen dashboard.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		all, err := m.svc.Search(journal.Filter{})
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		entries := all
		if q := m.filter.Value(); strings.TrimSpace(q) != "" {
			if entries, err = m.svc.Search(journal.Filter{Text: q}); err != nil {
				return entriesLoadedMsg{err: err}
			}
		}
		return entriesLoadedMsg{all: all, entries: entries}
	}
}

func (m Model) saveCmd() tea.Cmd {
	input := journal.Entry{
		Title:          m.title.Value(),
		Content:        m.content.Value(),
		PrimaryMood:    parseMood(m.mood.Value()),
		SecondaryMoods: journal.ParseMoods(m.secondary.Value()),
		Tags:           journal.ParseTags(m.tags.Value()),
	}
	return func() tea.Msg {
		e, err := m.svc.SaveToday(input)
		return savedMsg{entry: e, err: err}
	}
}

func parseMood(s string) journal.Mood {
	if m, ok := journal.ParseMood(strings.TrimSpace(s)); ok {
		return m
	}
	return journal.Mood(strings.TrimSpace(s))
}

func (m Model) today() time.Time { return daterange.Day(m.now()) }

func (m Model) windowRange() daterange.Range {
	return daterange.Last(m.window, m.today().AddDate(0, 0, -m.offset))
}

func (m *Model) rebuild() {
	r := m.windowRange()
	m.dash = analytics.BuildDashboard(m.all, r.Start, r.End, m.today(), m.topTags)
	if m.cursor >= len(m.entries) {
		m.cursor = max(0, len(m.entries)-1)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.content.SetWidth(max(20, msg.Width-6))
		return m, nil

	case entriesLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.all, m.entries = msg.all, msg.entries
			m.rebuild()
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Saved entry for " + daterange.Key(msg.entry.EntryDate)
		m.view = viewDashboard
		m.blurForm()
		return m, m.loadCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.view == viewWrite:
			return m.updateWrite(msg)
		case m.filtering:
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.NextView):
		m.view = (m.view + 1) % viewWrite
	case key.Matches(msg, keys.Write):
		return m.startWrite()
	case key.Matches(msg, keys.Reload):
		m.status = ""
		return m, m.loadCmd()
	case key.Matches(msg, keys.Earlier):
		m.offset += m.window
		m.rebuild()
	case key.Matches(msg, keys.Later):
		m.offset = max(0, m.offset-m.window)
		m.rebuild()
	case key.Matches(msg, keys.Wider):
		m.window = min(m.window*2, 3660)
		m.rebuild()
	case key.Matches(msg, keys.Narrower):
		m.window = max(m.window/2, 1)
		m.rebuild()
	case key.Matches(msg, keys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, keys.Down):
		m.cursor = min(max(0, len(m.entries)-1), m.cursor+1)
	case key.Matches(msg, keys.Filter):
		m.view = viewEntries
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.Back):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.cursor = 0
		return m, m.loadCmd()
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		return m, m.loadCmd()
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// startWrite opens the form, prefilled with today's entry when there is one.
func (m Model) startWrite() (tea.Model, tea.Cmd) {
	m.view = viewWrite
	m.err = nil
	m.status = ""
	m.title.SetValue("")
	m.mood.SetValue("")
	m.secondary.SetValue("")
	m.tags.SetValue("")
	m.content.SetValue("")

	e, err := m.svc.Today()
	switch {
	case err == nil:
		m.title.SetValue(e.Title)
		m.mood.SetValue(string(e.PrimaryMood))
		m.secondary.SetValue(journal.JoinMoods(e.SecondaryMoods))
		m.tags.SetValue(strings.Join(e.Tags, ", "))
		m.content.SetValue(e.Content)
	case !errors.Is(err, journal.ErrNotFound):
		m.err = err
	}
	m.field = 0
	cmd := m.focusField()
	return m, cmd
}

const formFields = 5

func (m *Model) focusField() tea.Cmd {
	m.blurForm()
	switch m.field {
	case 0:
		return m.title.Focus()
	case 1:
		return m.mood.Focus()
	case 2:
		return m.secondary.Focus()
	case 3:
		return m.tags.Focus()
	default:
		return m.content.Focus()
	}
}

func (m *Model) blurForm() {
	m.title.Blur()
	m.mood.Blur()
	m.secondary.Blur()
	m.tags.Blur()
	m.content.Blur()
}

func (m Model) updateWrite(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		m.blurForm()
		return m, nil
	case "ctrl+s":
		return m, m.saveCmd()
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.field = (m.field + 1) % formFields
		} else {
			m.field = (m.field + formFields - 1) % formFields
		}
		cmd := m.focusField()
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.field {
	case 0:
		m.title, cmd = m.title.Update(msg)
	case 1:
		m.mood, cmd = m.mood.Update(msg)
	case 2:
		m.secondary, cmd = m.secondary.Update(msg)
	case 3:
		m.tags, cmd = m.tags.Update(msg)
	default:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	t := m.theme
	var b strings.Builder

	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.view {
			tabs[i] = t.ActiveTab.Render(name)
		} else {
			tabs[i] = t.Tab.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.view {
	case viewDashboard:
		b.WriteString(m.viewDashboard())
	case viewEntries:
		b.WriteString(m.viewEntries())
	case viewWrite:
		b.WriteString(m.viewWrite())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(t.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(t.Success.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) moodStyle(label string) string {
	return m.theme.Mood[journal.CategoryOf(label)].Render(label)
}

func (m Model) viewDashboard() string {
	t, d := m.theme, m.dash
	line := func(label, value string) string {
		return t.Label.Render(fmt.Sprintf("%-16s", label)) + " " + t.Value.Render(value) + "\n"
	}

	var streaks strings.Builder
	streaks.WriteString(t.Title.Render("Streaks") + "\n")
	streaks.WriteString(line("Current", strconv.Itoa(d.CurrentStreak)+" days"))
	streaks.WriteString(line("Longest", strconv.Itoa(d.LongestStreak)+" days"))
	for _, r := range d.LongestRanges {
		streaks.WriteString(t.Hint.Render(fmt.Sprintf("  %s..%s", daterange.Key(r.Start), daterange.Key(r.End))) + "\n")
	}
	streaks.WriteString(line("Missed", strconv.Itoa(len(d.MissedDays))))

	var mood strings.Builder
	mood.WriteString(t.Title.Render("Mood") + "\n")
	for _, c := range journal.MoodCategories {
		n := d.MoodDistribution[c]
		mood.WriteString(t.Mood[c].Render(fmt.Sprintf("%-9s", c)) + " " + m.bar(n, d.EntriesInRange, 20) + " " + strconv.Itoa(n) + "\n")
	}
	if d.MostFrequentMood != "" {
		mood.WriteString(t.Label.Render("Most frequent") + " " + m.moodStyle(d.MostFrequentMood) + "\n")
	}

	var tags strings.Builder
	tags.WriteString(t.Title.Render("Top Tags") + "\n")
	if len(d.TopTags) == 0 {
		tags.WriteString(t.Hint.Render("none") + "\n")
	}
	for _, c := range d.TopTags {
		tags.WriteString(line("#"+c.Label, strconv.Itoa(c.Count)))
	}

	var trend strings.Builder
	trend.WriteString(t.Title.Render("Words per day") + "  " +
		t.Hint.Render(fmt.Sprintf("%d entries, %d words, %.1f avg", d.EntriesInRange, d.TotalWords, d.AverageWords)) + "\n")
	trend.WriteString(m.sparkline(d.WordTrend) + "\n")

	header := t.Title.Render("Journal") + "  " + t.Hint.Render(m.windowRange().String())
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Border.Render(streaks.String()), t.Border.Render(mood.String()), t.Border.Render(tags.String()))
	return header + "\n" + top + "\n" + t.Border.Render(trend.String()) + "\n"
}

var sparks = []rune("▁▂▃▄▅▆▇█")

func (m Model) sparkline(points []analytics.DayCount) string {
	peak := 0
	for _, p := range points {
		peak = max(peak, p.Words)
	}
	var b strings.Builder
	for _, p := range points {
		switch {
		case p.Words == 0:
			b.WriteRune(' ')
		default:
			b.WriteRune(sparks[min(len(sparks)-1, p.Words*(len(sparks)-1)/peak)])
		}
	}
	return m.theme.Bar.Render(b.String())
}

func (m Model) bar(n, total, width int) string {
	if total <= 0 || n <= 0 {
		return m.theme.Hint.Render(strings.Repeat("·", width))
	}
	filled := min(width, max(1, n*width/total))
	return m.theme.Bar.Render(strings.Repeat("█", filled)) + m.theme.Hint.Render(strings.Repeat("·", width-filled))
}

func (m Model) viewEntries() string {
	t := m.theme
	var b strings.Builder
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(t.Hint.Render("No entries. Press w to write today's."))
		b.WriteString("\n")
		return b.String()
	}

	visible := max(5, m.height-12)
	start := max(0, min(m.cursor-visible/2, len(m.entries)-visible))
	end := min(len(m.entries), start+visible)
	for i := start; i < end; i++ {
		e := m.entries[i]
		row := fmt.Sprintf("%s  %s  %s", daterange.Key(e.EntryDate), e.Title, m.moodStyle(string(e.PrimaryMood)))
		if i == m.cursor {
			b.WriteString(t.Selected.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	e := m.entries[m.cursor]
	detail := t.Title.Render(e.Title) + "\n" +
		t.Label.Render("Tags: ") + t.Value.Render(strings.Join(e.Tags, ", ")) + "\n\n" +
		e.Content
	b.WriteString("\n")
	b.WriteString(t.Border.Render(detail))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewWrite() string {
	t := m.theme
	label := func(i int, s string) string {
		if i == m.field {
			return t.Selected.Render(fmt.Sprintf("%-16s", s))
		}
		return t.Label.Render(fmt.Sprintf("%-16s", s))
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Today's entry - " + daterange.Key(m.today())))
	b.WriteString("\n\n")
	b.WriteString(label(0, "Title") + " " + m.title.View(t) + "\n")
	b.WriteString(label(1, "Mood") + " " + m.mood.View(t) + "\n")
	b.WriteString(label(2, "Also feeling") + " " + m.secondary.View(t) + "\n")
	b.WriteString(label(3, "Tags") + " " + m.tags.View(t) + "\n\n")
	b.WriteString(label(4, "Content") + "\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")
	b.WriteString(t.Hint.Render("tab next field · → accept suggestion · ctrl+n next suggestion · ctrl+s save · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
