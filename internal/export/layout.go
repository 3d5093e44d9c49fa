// Package export turns journal entries into paginated PDF documents.
//
// Layout is a pure function producing positioned text operations; a Writer
// turns those operations into a file.
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
)

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no entries to export")

// A4 portrait in points.
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

const (
	marginLeft    = 40.0
	valueColumn   = 140.0
	bannerY       = 30.0
	bannerGap     = 30.0
	fieldGap      = 18.0
	sectionGap    = 24.0
	headingGap    = 16.0
	lineHeight    = 14.0
	bottomLimit   = PageHeight - 40 // a line drawn below this starts a new page
	continuationY = 40.0
	footerY       = PageHeight - 25

	// WrapColumns is the hard wrap width of content lines, in characters.
	WrapColumns = 90

	timestampLayout = "2006-01-02 15:04"
)

// Font selects one of the three text styles used in a document.
type Font int

const (
	FontBody Font = iota
	FontHeading
	FontBanner
)

// Op draws Text with its baseline at (X, Y).
type Op struct {
	Font Font
	X, Y float64
	Text string
}

// Page is the ordered list of operations of one page.
type Page struct {
	Ops []Op
}

// Document is a laid out export.
type Document struct {
	Pages []Page
}

// Layout renders entries ascending by date, one entry per page plus
// continuation pages for long content.
func Layout(entries []journal.Entry) (Document, error) {
	if len(entries) == 0 {
		return Document{}, ErrNoData
	}
	sorted := append([]journal.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].EntryDate.Before(sorted[j].EntryDate) })

	var doc Document
	for _, e := range sorted {
		doc.Pages = append(doc.Pages, layoutEntry(e)...)
	}
	return doc, nil
}

func layoutEntry(e journal.Entry) []Page {
	pages := []Page{{}}
	cur := &pages[0]
	draw := func(f Font, x, y float64, text string) {
		cur.Ops = append(cur.Ops, Op{Font: f, X: x, Y: y, Text: text})
	}

	y := bannerY
	draw(FontBanner, marginLeft, y, "Journal Entry - "+daterange.Key(e.EntryDate))
	y += bannerGap

	fields := []struct{ label, value string }{
		{"Title:", e.Title},
		{"Category:", e.Category},
		{"Primary Mood:", string(e.PrimaryMood)},
		{"Secondary Moods:", journal.JoinMoods(e.SecondaryMoods)},
		{"Tags:", strings.Join(e.Tags, ", ")},
	}
	for i, f := range fields {
		draw(FontHeading, marginLeft, y, f.label)
		draw(FontBody, valueColumn, y, f.value)
		if i == len(fields)-1 {
			y += sectionGap
		} else {
			y += fieldGap
		}
	}

	draw(FontHeading, marginLeft, y, "Content:")
	y += headingGap

	for _, line := range WrapLines(e.Content, WrapColumns) {
		if y > bottomLimit {
			pages = append(pages, Page{})
			cur = &pages[len(pages)-1]
			y = continuationY
		}
		draw(FontBody, marginLeft, y, line)
		y += lineHeight
	}

	draw(FontBody, marginLeft, footerY, fmt.Sprintf("Created: %s   Updated: %s",
		e.CreatedAt.Format(timestampLayout), e.UpdatedAt.Format(timestampLayout)))
	return pages
}

// WrapLines splits text on line breaks and hard-splits every line longer than
// width characters at exactly that column.
func WrapLines(text string, width int) []string {
	var out []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := []rune(raw)
		for width > 0 && len(line) > width {
			out = append(out, string(line[:width]))
			line = line[width:]
		}
		out = append(out, string(line))
	}
	return out
}
