package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ramanasai/journal/internal/analytics"
	"github.com/ramanasai/journal/internal/journal"
)

// ErrWrite wraps every failure of the document writer.
var ErrWrite = errors.New("write export")

// DefaultName is used when a requested file name sanitizes to nothing.
const DefaultName = "journal_export"

// Writer stores a laid out document under a sanitized file name and returns
// the final path.
type Writer interface {
	Write(name string, doc Document) (string, error)
}

// Exporter filters entries to a window and hands the layout to a Writer.
type Exporter struct {
	writer Writer
	loc    *time.Location
}

func NewExporter(w Writer) *Exporter {
	return &Exporter{writer: w}
}

// WithLocation prints the created and updated timestamps in loc instead of
// the zone they were loaded in.
func (x *Exporter) WithLocation(loc *time.Location) *Exporter {
	x.loc = loc
	return x
}

// Export writes every entry dated inside [from, to] and returns the stored
// path. It returns ErrNoData when the window holds no entries.
func (x *Exporter) Export(entries []journal.Entry, from, to time.Time, name string) (string, error) {
	selected := analytics.InRange(entries, from, to)
	if x.loc != nil {
		for i := range selected {
			selected[i].CreatedAt = selected[i].CreatedAt.In(x.loc)
			selected[i].UpdatedAt = selected[i].UpdatedAt.In(x.loc)
		}
	}
	doc, err := Layout(selected)
	if err != nil {
		return "", err
	}
	path, err := x.writer.Write(SanitizeFilename(name), doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return path, nil
}

// SanitizeFilename removes characters that are invalid on common
// filesystems, falls back to DefaultName and ensures a .pdf suffix.
func SanitizeFilename(name string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(`<>:"/\|?*`, r) {
			return -1
		}
		return r
	}, name)
	clean = strings.TrimSpace(clean)
	if strings.Trim(clean, ".") == "" || strings.EqualFold(clean, ".pdf") {
		clean = DefaultName
	}
	if !strings.HasSuffix(strings.ToLower(clean), ".pdf") {
		clean += ".pdf"
	}
	return clean
}
