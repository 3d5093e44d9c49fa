package utils

import (
	"fmt"
	"strings"
)

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total      int
	PerPage    int
	Current    int
	Offset     int
	TotalPages int
}

// NewPagination clamps current into [1, TotalPages]. perPage below 1 means
// everything on one page.
func NewPagination(total, perPage, current int) *PaginationInfo {
	if perPage < 1 {
		perPage = max(total, 1)
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	current = min(max(current, 1), totalPages)

	return &PaginationInfo{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		Offset:     (current - 1) * perPage,
		TotalPages: totalPages,
	}
}

// Range returns the 1-indexed bounds of the current page.
func (p *PaginationInfo) Range() (start, end int) {
	if p.Total == 0 {
		return 0, 0
	}
	return p.Offset + 1, min(p.Offset+p.PerPage, p.Total)
}

func (p *PaginationInfo) HasNext() bool { return p.Current < p.TotalPages }
func (p *PaginationInfo) HasPrev() bool { return p.Current > 1 }

// FormatSummary returns a human-readable summary
func (p *PaginationInfo) FormatSummary() string {
	if p.Total == 0 {
		return "No entries"
	}
	start, end := p.Range()
	if p.TotalPages == 1 {
		return fmt.Sprintf("Showing %d-%d of %d entr%s", start, end, p.Total, plural(p.Total))
	}
	return fmt.Sprintf("Showing %d-%d of %d entr%s (page %d of %d)",
		start, end, p.Total, plural(p.Total), p.Current, p.TotalPages)
}

// FormatNavigation returns --page hints for the CLI.
func (p *PaginationInfo) FormatNavigation() string {
	var hints []string
	if p.HasPrev() {
		hints = append(hints, fmt.Sprintf("use --page %d for previous", p.Current-1))
	}
	if p.HasNext() {
		hints = append(hints, fmt.Sprintf("use --page %d for next", p.Current+1))
	}
	return strings.Join(hints, ", ")
}

// Paginate returns the slice of items on page p.
func Paginate[T any](items []T, p *PaginationInfo) []T {
	if p.Offset >= len(items) {
		return items[:0]
	}
	return items[p.Offset:min(p.Offset+p.PerPage, len(items))]
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
