// Package pagination slices ordered result sequences into cursor-addressed
// pages.
//
// A cursor is the decimal offset of the first item on the page. It is a plain
// forward offset, not an opaque token: it stays meaningful only while the
// underlying sequence and filter are unchanged between calls. Catalog data is
// immutable for the process lifetime, so that holds for every caller here.
package pagination

import (
	"strconv"
	"strings"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// Page is one window over an ordered sequence.
type Page[T any] struct {
	Items      []T    `json:"items" jsonschema:"items on this page"`
	Total      int    `json:"total" jsonschema:"number of items across all pages"`
	HasMore    bool   `json:"hasMore" jsonschema:"true when another page follows"`
	NextCursor string `json:"nextCursor,omitempty" jsonschema:"cursor for the next page; absent on the last page"`
}

// ParseCursor converts a cursor string into a start offset. Empty, malformed,
// and negative cursors all start at zero.
func ParseCursor(cursor string) int {
	cursor = strings.TrimSpace(cursor)
	if cursor == "" {
		return 0
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// Paginate returns the window of seq starting at cursor holding at most limit
// items. A non-positive limit falls back to defaultLimit.
func Paginate[T any](seq []T, limit int, cursor string, defaultLimit int) Page[T] {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit <= 0 {
		limit = 1
	}
	total := len(seq)
	// Clamped before adding limit so huge cursors cannot overflow end.
	start := min(ParseCursor(cursor), total)
	end := start + min(limit, total-start)

	items := make([]T, 0, end-start)
	items = append(items, seq[start:end]...)

	page := Page[T]{
		Items:   items,
		Total:   total,
		HasMore: end < total,
	}
	if page.HasMore {
		page.NextCursor = strconv.Itoa(end)
	}
	return page
}

// Map converts the items of a page while keeping its position fields.
func Map[T, U any](page Page[T], convert func(T) U) Page[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}
	return Page[U]{
		Items:      items,
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	}
}
