package query

import (
	"sort"

	"masalog-backend/internal/model"
)

// SortOrder orders records by their canonical timestamp string. The format
// is fixed-width and zero-padded, so plain string comparison is
// chronological.
type SortOrder string

const (
	NewestFirst SortOrder = "newest_first"
	OldestFirst SortOrder = "oldest_first"
)

// ValidSortOrder reports whether order names a known sort order.
func ValidSortOrder(order SortOrder) bool {
	return order == NewestFirst || order == OldestFirst
}

// Sort returns a sorted copy. The sort is stable: records with equal
// timestamps keep their original relative order.
func Sort(records []model.LogRecord, order SortOrder) []model.LogRecord {
	sorted := append([]model.LogRecord(nil), records...)
	if order == NewestFirst {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp > sorted[j].Timestamp
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp < sorted[j].Timestamp
		})
	}
	return sorted
}

// TotalPages is the page count for n records at the given page size,
// never less than 1.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage confines page to [1, TotalPages(n, pageSize)].
func ClampPage(page, n, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(n, pageSize); page > max {
		return max
	}
	return page
}

// Paginate returns the 1-based page of the given size. The page number is
// clamped, so every input yields a valid (possibly empty) slice of the
// original sequence.
func Paginate(records []model.LogRecord, pageSize, page int) []model.LogRecord {
	if pageSize <= 0 {
		return nil
	}
	page = ClampPage(page, len(records), pageSize)
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
