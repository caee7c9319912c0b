package trivia

import (
	"strconv"
	"strings"
)

// Paginate returns the 1-based page of items. Pages past the end are empty.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 {
		return []T{}
	}
	if page < 1 {
		page = 1
	}
	if page-1 > len(items)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage reads a raw ?page= value. Missing or malformed input means page 1.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
