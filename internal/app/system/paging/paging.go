// Package paging computes offset page windows over in-memory collections.
//
// The workspace aggregate is one document, so queries filter and page its
// embedded slices directly rather than pushing skip/limit into Mongo. A
// requested page past the end clamps down to the last valid page instead of
// returning an empty slice.
package paging

import (
	"net/http"
	"strconv"
)

// Default page sizes per collection.
const (
	TaskLimit     = 10
	MessageLimit  = 30
	ActivityLimit = 20
)

// ParsePositiveInt parses raw as a positive integer, returning fallback
// for anything non-numeric or non-positive.
func ParsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ParsePage reads the "page" query parameter, defaulting to 1.
func ParsePage(r *http.Request) int {
	return ParsePositiveInt(r.URL.Query().Get("page"), 1)
}

// ParseLimit reads the "limit" query parameter with the given fallback.
func ParseLimit(r *http.Request, fallback int) int {
	return ParsePositiveInt(r.URL.Query().Get("limit"), fallback)
}

// Window is a computed page slice plus its pagination metadata.
// Start and End are half-open slice bounds into the source collection.
type Window struct {
	Total      int
	Page       int
	Limit      int
	TotalPages int
	Start      int
	End        int
}

func totalPages(total, limit int) int {
	tp := (total + limit - 1) / limit
	if tp < 1 {
		tp = 1
	}
	return tp
}

// Forward windows a newest-first collection: page 1 is elements [0,limit).
func Forward(total, page, limit int) Window {
	tp := totalPages(total, limit)
	if page > tp {
		page = tp
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return Window{Total: total, Page: page, Limit: limit, TotalPages: tp, Start: start, End: end}
}

// Backward windows an oldest-first collection from its tail: page 1 is the
// newest limit elements, in chronological order within the page.
func Backward(total, page, limit int) Window {
	tp := totalPages(total, limit)
	if page > tp {
		page = tp
	}
	start := total - page*limit
	if start < 0 {
		start = 0
	}
	end := total - (page-1)*limit
	return Window{Total: total, Page: page, Limit: limit, TotalPages: tp, Start: start, End: end}
}
