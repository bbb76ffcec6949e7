// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package paginate slices result sets into fixed-size pages and builds the
// numbered controls shown under a paginated list.
package paginate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Page is one page of a result set plus the metadata the controls need.
type Page[T any] struct {
	Items      []T
	Page       int // 1-based, always within [1, max(1, TotalPages)]
	PageSize   int
	TotalPages int // 0 when Total is 0
	Total      int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// ShowControls reports whether pagination controls should be rendered at all.
func (p Page[T]) ShowControls() bool { return p.TotalPages > 1 }

// TotalPages returns ceil(n/size).
func TotalPages(n, size int) int {
	if size <= 0 {
		panic(fmt.Sprintf("paginate: page size must be positive, got %d", size))
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Clamp forces page into [1, totalPages], treating zero pages as one.
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the requested page of items after clamping the page number.
// The returned Items share the backing array with items.
func Slice[T any](items []T, page, size int) Page[T] {
	total := len(items)
	pages := TotalPages(total, size)
	page = Clamp(page, pages)

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end:end],
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
		Total:      total,
	}
}

// ParsePage converts a query-string value to a page number. Anything that is
// not a positive integer becomes 1, except a positive number too large for
// an int, which becomes math.MaxInt. The caller still clamps the upper bound.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}
