// medfind - Medicine, Pharmacy and Blood Request Finder
// Copyright (C) 2025 The medfind Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package listing

import "strconv"

const (
	DefaultPageSize = 10
	// maxVisiblePages is the largest page count shown without ellipses.
	maxVisiblePages = 5
)

// Page is one slice of a result list.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	PageSize   int
	Total      int
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }

func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// TotalPages returns the number of pages needed for n items. It is never
// less than one, so an empty result still has a single (empty) page.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		return 1
	}
	return total
}

// Paginate returns the requested page of items. Out of range page numbers
// are clamped to the first or last page.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := TotalPages(len(items), pageSize)
	page = clamp(page, 1, total)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	out := make([]T, 0, end-start)
	if start < end {
		out = append(out, items[start:end]...)
	}
	return Page[T]{
		Items:      out,
		Number:     page,
		TotalPages: total,
		PageSize:   pageSize,
		Total:      len(items),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PageMarker is one element of a pagination control.
type PageMarker struct {
	Number   int
	Ellipsis bool
}

func (m PageMarker) String() string {
	if m.Ellipsis {
		return "…"
	}
	return strconv.Itoa(m.Number)
}

// PageWindow lists the page markers to display for the current page: the
// first and last pages, the neighbours of the current page, and a single
// ellipsis for every collapsed gap.
func PageWindow(current, total int) []PageMarker {
	if total < 1 {
		total = 1
	}
	current = clamp(current, 1, total)

	if total <= maxVisiblePages {
		markers := make([]PageMarker, 0, total)
		for i := 1; i <= total; i++ {
			markers = append(markers, PageMarker{Number: i})
		}
		return markers
	}

	markers := []PageMarker{{Number: 1}}
	start := max(2, current-1)
	end := min(total-1, current+1)
	if start > 2 {
		markers = append(markers, PageMarker{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		markers = append(markers, PageMarker{Number: i})
	}
	if end < total-1 {
		markers = append(markers, PageMarker{Ellipsis: true})
	}
	return append(markers, PageMarker{Number: total})
}
