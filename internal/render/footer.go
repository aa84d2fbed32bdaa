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

package render

import (
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
)

// PageMarkers renders the page window with the current page highlighted.
func PageMarkers(current, total int) string {
	markers := listing.PageWindow(current, total)
	parts := make([]string, len(markers))
	for i, m := range markers {
		switch {
		case m.Ellipsis:
			parts[i] = m.String()
		case m.Number == current:
			parts[i] = currentPageStyle.Render(strconv.Itoa(m.Number))
		default:
			parts[i] = m.String()
		}
	}
	return strings.Join(parts, " ")
}

func PageFooter[T any](p listing.Page[T]) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render(gotext.Get("Page %d of %d", p.Number, p.TotalPages)))
	if p.TotalPages > 1 {
		b.WriteString("  ")
		b.WriteString(PageMarkers(p.Number, p.TotalPages))
	}
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(gotext.GetN("%d result", "%d results", p.Total, p.Total)))
	return b.String()
}
