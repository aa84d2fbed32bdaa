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
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

// EmptyState is shown in place of a listing with no matches.
type EmptyState struct {
	Title string
	Hint  string
}

func EmptyStateFor(domain search.Domain) EmptyState {
	switch domain {
	case search.DomainMedicines:
		return EmptyState{
			Title: gotext.Get("No medicines found"),
			Hint:  gotext.Get("Try adjusting your search criteria or filters."),
		}
	case search.DomainPharmacies:
		return EmptyState{
			Title: gotext.Get("No pharmacies found"),
			Hint:  gotext.Get("Try adjusting your search criteria or filters."),
		}
	case search.DomainBlood:
		return EmptyState{
			Title: gotext.Get("No blood requests found"),
			Hint:  gotext.Get("There are currently no blood donation requests matching your criteria."),
		}
	}
	return EmptyState{
		Title: gotext.Get("No results found"),
		Hint:  gotext.Get("Try adjusting your search criteria or filters."),
	}
}

func (e EmptyState) String() string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(e.Title), mutedStyle.Render(e.Hint))
}

func WriteEmpty(w io.Writer, domain search.Domain) error {
	_, err := fmt.Fprintln(w, EmptyStateFor(domain))
	return err
}
