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

package search

import (
	"strconv"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const (
	FilterOpenNow     = "openNow"
	FilterHasDelivery = "hasDelivery"
)

var PharmacySchema = listing.Schema[types.Pharmacy]{
	Name: string(DomainPharmacies),
	Searchable: func(p types.Pharmacy) []string {
		return []string{p.Name, p.Address}
	},
	Filters: map[string]listing.FilterFunc[types.Pharmacy]{
		FilterOpenNow:     flagFilter(func(p types.Pharmacy) bool { return p.IsOpen }),
		FilterHasDelivery: flagFilter(types.Pharmacy.Delivers),
	},
}

// PharmacySelection holds the filter choices of the pharmacy listing.
// A false flag does not exclude anything.
type PharmacySelection struct {
	OpenNow     bool `mapstructure:"openNow"`
	HasDelivery bool `mapstructure:"hasDelivery"`
}

func (s PharmacySelection) Criteria() listing.Selection {
	var sel listing.Selection
	if s.OpenNow {
		sel = append(sel, criterion(FilterOpenNow, strconv.FormatBool(true)))
	}
	if s.HasDelivery {
		sel = append(sel, criterion(FilterHasDelivery, strconv.FormatBool(true)))
	}
	return sel
}

type PharmacyOptionsBuilder struct {
	query     string
	selection PharmacySelection
}

func NewPharmacyOptions() *PharmacyOptionsBuilder {
	return &PharmacyOptionsBuilder{}
}

func (b *PharmacyOptionsBuilder) WithQuery(query string) *PharmacyOptionsBuilder {
	b.query = query
	return b
}

func (b *PharmacyOptionsBuilder) WithOpenNow(openNow bool) *PharmacyOptionsBuilder {
	b.selection.OpenNow = openNow
	return b
}

func (b *PharmacyOptionsBuilder) WithDelivery(hasDelivery bool) *PharmacyOptionsBuilder {
	b.selection.HasDelivery = hasDelivery
	return b
}

func (b *PharmacyOptionsBuilder) Build() *SearchOptions {
	return &SearchOptions{query: b.query, criteria: b.selection.Criteria()}
}
