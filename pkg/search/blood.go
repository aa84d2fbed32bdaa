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
	"log/slog"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/exp/slices"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const FilterBloodType = "bloodType"

var BloodSchema = listing.Schema[types.BloodRequest]{
	Name: string(DomainBlood),
	Searchable: func(b types.BloodRequest) []string {
		return []string{b.PatientName, b.Hospital, b.Address}
	},
	Filters: map[string]listing.FilterFunc[types.BloodRequest]{
		FilterBloodType: bloodTypeFilter,
	},
}

// bloodTypeFilter keeps requests whose blood type is one of the selected
// ones. Unknown blood types are dropped; a selection left empty keeps
// everything.
func bloodTypeFilter(values []string) (listing.Predicate[types.BloodRequest], bool, error) {
	set := make(map[types.BloodType]struct{}, len(values))
	for _, v := range nonEmpty(values) {
		bt := types.BloodType(strings.ToUpper(v))
		if !bt.Valid() {
			slog.Warn(gotext.Get("Ignoring unknown blood type"), "value", v)
			continue
		}
		set[bt] = struct{}{}
	}
	if len(set) == 0 {
		return nil, false, nil
	}
	return func(b types.BloodRequest) bool {
		_, ok := set[b.BloodType]
		return ok
	}, true, nil
}

// BloodSelection holds the blood types chosen in the blood request listing.
type BloodSelection struct {
	BloodTypes []string `mapstructure:"bloodType"`
}

func (s BloodSelection) Criteria() listing.Selection {
	selected := nonEmpty(s.BloodTypes)
	if len(selected) == 0 {
		return nil
	}
	return listing.Selection{{Key: FilterBloodType, Values: selected}}
}

// Toggle adds the blood type to the selection, or removes it when it is
// already selected.
func (s BloodSelection) Toggle(bt types.BloodType) BloodSelection {
	out := BloodSelection{BloodTypes: slices.Clone(s.BloodTypes)}
	if i := slices.Index(out.BloodTypes, string(bt)); i >= 0 {
		out.BloodTypes = slices.Delete(out.BloodTypes, i, i+1)
		return out
	}
	out.BloodTypes = append(out.BloodTypes, string(bt))
	return out
}

func (s BloodSelection) Has(bt types.BloodType) bool {
	return slices.Contains(s.BloodTypes, string(bt))
}

type BloodOptionsBuilder struct {
	query     string
	selection BloodSelection
}

func NewBloodOptions() *BloodOptionsBuilder {
	return &BloodOptionsBuilder{}
}

func (b *BloodOptionsBuilder) WithQuery(query string) *BloodOptionsBuilder {
	b.query = query
	return b
}

func (b *BloodOptionsBuilder) WithBloodTypes(bloodTypes ...string) *BloodOptionsBuilder {
	b.selection.BloodTypes = append(b.selection.BloodTypes, bloodTypes...)
	return b
}

func (b *BloodOptionsBuilder) Build() *SearchOptions {
	return &SearchOptions{query: b.query, criteria: b.selection.Criteria()}
}
