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
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const (
	FilterCategory     = "category"
	FilterPriceRange   = "priceRange"
	FilterAvailability = "availability"
)

const (
	AvailabilityInStock = "in-stock"
	// AvailabilityNearby is accepted but not implemented: there is no
	// location data to filter on, so it passes every record through.
	AvailabilityNearby = "nearby"
	AvailabilityAll    = "all"
)

var (
	PriceRanges    = []string{"0-10", "10-25", "25-50", "50-100", "100+"}
	Availabilities = []string{AvailabilityInStock, AvailabilityNearby, AvailabilityAll}
)

var MedicineSchema = listing.Schema[types.Medicine]{
	Name: string(DomainMedicines),
	Searchable: func(m types.Medicine) []string {
		return []string{m.Name, m.Description, m.Manufacturer}
	},
	Filters: map[string]listing.FilterFunc[types.Medicine]{
		FilterCategory:     categoryFilter,
		FilterPriceRange:   priceRangeFilter,
		FilterAvailability: availabilityFilter,
	},
}

func categoryFilter(values []string) (listing.Predicate[types.Medicine], bool, error) {
	v := firstValue(values)
	if v == "" {
		return nil, false, nil
	}
	if !types.Category(v).Valid() {
		return nil, false, fmt.Errorf("%w: unknown category %q", listing.ErrMalformedValue, v)
	}
	want := listing.Fold(v)
	return func(m types.Medicine) bool {
		return m.Category.Valid() && listing.Fold(string(m.Category)) == want
	}, true, nil
}

// PriceRange is an inclusive price interval. Max is nil for open ranges
// written as "min+".
type PriceRange struct {
	Min decimal.Decimal
	Max *decimal.Decimal
}

// ParsePriceRange parses "min-max" or "min+".
func ParsePriceRange(s string) (PriceRange, error) {
	s = strings.TrimSpace(s)
	if lo, ok := strings.CutSuffix(s, "+"); ok {
		low, err := parseBound(lo)
		if err != nil {
			return PriceRange{}, err
		}
		return PriceRange{Min: low}, nil
	}

	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return PriceRange{}, fmt.Errorf("%w: price range %q is neither min-max nor min+", listing.ErrMalformedValue, s)
	}
	low, err := parseBound(lo)
	if err != nil {
		return PriceRange{}, err
	}
	high, err := parseBound(hi)
	if err != nil {
		return PriceRange{}, err
	}
	if high.LessThan(low) {
		return PriceRange{}, fmt.Errorf("%w: price range %q ends before it starts", listing.ErrMalformedValue, s)
	}
	return PriceRange{Min: low, Max: &high}, nil
}

func parseBound(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: price bound %q: %s", listing.ErrMalformedValue, s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative price bound %q", listing.ErrMalformedValue, s)
	}
	return d, nil
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	if price.LessThan(r.Min) {
		return false
	}
	return r.Max == nil || !price.GreaterThan(*r.Max)
}

func (r PriceRange) String() string {
	if r.Max == nil {
		return r.Min.String() + "+"
	}
	return r.Min.String() + "-" + r.Max.String()
}

func priceRangeFilter(values []string) (listing.Predicate[types.Medicine], bool, error) {
	v := firstValue(values)
	if v == "" {
		return nil, false, nil
	}
	r, err := ParsePriceRange(v)
	if err != nil {
		return nil, false, err
	}
	return func(m types.Medicine) bool { return r.Contains(m.Price) }, true, nil
}

func availabilityFilter(values []string) (listing.Predicate[types.Medicine], bool, error) {
	v := strings.ToLower(firstValue(values))
	switch v {
	case "", AvailabilityAll, AvailabilityNearby:
		return nil, false, nil
	case AvailabilityInStock:
		return func(m types.Medicine) bool { return m.InStock }, true, nil
	}
	return nil, false, fmt.Errorf("%w: unknown availability %q", listing.ErrMalformedValue, v)
}

// MedicineSelection holds the filter choices of the medicine listing.
type MedicineSelection struct {
	Category     string `mapstructure:"category"`
	PriceRange   string `mapstructure:"priceRange"`
	Availability string `mapstructure:"availability"`
}

func (s MedicineSelection) Criteria() listing.Selection {
	var sel listing.Selection
	if s.Category != "" {
		sel = append(sel, criterion(FilterCategory, s.Category))
	}
	if s.PriceRange != "" {
		sel = append(sel, criterion(FilterPriceRange, s.PriceRange))
	}
	if s.Availability != "" {
		sel = append(sel, criterion(FilterAvailability, s.Availability))
	}
	return sel
}

type MedicineOptionsBuilder struct {
	query     string
	selection MedicineSelection
}

func NewMedicineOptions() *MedicineOptionsBuilder {
	return &MedicineOptionsBuilder{}
}

func (b *MedicineOptionsBuilder) WithQuery(query string) *MedicineOptionsBuilder {
	b.query = query
	return b
}

func (b *MedicineOptionsBuilder) WithCategory(category string) *MedicineOptionsBuilder {
	b.selection.Category = category
	return b
}

func (b *MedicineOptionsBuilder) WithPriceRange(priceRange string) *MedicineOptionsBuilder {
	b.selection.PriceRange = priceRange
	return b
}

func (b *MedicineOptionsBuilder) WithAvailability(availability string) *MedicineOptionsBuilder {
	b.selection.Availability = availability
	return b
}

func (b *MedicineOptionsBuilder) Build() *SearchOptions {
	return &SearchOptions{query: b.query, criteria: b.selection.Criteria()}
}
