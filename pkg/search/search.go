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
	"errors"
	"fmt"
	"strings"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
)

// Domain names one of the catalogue listings.
type Domain string

const (
	DomainMedicines  Domain = "medicines"
	DomainPharmacies Domain = "pharmacies"
	DomainBlood      Domain = "blood"
)

var Domains = []Domain{DomainMedicines, DomainPharmacies, DomainBlood}

var ErrUnknownDomain = errors.New("unknown listing")

func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medicines", "medicine", "med", "m":
		return DomainMedicines, nil
	case "pharmacies", "pharmacy", "ph", "p":
		return DomainPharmacies, nil
	case "blood", "blood-requests", "bloodrequests", "bl", "b":
		return DomainBlood, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

// SearchOptions is a text query together with the filter choices of one
// listing.
type SearchOptions struct {
	query    string
	criteria listing.Selection
}

// NewOptions wraps criteria decoded by DecodeSelection.
func NewOptions(query string, criteria listing.Selection) *SearchOptions {
	return &SearchOptions{query: query, criteria: criteria}
}

func (o *SearchOptions) Query() string {
	return o.query
}

func (o *SearchOptions) Criteria() listing.Selection {
	return o.criteria
}

// Searcher runs searches against one record store.
type Searcher[T listing.Record] struct {
	store  *listing.Store[T]
	engine *listing.Engine[T]
}

func New[T listing.Record](store *listing.Store[T], schema listing.Schema[T]) *Searcher[T] {
	return &Searcher[T]{
		store:  store,
		engine: listing.NewEngine(schema),
	}
}

func (s *Searcher[T]) Search(opts *SearchOptions) listing.Result[T] {
	return s.engine.Query(s.store, opts.Query(), opts.Criteria())
}

// SearchPage runs a search and returns the requested page of its results.
func (s *Searcher[T]) SearchPage(opts *SearchOptions, pageSize, page int) listing.Page[T] {
	return listing.Paginate(s.Search(opts).Items, pageSize, page)
}

// flagFilter builds a filter for a boolean record property. Only "true"
// activates it; "false" or nothing leaves it off.
func flagFilter[T any](get func(T) bool) listing.FilterFunc[T] {
	return func(values []string) (listing.Predicate[T], bool, error) {
		v := firstValue(values)
		switch strings.ToLower(v) {
		case "", "false", "0":
			return nil, false, nil
		case "true", "1":
			return func(rec T) bool { return get(rec) }, true, nil
		}
		return nil, false, fmt.Errorf("%w: expected true or false, got %q", listing.ErrMalformedValue, v)
	}
}

func firstValue(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func criterion(key, value string) listing.Criterion {
	return listing.Criterion{Key: key, Values: []string{value}}
}
