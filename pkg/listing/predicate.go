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

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/cases"
)

// Predicate decides whether a record belongs to a result.
type Predicate[T any] func(T) bool

func MatchAll[T any](T) bool { return true }

// And combines predicates conjunctively. With no arguments it matches all.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	switch len(preds) {
	case 0:
		return MatchAll[T]
	case 1:
		return preds[0]
	}
	return func(rec T) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// Fold returns the case-folded form of s used for case-insensitive matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// TextMatch matches records where the trimmed query occurs, ignoring case,
// in at least one of the fields returned by fields. A blank query matches
// every record.
func TextMatch[T any](query string, fields func(T) []string) Predicate[T] {
	q := strings.TrimSpace(query)
	if q == "" {
		return MatchAll[T]
	}
	needle := Fold(q)
	return func(rec T) bool {
		for _, field := range fields(rec) {
			if strings.Contains(Fold(field), needle) {
				return true
			}
		}
		return false
	}
}

// ErrMalformedValue is returned by filters that cannot parse their value.
var ErrMalformedValue = errors.New("malformed filter value")

// FilterFunc turns the values chosen for one filter key into a predicate.
// It reports active=false when the values leave the filter switched off.
type FilterFunc[T any] func(values []string) (pred Predicate[T], active bool, err error)

// Criterion is the choice made for one filter key.
type Criterion struct {
	Key    string
	Values []string
}

// Selection is the set of filter choices of one query.
type Selection []Criterion

// Values returns the values chosen for key, or nil when key is not set.
func (s Selection) Values(key string) []string {
	for _, c := range s {
		if c.Key == key {
			return c.Values
		}
	}
	return nil
}

// Schema describes how a record type is searched and filtered.
type Schema[T any] struct {
	Name       string
	Searchable func(T) []string
	Filters    map[string]FilterFunc[T]
}

// Predicate builds the composite predicate for a text query and selection.
// Filters whose values are malformed are logged and left inactive.
func (s Schema[T]) Predicate(query string, sel Selection) Predicate[T] {
	preds := []Predicate[T]{TextMatch(query, s.Searchable)}
	for _, c := range sel {
		filter, ok := s.Filters[c.Key]
		if !ok {
			slog.Warn(gotext.Get("Ignoring unknown filter"), "listing", s.Name, "key", c.Key)
			continue
		}
		pred, active, err := filter(c.Values)
		if err != nil {
			slog.Warn(
				gotext.Get("Ignoring invalid filter value"),
				"listing", s.Name,
				"key", c.Key,
				"value", strings.Join(c.Values, ","),
				"err", err,
			)
			continue
		}
		if active {
			preds = append(preds, pred)
		}
	}
	return And(preds...)
}
