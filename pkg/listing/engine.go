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

// Result is the outcome of a query: matching records in store order.
type Result[T any] struct {
	Items []T
	Count int
}

// Engine runs queries for one record type.
type Engine[T Record] struct {
	schema Schema[T]
}

func NewEngine[T Record](schema Schema[T]) *Engine[T] {
	return &Engine[T]{schema: schema}
}

func (e *Engine[T]) Schema() Schema[T] {
	return e.schema
}

// Query applies the text query and selection to every record of the store.
// The store is never modified and the relative order of matches is kept.
func (e *Engine[T]) Query(store *Store[T], text string, sel Selection) Result[T] {
	return Query(store, e.schema.Predicate(text, sel))
}

// Query filters a store with an already built predicate.
func Query[T Record](store *Store[T], match Predicate[T]) Result[T] {
	items := make([]T, 0, store.Len())
	store.each(func(rec T) {
		if match(rec) {
			items = append(items, rec)
		}
	})
	return Result[T]{Items: items, Count: len(items)}
}
