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

package listing_test

import (
	"errors"
	"strings"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
)

type item struct {
	id    string
	title string
	notes string
	tag   string
	ready bool
}

func (i item) RecordID() string { return i.id }

func (i item) Validate() error {
	if i.title == "" {
		return errors.New("title is required")
	}
	return nil
}

var itemSchema = listing.Schema[item]{
	Name: "items",
	Searchable: func(i item) []string {
		return []string{i.title, i.notes}
	},
	Filters: map[string]listing.FilterFunc[item]{
		"tag": func(values []string) (listing.Predicate[item], bool, error) {
			if len(values) == 0 || values[0] == "" {
				return nil, false, nil
			}
			want := values[0]
			return func(i item) bool { return strings.EqualFold(i.tag, want) }, true, nil
		},
		"ready": func(values []string) (listing.Predicate[item], bool, error) {
			if len(values) == 0 || values[0] == "" || values[0] == "false" {
				return nil, false, nil
			}
			if values[0] != "true" {
				return nil, false, listing.ErrMalformedValue
			}
			return func(i item) bool { return i.ready }, true, nil
		},
	},
}

func sampleItems() []item {
	return []item{
		{id: "1", title: "Alpha", notes: "first letter", tag: "greek", ready: true},
		{id: "2", title: "Beta", notes: "second letter", tag: "greek"},
		{id: "3", title: "Aleph", notes: "Hebrew first", tag: "hebrew", ready: true},
		{id: "4", title: "Gamma", notes: "third", tag: "greek", ready: true},
	}
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}
