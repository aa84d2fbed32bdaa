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

package browse

import (
	"golang.org/x/exp/slices"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

// filterState tracks one filter key. Single valued keys have an implicit
// "any" option at cursor 0.
type filterState struct {
	search.FilterKey
	cursor int
	chosen []string
}

func newFilterState(fk search.FilterKey) filterState {
	return filterState{FilterKey: fk}
}

func (f *filterState) options() int {
	if f.Multi {
		return len(f.Values)
	}
	return len(f.Values) + 1
}

// move shifts the cursor by delta, wrapping around. Single valued keys
// apply the value under the cursor immediately.
func (f *filterState) move(delta int) {
	n := f.options()
	if n == 0 {
		return
	}
	f.cursor = ((f.cursor+delta)%n + n) % n
	if f.Multi {
		return
	}
	if f.cursor == 0 {
		f.chosen = nil
		return
	}
	f.chosen = []string{f.Values[f.cursor-1]}
}

// toggle flips the value under the cursor of a multi valued key.
func (f *filterState) toggle() bool {
	if !f.Multi || len(f.Values) == 0 {
		return false
	}
	v := f.Values[f.cursor]
	if i := slices.Index(f.chosen, v); i >= 0 {
		f.chosen = slices.Delete(slices.Clone(f.chosen), i, i+1)
	} else {
		f.chosen = append(slices.Clone(f.chosen), v)
	}
	return true
}

func (f *filterState) criterion() (listing.Criterion, bool) {
	if len(f.chosen) == 0 {
		return listing.Criterion{}, false
	}
	return listing.Criterion{Key: f.Key, Values: slices.Clone(f.chosen)}, true
}
