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

// Record is a catalogue entry that can be held in a Store.
type Record interface {
	RecordID() string
	Validate() error
}

// Store is an immutable, ordered snapshot of records of one type.
type Store[T Record] struct {
	records []T
	index   map[string]int
}

// NewStore validates every record and builds a snapshot. Either all records
// are accepted or no store is returned.
func NewStore[T Record](records []T) (*Store[T], error) {
	s := &Store[T]{
		records: make([]T, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		id := rec.RecordID()
		if err := rec.Validate(); err != nil {
			return nil, &ConstructionError{Index: i, ID: id, Kind: ErrInvalidRecord, Err: err}
		}
		if _, dup := s.index[id]; dup {
			return nil, &ConstructionError{Index: i, ID: id, Kind: ErrDuplicateID}
		}
		s.index[id] = i
		s.records[i] = rec
	}
	return s, nil
}

// All returns the snapshot in insertion order. The returned slice is a copy.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int {
	return len(s.records)
}

func (s *Store[T]) Get(id string) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.records[i], true
}

// each visits records in order without copying the snapshot.
func (s *Store[T]) each(fn func(T)) {
	for _, rec := range s.records {
		fn(rec)
	}
}
