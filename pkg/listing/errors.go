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
	"fmt"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrDuplicateID   = errors.New("duplicate record id")
)

// ConstructionError reports why a Store could not be built. Kind is one of
// ErrInvalidRecord or ErrDuplicateID.
type ConstructionError struct {
	Index int
	ID    string
	Kind  error
	Err   error
}

func (e *ConstructionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("record #%d (id %q): %s", e.Index, e.ID, e.Kind)
	}
	return fmt.Sprintf("record #%d (id %q): %s: %s", e.Index, e.ID, e.Kind, e.Err)
}

func (e *ConstructionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
