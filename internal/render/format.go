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

package render

import (
	"fmt"
	"io"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Format writes records either through a user supplied Go template or,
// when none is set, through a card renderer.
type Format[T any] struct {
	tmpl *template.Template
	card func(T) string
}

func NewFormat[T any](format string, card func(T) string) (*Format[T], error) {
	f := &Format[T]{card: card}
	if format == "" {
		return f, nil
	}
	tmpl, err := template.New("format").Parse(format)
	if err != nil {
		return nil, err
	}
	f.tmpl = tmpl
	return f, nil
}

func (f *Format[T]) Write(w io.Writer, items []T) error {
	for _, item := range items {
		if f.tmpl != nil {
			if err := f.tmpl.Execute(w, item); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, f.card(item)); err != nil {
			return err
		}
	}
	return nil
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
