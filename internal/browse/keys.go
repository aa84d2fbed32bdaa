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
	"github.com/charmbracelet/bubbles/key"
	"github.com/leonelquinteros/gotext"
)

type keyMap struct {
	NextFilter key.Binding
	PrevFilter key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", gotext.Get("next filter")),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", gotext.Get("previous filter")),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", gotext.Get("previous value")),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", gotext.Get("next value")),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", gotext.Get("toggle value")),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "pgup"),
			key.WithHelp("←", gotext.Get("previous page")),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "pgdown"),
			key.WithHelp("→", gotext.Get("next page")),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", gotext.Get("quit")),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFilter, k.Down, k.Toggle, k.NextPage, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFilter, k.PrevFilter},
		{k.Up, k.Down, k.Toggle},
		{k.PrevPage, k.NextPage, k.Quit},
	}
}
