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
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/exp/slices"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

var (
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is an interactive listing browser. Every edit of the query or the
// filters re-runs the query against the cached engine.
type Model[T listing.Record] struct {
	domain   search.Domain
	engine   *listing.CachedEngine[T]
	card     func(T) string
	pageSize int

	keys  keyMap
	help  help.Model
	input textinput.Model

	filters []filterState
	// focus 0 is the query alone, focus i > 0 is filters[i-1].
	focus int

	result listing.Result[T]
	page   int
}

func New[T listing.Record](domain search.Domain, engine *listing.CachedEngine[T], card func(T) string, pageSize int) (Model[T], error) {
	keys, err := search.FilterKeys(domain)
	if err != nil {
		return Model[T]{}, err
	}
	filters := make([]filterState, len(keys))
	for i, fk := range keys {
		filters[i] = newFilterState(fk)
	}

	input := textinput.New()
	input.Placeholder = gotext.Get("Search %s", domain)
	input.Prompt = "> "
	input.Focus()

	m := Model[T]{
		domain:   domain,
		engine:   engine,
		card:     card,
		pageSize: pageSize,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		filters:  filters,
		page:     1,
	}
	m.requery()
	return m, nil
}

func Run[T listing.Record](m Model[T]) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Selection returns the active filters in key order.
func (m Model[T]) Selection() listing.Selection {
	var sel listing.Selection
	for i := range m.filters {
		if c, ok := m.filters[i].criterion(); ok {
			sel = append(sel, c)
		}
	}
	return sel
}

func (m Model[T]) Query() string {
	return m.input.Value()
}

func (m Model[T]) Result() listing.Result[T] {
	return m.result
}

func (m Model[T]) Page() listing.Page[T] {
	return listing.Paginate(m.result.Items, m.pageSize, m.page)
}

func (m *Model[T]) requery() {
	m.result = m.engine.Query(m.input.Value(), m.Selection())
	m.page = 1
}

func (m *Model[T]) focused() *filterState {
	if m.focus == 0 {
		return nil
	}
	return &m.filters[m.focus-1]
}

func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextFilter):
			m.focus = (m.focus + 1) % (len(m.filters) + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.focus = (m.focus + len(m.filters)) % (len(m.filters) + 1)
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			if f := m.focused(); f != nil {
				delta := 1
				if key.Matches(msg, m.keys.Up) {
					delta = -1
				}
				f.move(delta)
				if !f.Multi {
					m.requery()
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if f := m.focused(); f != nil && f.toggle() {
				m.requery()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevPage):
			m.page = m.Page().Number - 1
			m.page = m.Page().Number
			return m, nil
		case key.Matches(msg, m.keys.NextPage):
			m.page = m.Page().Number + 1
			m.page = m.Page().Number
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.requery()
	}
	return m, cmd
}

func (m Model[T]) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	page := m.Page()
	if page.Total == 0 {
		b.WriteString(render.EmptyStateFor(m.domain).String())
		b.WriteString("\n")
	}
	for _, item := range page.Items {
		b.WriteString(m.card(item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(render.PageFooter(page))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model[T]) filterBar() string {
	parts := make([]string, len(m.filters))
	for i := range m.filters {
		f := &m.filters[i]
		style := blurredStyle
		if m.focus == i+1 {
			style = focusedStyle
		}
		parts[i] = style.Render(fmt.Sprintf("%s: %s", f.Key, describe(f, m.focus == i+1)))
	}
	return strings.Join(parts, "   ")
}

func describe(f *filterState, focused bool) string {
	if !f.Multi {
		if len(f.chosen) == 0 {
			return gotext.Get("any")
		}
		return f.chosen[0]
	}
	chips := make([]string, len(f.Values))
	for i, v := range f.Values {
		mark := " "
		if slices.Contains(f.chosen, v) {
			mark = "x"
		}
		chip := fmt.Sprintf("[%s]%s", mark, v)
		if focused && i == f.cursor {
			chip = "›" + chip
		}
		chips[i] = chip
	}
	return strings.Join(chips, " ")
}
