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
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorBlue   = lipgloss.Color("33")
	colorRed    = lipgloss.Color("160")
	colorOrange = lipgloss.Color("208")
	colorYellow = lipgloss.Color("178")
	colorGray   = lipgloss.Color("245")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1).
			Width(76)
	bloodCardStyle = cardStyle.
			BorderLeftForeground(colorRed)
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorGray)
	priceStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	chipStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	currentPageStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// Casers are stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

type Badge struct {
	Text  string
	Color lipgloss.Color
	// Outline badges are drawn as colored text rather than a filled block.
	Outline bool
}

func (b Badge) Render() string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if b.Outline {
		return style.Foreground(b.Color).Render(b.Text)
	}
	return style.Background(b.Color).Foreground(lipgloss.Color("0")).Render(b.Text)
}

func renderBadges(badges []Badge) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = b.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(parts)...)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
