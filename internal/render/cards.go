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
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const dateFormat = "Jan 2, 2006"

func MedicineBadges(m types.Medicine) []Badge {
	var badges []Badge
	if m.InStock {
		badges = append(badges, Badge{Text: gotext.Get("In Stock"), Color: colorGreen})
	} else {
		badges = append(badges, Badge{Text: gotext.Get("Out of Stock"), Color: colorRed, Outline: true})
	}
	if m.Prescription {
		badges = append(badges, Badge{Text: gotext.Get("Prescription"), Color: colorGray})
	}
	return badges
}

func PharmacyBadges(p types.Pharmacy) []Badge {
	var badges []Badge
	if p.IsOpen {
		badges = append(badges, Badge{Text: gotext.Get("Open Now"), Color: colorGreen})
	} else {
		badges = append(badges, Badge{Text: gotext.Get("Closed"), Color: colorGray, Outline: true})
	}
	if p.Delivers() {
		badges = append(badges, Badge{Text: gotext.Get("Delivery"), Color: colorBlue, Outline: true})
	}
	return badges
}

func UrgencyBadge(u types.Urgency) Badge {
	text := titleCase(string(u))
	switch u {
	case types.UrgencyCritical:
		return Badge{Text: "! " + text, Color: colorRed}
	case types.UrgencyUrgent:
		return Badge{Text: text, Color: colorOrange}
	}
	return Badge{Text: text, Color: colorYellow}
}

func StatusBadge(s types.Status) Badge {
	text := titleCase(string(s))
	switch s {
	case types.StatusFulfilled:
		return Badge{Text: text, Color: colorGreen}
	case types.StatusPending:
		return Badge{Text: text, Color: colorYellow}
	case types.StatusVerified:
		return Badge{Text: text, Color: colorBlue}
	}
	return Badge{Text: text, Color: colorGray}
}

func BloodRequestBadges(b types.BloodRequest) []Badge {
	return []Badge{UrgencyBadge(b.Urgency), StatusBadge(b.Status)}
}

func header(name string, badges []Badge) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(name), "  ", renderBadges(badges))
}

func MedicineCard(m types.Medicine) string {
	lines := []string{
		header(m.Name, MedicineBadges(m)),
		mutedStyle.Render(m.Manufacturer + " • " + string(m.Category)),
		"",
		m.Description,
		"",
		priceStyle.Render("$"+m.Price.StringFixed(2)) + mutedStyle.Render("  #"+m.ID),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func PharmacyCard(p types.Pharmacy) string {
	address := p.Address
	if p.Distance != "" {
		address += "\n" + mutedStyle.Render(gotext.Get("%s away", p.Distance))
	}
	lines := []string{
		header(p.Name, PharmacyBadges(p)),
		"",
		address,
		gotext.Get("Phone: %s", p.Phone),
		gotext.Get("Hours: %s", p.Hours),
		mutedStyle.Render("#" + p.ID),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func BloodRequestCard(b types.BloodRequest) string {
	chips := lipgloss.JoinHorizontal(lipgloss.Top,
		chipStyle.Render(string(b.BloodType))+" "+mutedStyle.Render(gotext.Get("Blood Type")),
		"    ",
		priceStyle.Render(strconv.Itoa(b.UnitsNeeded))+" "+mutedStyle.Render(gotext.Get("Units Needed")),
	)
	lines := []string{
		header(b.PatientName, BloodRequestBadges(b)),
		"",
		chips,
		"",
		titleStyle.Render(b.Hospital),
		mutedStyle.Render(b.Address),
		gotext.Get("Contact: %s", b.ContactPhone),
		gotext.Get("Required by %s", b.RequiredBy.Format(dateFormat)),
		mutedStyle.Render(gotext.Get("Posted %s", b.CreatedAt.Format(dateFormat)) + "  #" + b.ID),
	}
	return bloodCardStyle.Render(strings.Join(lines, "\n"))
}
