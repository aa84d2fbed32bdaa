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

package render_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func badgeTexts(badges []render.Badge) []string {
	out := make([]string, len(badges))
	for i, b := range badges {
		out[i] = b.Text
	}
	return out
}

var lisinopril = types.Medicine{
	ID:           "3",
	Name:         "Lisinopril 10mg",
	Description:  "Used to treat high blood pressure.",
	Price:        decimal.RequireFromString("8.75"),
	Manufacturer: "CardioHealth",
	Category:     types.CategoryBloodPressure,
	Prescription: true,
}

func TestMedicineBadges(t *testing.T) {
	assert.Equal(t, []string{"Out of Stock", "Prescription"}, badgeTexts(render.MedicineBadges(lisinopril)))

	inStock := lisinopril
	inStock.InStock = true
	inStock.Prescription = false
	assert.Equal(t, []string{"In Stock"}, badgeTexts(render.MedicineBadges(inStock)))
}

func TestPharmacyBadges(t *testing.T) {
	yes := true
	assert.Equal(t, []string{"Open Now", "Delivery"}, badgeTexts(render.PharmacyBadges(types.Pharmacy{IsOpen: true, HasDelivery: &yes})))
	assert.Equal(t, []string{"Closed"}, badgeTexts(render.PharmacyBadges(types.Pharmacy{})))
}

func TestBloodRequestBadges(t *testing.T) {
	for _, tc := range []struct {
		urgency types.Urgency
		status  types.Status
		want    []string
	}{
		{types.UrgencyCritical, types.StatusVerified, []string{"! Critical", "Verified"}},
		{types.UrgencyUrgent, types.StatusFulfilled, []string{"Urgent", "Fulfilled"}},
		{types.UrgencyNormal, types.StatusPending, []string{"Normal", "Pending"}},
	} {
		got := render.BloodRequestBadges(types.BloodRequest{Urgency: tc.urgency, Status: tc.status})
		assert.Equal(t, tc.want, badgeTexts(got))
	}
}

func TestCards(t *testing.T) {
	card := render.MedicineCard(lisinopril)
	assert.Contains(t, card, "Lisinopril 10mg")
	assert.Contains(t, card, "$8.75")
	assert.Contains(t, card, "CardioHealth")

	yes := true
	card = render.PharmacyCard(types.Pharmacy{
		ID: "1", Name: "MediCare Pharmacy", Address: "123 Health Street", Distance: "0.8 miles",
		Phone: "(555) 123-4567", Hours: "8:00 AM - 9:00 PM", IsOpen: true, HasDelivery: &yes,
	})
	assert.Contains(t, card, "MediCare Pharmacy")
	assert.Contains(t, card, "0.8 miles away")
	assert.Contains(t, card, "Open Now")

	card = render.BloodRequestCard(types.BloodRequest{
		ID: "1", PatientName: "John Smith", BloodType: types.BloodTypeOPos, UnitsNeeded: 2,
		Hospital: "General Hospital", Address: "123 Medical Center Blvd", ContactPhone: "(555) 123-4567",
		Urgency: types.UrgencyCritical, Status: types.StatusVerified,
		RequiredBy: types.NewDate(2025, time.April, 15), CreatedAt: types.NewDate(2025, time.April, 12),
	})
	assert.Contains(t, card, "John Smith")
	assert.Contains(t, card, "O+")
	assert.Contains(t, card, "Required by Apr 15, 2025")
}

func TestEmptyState(t *testing.T) {
	assert.Equal(t, "No pharmacies found", render.EmptyStateFor(search.DomainPharmacies).Title)
	assert.Equal(t, "No blood requests found", render.EmptyStateFor(search.DomainBlood).Title)
	assert.Equal(t, "No medicines found", render.EmptyStateFor(search.DomainMedicines).Title)
	assert.Equal(t, "No results found", render.EmptyStateFor("other").Title)

	var buf bytes.Buffer
	require.NoError(t, render.WriteEmpty(&buf, search.DomainPharmacies))
	assert.Contains(t, buf.String(), "Try adjusting your search criteria or filters.")
}

func TestPageMarkers(t *testing.T) {
	assert.Equal(t, "1 … 4 5 6 … 10", render.PageMarkers(5, 10))
	assert.Equal(t, "1 2 3", render.PageMarkers(2, 3))
}

func TestPageFooter(t *testing.T) {
	page := listing.Paginate([]int{1, 2, 3, 4, 5, 6, 7}, 2, 3)
	footer := render.PageFooter(page)
	assert.Contains(t, footer, "Page 3 of 4")
	assert.Contains(t, footer, "1 2 3 4")
	assert.Contains(t, footer, "7 results")

	single := render.PageFooter(listing.Paginate([]int{1}, 10, 1))
	assert.Contains(t, single, "Page 1 of 1")
	assert.Contains(t, single, "1 result")
	assert.NotContains(t, single, "results")
}

func TestFormat(t *testing.T) {
	items := []types.Medicine{lisinopril}

	f, err := render.NewFormat("{{.ID}}: {{.Name}} {{.Price.StringFixed 2}}", render.MedicineCard)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, items))
	assert.Equal(t, "3: Lisinopril 10mg 8.75\n", buf.String())

	_, err = render.NewFormat("{{.Name", render.MedicineCard)
	assert.Error(t, err)

	f, err = render.NewFormat("", render.MedicineCard)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, f.Write(&buf, items))
	assert.Contains(t, buf.String(), "Lisinopril 10mg")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.YAML(&buf, lisinopril))
	out := buf.String()
	assert.Contains(t, out, "name: Lisinopril 10mg")
	assert.Contains(t, out, `price: "8.75"`)
	assert.Contains(t, out, "category: Blood Pressure")
	assert.NotContains(t, out, "imageRef")
}
