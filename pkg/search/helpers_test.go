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

package search_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

func medicineSearcher(t *testing.T) *search.Searcher[types.Medicine] {
	t.Helper()
	store, err := listing.NewStore([]types.Medicine{
		{ID: "1", Name: "Paracetamol 500mg", Description: "Pain reliever and fever reducer.", Price: decimal.RequireFromString("5.99"), Manufacturer: "MediCorp", Category: types.CategoryPainRelief, InStock: true},
		{ID: "2", Name: "Amoxicillin 250mg", Description: "Antibiotic used to treat a number of bacterial infections.", Price: decimal.RequireFromString("12.50"), Manufacturer: "PharmaCare", Category: types.CategoryAntibiotics, InStock: true, Prescription: true},
		{ID: "3", Name: "Lisinopril 10mg", Description: "Used to treat high blood pressure (hypertension) or heart failure.", Price: decimal.RequireFromString("8.75"), Manufacturer: "CardioHealth", Category: types.CategoryBloodPressure, Prescription: true},
		{ID: "4", Name: "Vitamin D3 1000IU", Description: "Dietary supplement used to maintain healthy levels of vitamin D.", Price: decimal.RequireFromString("14.95"), Manufacturer: "NaturalLife", Category: types.CategoryVitamins, InStock: true},
		{ID: "5", Name: "Cetirizine 10mg", Description: "Antihistamine used to relieve allergy symptoms.", Price: decimal.RequireFromString("7.25"), Manufacturer: "AllerCare", Category: types.CategoryAllergy, InStock: true},
	})
	require.NoError(t, err)
	return search.New(store, search.MedicineSchema)
}

func pharmacySearcher(t *testing.T) *search.Searcher[types.Pharmacy] {
	t.Helper()
	yes, no := true, false
	store, err := listing.NewStore([]types.Pharmacy{
		{ID: "1", Name: "MediCare Pharmacy", Address: "123 Health Street, Medville, CA 90210", Distance: "0.8 miles", Phone: "(555) 123-4567", Hours: "8:00 AM - 9:00 PM", IsOpen: true, HasDelivery: &yes},
		{ID: "2", Name: "QuickRx Pharmacy", Address: "456 Wellness Avenue, Careville, CA 90211", Phone: "(555) 987-6543", Hours: "9:00 AM - 7:00 PM", IsOpen: true, HasDelivery: &no},
		{ID: "3", Name: "HealthPoint Drugs", Address: "789 Recovery Road, Welltown, CA 90212", Phone: "(555) 456-7890", Hours: "8:00 AM - 10:00 PM", IsOpen: true, HasDelivery: &yes},
		{ID: "4", Name: "Community Pharmacy", Address: "321 Main Street, Downtown, CA 90213", Phone: "(555) 789-0123", Hours: "8:00 AM - 6:00 PM", IsOpen: false, HasDelivery: &no},
		{ID: "5", Name: "24/7 MediHelp", Address: "555 Emergency Lane, Helpville, CA 90214", Phone: "(555) 321-6547", Hours: "Open 24 hours", IsOpen: true},
	})
	require.NoError(t, err)
	return search.New(store, search.PharmacySchema)
}

func bloodSearcher(t *testing.T) *search.Searcher[types.BloodRequest] {
	t.Helper()
	req := func(id, patient string, bt types.BloodType, hospital, address string, status types.Status) types.BloodRequest {
		return types.BloodRequest{
			ID:           id,
			PatientName:  patient,
			BloodType:    bt,
			UnitsNeeded:  1,
			Hospital:     hospital,
			Address:      address,
			ContactPhone: "(555) 000-0000",
			Urgency:      types.UrgencyNormal,
			RequiredBy:   types.NewDate(2025, time.April, 20),
			CreatedAt:    types.NewDate(2025, time.April, 10),
			Status:       status,
		}
	}
	store, err := listing.NewStore([]types.BloodRequest{
		req("1", "John Smith", types.BloodTypeOPos, "General Hospital", "123 Medical Center Blvd, Cityville, CA", types.StatusVerified),
		req("2", "Mary Johnson", types.BloodTypeANeg, "Community Medical Center", "456 Healthcare Ave, Townsville, CA", types.StatusVerified),
		req("3", "Robert Davis", types.BloodTypeBPos, "Saint Joseph's Hospital", "789 Wellness Parkway, Villagetown, CA", types.StatusPending),
		req("4", "Sarah Wilson", types.BloodTypeABPos, "University Medical Center", "321 Research Blvd, Collegetown, CA", types.StatusFulfilled),
	})
	require.NoError(t, err)
	return search.New(store, search.BloodSchema)
}

func recordIDs[T listing.Record](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.RecordID()
	}
	return out
}
