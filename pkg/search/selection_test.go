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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func TestParseDomain(t *testing.T) {
	for in, want := range map[string]search.Domain{
		"medicines": search.DomainMedicines,
		"MED":       search.DomainMedicines,
		"pharmacy":  search.DomainPharmacies,
		" ph ":      search.DomainPharmacies,
		"blood":     search.DomainBlood,
		"bl":        search.DomainBlood,
	} {
		got, err := search.ParseDomain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseDomain("doctors")
	assert.ErrorIs(t, err, search.ErrUnknownDomain)
}

func TestParseFilterArgs(t *testing.T) {
	raw, err := search.ParseFilterArgs([]string{"category=antibiotics", "bloodType=A-", "bloodType=B+", " priceRange = 10-25 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"category":   "antibiotics",
		"bloodType":  "A-,B+",
		"priceRange": "10-25",
	}, raw)

	_, err = search.ParseFilterArgs([]string{"category"})
	assert.Error(t, err)
	_, err = search.ParseFilterArgs([]string{"=x"})
	assert.Error(t, err)
}

func TestDecodeSelection(t *testing.T) {
	for _, tc := range []struct {
		name    string
		domain  search.Domain
		raw     map[string]string
		want    listing.Selection
		wantErr bool
	}{
		{
			name:   "medicines",
			domain: search.DomainMedicines,
			raw:    map[string]string{"category": "allergy", "priceRange": "0-10"},
			want: listing.Selection{
				{Key: "category", Values: []string{"allergy"}},
				{Key: "priceRange", Values: []string{"0-10"}},
			},
		},
		{
			name:   "key case is ignored",
			domain: search.DomainMedicines,
			raw:    map[string]string{"AVAILABILITY": "in-stock"},
			want:   listing.Selection{{Key: "availability", Values: []string{"in-stock"}}},
		},
		{
			name:    "typo in key is rejected",
			domain:  search.DomainMedicines,
			raw:     map[string]string{"catgory": "allergy"},
			wantErr: true,
		},
		{
			name:    "key from another listing is rejected",
			domain:  search.DomainPharmacies,
			raw:     map[string]string{"bloodType": "O+"},
			wantErr: true,
		},
		{
			name:   "pharmacy flags",
			domain: search.DomainPharmacies,
			raw:    map[string]string{"openNow": "true", "hasDelivery": "false"},
			want:   listing.Selection{{Key: "openNow", Values: []string{"true"}}},
		},
		{
			name:   "malformed flag stays off",
			domain: search.DomainPharmacies,
			raw:    map[string]string{"openNow": "sometimes"},
			want:   nil,
		},
		{
			name:   "blood type list",
			domain: search.DomainBlood,
			raw:    map[string]string{"bloodType": "A-,B+"},
			want:   listing.Selection{{Key: "bloodType", Values: []string{"A-", "B+"}}},
		},
		{
			name:   "empty blood type list",
			domain: search.DomainBlood,
			raw:    map[string]string{"bloodType": ""},
			want:   nil,
		},
		{
			name:    "unknown listing",
			domain:  search.Domain("doctors"),
			raw:     map[string]string{},
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := search.DecodeSelection(tc.domain, tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterKeys(t *testing.T) {
	keys, err := search.FilterKeys(search.DomainMedicines)
	require.NoError(t, err)
	require.Len(t, keys, 3)
	assert.Equal(t, "category", keys[0].Key)
	assert.Equal(t, []string{"antibiotics", "pain relief", "vitamins & supplements", "allergy", "blood pressure"}, keys[0].Values)
	assert.Equal(t, []string{"0-10", "10-25", "25-50", "50-100", "100+"}, keys[1].Values)
	assert.Equal(t, []string{"in-stock", "nearby", "all"}, keys[2].Values)

	keys, err = search.FilterKeys(search.DomainBlood)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, keys[0].Multi)
	assert.Equal(t, []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}, keys[0].Values)

	_, err = search.FilterKeys("doctors")
	assert.ErrorIs(t, err, search.ErrUnknownDomain)
}

func TestSchemaKeysMatchFilterKeys(t *testing.T) {
	assert.Equal(t, []string{"availability", "category", "priceRange"}, search.SchemaKeys(search.MedicineSchema))
	assert.Equal(t, []string{"hasDelivery", "openNow"}, search.SchemaKeys(search.PharmacySchema))
	assert.Equal(t, []string{"bloodType"}, search.SchemaKeys(search.BloodSchema))
}

func TestSearchDecodedSelection(t *testing.T) {
	criteria, err := search.DecodeSelection(search.DomainMedicines, map[string]string{
		"category":     "antibiotics",
		"availability": "in-stock",
	})
	require.NoError(t, err)
	res := medicineSearcher(t).Search(search.NewOptions("", criteria))
	assert.Equal(t, []string{"2"}, recordIDs(res.Items))

	criteria, err = search.DecodeSelection(search.DomainBlood, map[string]string{"bloodType": "A-,Z+"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A-", "Z+"}, criteria.Values(search.FilterBloodType))
	assert.Nil(t, criteria.Values(search.FilterCategory))
	res2 := bloodSearcher(t).Search(search.NewOptions("", criteria))
	assert.Equal(t, []string{"2"}, recordIDs(res2.Items))

	criteria, err = search.DecodeSelection(search.DomainPharmacies, map[string]string{"hasDelivery": "true"})
	require.NoError(t, err)
	res3 := pharmacySearcher(t).Search(search.NewOptions("pharmacy", criteria))
	assert.Equal(t, []string{"1"}, recordIDs(res3.Items))
}
