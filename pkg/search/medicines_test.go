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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func TestMedicineOptionsBuilder(t *testing.T) {
	type testCase struct {
		name          string
		prepare       func() *search.SearchOptions
		expectedQuery string
		expectedSel   listing.Selection
	}

	for _, tc := range []testCase{
		{
			name: "Empty fields",
			prepare: func() *search.SearchOptions {
				return search.NewMedicineOptions().
					Build()
			},
			expectedQuery: "",
			expectedSel:   nil,
		},
		{
			name: "All fields",
			prepare: func() *search.SearchOptions {
				return search.NewMedicineOptions().
					WithQuery("amox").
					WithCategory("antibiotics").
					WithPriceRange("10-25").
					WithAvailability("in-stock").
					Build()
			},
			expectedQuery: "amox",
			expectedSel: listing.Selection{
				{Key: "category", Values: []string{"antibiotics"}},
				{Key: "priceRange", Values: []string{"10-25"}},
				{Key: "availability", Values: []string{"in-stock"}},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.prepare()
			assert.Equal(t, tc.expectedQuery, opts.Query())
			assert.Equal(t, tc.expectedSel, opts.Criteria())
		})
	}
}

func TestMedicineSearchScenarios(t *testing.T) {
	s := medicineSearcher(t)

	for _, tc := range []struct {
		name string
		opts *search.SearchOptions
		want []string
	}{
		{
			name: "empty query returns everything",
			opts: search.NewMedicineOptions().Build(),
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "amox",
			opts: search.NewMedicineOptions().WithQuery("amox").Build(),
			want: []string{"2"},
		},
		{
			name: "manufacturer is searchable",
			opts: search.NewMedicineOptions().WithQuery("cardiohealth").Build(),
			want: []string{"3"},
		},
		{
			name: "description is searchable",
			opts: search.NewMedicineOptions().WithQuery("ALLERGY symptoms").Build(),
			want: []string{"5"},
		},
		{
			name: "in stock",
			opts: search.NewMedicineOptions().WithAvailability("in-stock").Build(),
			want: []string{"1", "2", "4", "5"},
		},
		{
			name: "nearby passes everything through",
			opts: search.NewMedicineOptions().WithAvailability("nearby").Build(),
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "all passes everything through",
			opts: search.NewMedicineOptions().WithAvailability("all").Build(),
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "category ignores case",
			opts: search.NewMedicineOptions().WithCategory("pain relief").Build(),
			want: []string{"1"},
		},
		{
			name: "unknown category is ignored",
			opts: search.NewMedicineOptions().WithCategory("skincare").Build(),
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "closed price range",
			opts: search.NewMedicineOptions().WithPriceRange("0-10").Build(),
			want: []string{"1", "3", "5"},
		},
		{
			name: "open price range",
			opts: search.NewMedicineOptions().WithPriceRange("10+").Build(),
			want: []string{"2", "4"},
		},
		{
			name: "price bounds are inclusive",
			opts: search.NewMedicineOptions().WithPriceRange("5.99-8.75").Build(),
			want: []string{"1", "3", "5"},
		},
		{
			name: "malformed price range is inactive",
			opts: search.NewMedicineOptions().WithPriceRange("cheap").Build(),
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "malformed availability is inactive",
			opts: search.NewMedicineOptions().WithAvailability("tomorrow").Build(),
			want: []string{"1", "2", "3", "4", "5"},
		},
		{
			name: "filters combine",
			opts: search.NewMedicineOptions().WithQuery("mg").WithPriceRange("0-10").WithAvailability("in-stock").Build(),
			want: []string{"1", "5"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := s.Search(tc.opts)
			assert.Equal(t, tc.want, recordIDs(res.Items))
			assert.Equal(t, len(tc.want), res.Count)
		})
	}
}

func TestParsePriceRange(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0-10", want: "0-10"},
		{in: " 10 - 25 ", want: "10-25"},
		{in: "100+", want: "100+"},
		{in: "2.5-7.75", want: "2.5-7.75"},
		{in: "", wantErr: true},
		{in: "10", wantErr: true},
		{in: "25-10", wantErr: true},
		{in: "a-b", wantErr: true},
		{in: "-5+", wantErr: true},
		{in: "+", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			r, err := search.ParsePriceRange(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, listing.ErrMalformedValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.String())
		})
	}
}

func TestPriceRangeContains(t *testing.T) {
	closed, err := search.ParsePriceRange("10-25")
	require.NoError(t, err)
	assert.True(t, closed.Contains(decimal.NewFromInt(10)))
	assert.True(t, closed.Contains(decimal.NewFromInt(25)))
	assert.False(t, closed.Contains(decimal.RequireFromString("25.01")))
	assert.False(t, closed.Contains(decimal.RequireFromString("9.99")))

	open, err := search.ParsePriceRange("100+")
	require.NoError(t, err)
	assert.True(t, open.Contains(decimal.NewFromInt(100)))
	assert.True(t, open.Contains(decimal.NewFromInt(100000)))
	assert.False(t, open.Contains(decimal.RequireFromString("99.99")))
}

func TestSearchPage(t *testing.T) {
	s := medicineSearcher(t)

	page := s.SearchPage(search.NewMedicineOptions().Build(), 2, 3)
	assert.Equal(t, []string{"5"}, recordIDs(page.Items))
	assert.Equal(t, 3, page.TotalPages)

	page = s.SearchPage(search.NewMedicineOptions().WithQuery("nothing like this").Build(), 10, 1)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}
