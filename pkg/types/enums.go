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

package types

import "strings"

// Category is a medicine category. Comparison is case-insensitive, so
// "pain relief" and "Pain Relief" name the same category.
type Category string

const (
	CategoryAntibiotics   Category = "Antibiotics"
	CategoryPainRelief    Category = "Pain Relief"
	CategoryVitamins      Category = "Vitamins & Supplements"
	CategoryAllergy       Category = "Allergy"
	CategoryBloodPressure Category = "Blood Pressure"
)

// Categories lists the closed set of medicine categories in display order.
var Categories = []Category{
	CategoryAntibiotics,
	CategoryPainRelief,
	CategoryVitamins,
	CategoryAllergy,
	CategoryBloodPressure,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if strings.EqualFold(string(known), string(c)) {
			return true
		}
	}
	return false
}

// Key returns the lower-case form used as a filter value.
func (c Category) Key() string {
	return strings.ToLower(string(c))
}

type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

var BloodTypes = []BloodType{
	BloodTypeAPos,
	BloodTypeANeg,
	BloodTypeBPos,
	BloodTypeBNeg,
	BloodTypeABPos,
	BloodTypeABNeg,
	BloodTypeOPos,
	BloodTypeONeg,
}

func (b BloodType) Valid() bool {
	for _, known := range BloodTypes {
		if known == b {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyUrgent, UrgencyNormal:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusVerified  Status = "verified"
	StatusFulfilled Status = "fulfilled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusFulfilled:
		return true
	}
	return false
}
