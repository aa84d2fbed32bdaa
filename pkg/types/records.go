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

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var (
	ErrNegativePrice = errors.New("price must not be negative")
	ErrMissingDate   = errors.New("date is required")
)

// Medicine is a single entry of the medicine catalogue.
type Medicine struct {
	ID           string          `toml:"id" yaml:"id" json:"id" validate:"required"`
	Name         string          `toml:"name" yaml:"name" json:"name" validate:"required"`
	Description  string          `toml:"description" yaml:"description" json:"description" validate:"required"`
	Price        decimal.Decimal `toml:"price" yaml:"price" json:"price"`
	Manufacturer string          `toml:"manufacturer" yaml:"manufacturer" json:"manufacturer" validate:"required"`
	Category     Category        `toml:"category" yaml:"category" json:"category" validate:"required"`
	InStock      bool            `toml:"inStock" yaml:"inStock" json:"inStock"`
	Prescription bool            `toml:"prescription" yaml:"prescription" json:"prescription"`
	ImageRef     string          `toml:"imageRef,omitempty" yaml:"imageRef,omitempty" json:"imageRef,omitempty"`
}

func (m Medicine) RecordID() string { return m.ID }

func (m Medicine) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("medicine %q: %w", m.ID, err)
	}
	if m.Price.IsNegative() {
		return fmt.Errorf("medicine %q: %w", m.ID, ErrNegativePrice)
	}
	return nil
}

// Pharmacy is a single entry of the pharmacy directory.
type Pharmacy struct {
	ID          string `toml:"id" yaml:"id" json:"id" validate:"required"`
	Name        string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Address     string `toml:"address" yaml:"address" json:"address" validate:"required"`
	Distance    string `toml:"distance,omitempty" yaml:"distance,omitempty" json:"distance,omitempty"`
	Phone       string `toml:"phone" yaml:"phone" json:"phone" validate:"required"`
	Hours       string `toml:"hours" yaml:"hours" json:"hours" validate:"required"`
	IsOpen      bool   `toml:"isOpen" yaml:"isOpen" json:"isOpen"`
	HasDelivery *bool  `toml:"hasDelivery,omitempty" yaml:"hasDelivery,omitempty" json:"hasDelivery,omitempty"`
}

func (p Pharmacy) RecordID() string { return p.ID }

func (p Pharmacy) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("pharmacy %q: %w", p.ID, err)
	}
	return nil
}

// Delivers reports whether the pharmacy is known to deliver.
func (p Pharmacy) Delivers() bool {
	return p.HasDelivery != nil && *p.HasDelivery
}

// BloodRequest is a published request for blood donation.
type BloodRequest struct {
	ID           string    `toml:"id" yaml:"id" json:"id" validate:"required"`
	PatientName  string    `toml:"patientName" yaml:"patientName" json:"patientName" validate:"required"`
	BloodType    BloodType `toml:"bloodType" yaml:"bloodType" json:"bloodType" validate:"required"`
	UnitsNeeded  int       `toml:"unitsNeeded" yaml:"unitsNeeded" json:"unitsNeeded" validate:"gte=1"`
	Hospital     string    `toml:"hospital" yaml:"hospital" json:"hospital" validate:"required"`
	Address      string    `toml:"address" yaml:"address" json:"address" validate:"required"`
	ContactPhone string    `toml:"contactPhone" yaml:"contactPhone" json:"contactPhone" validate:"required"`
	Urgency      Urgency   `toml:"urgency" yaml:"urgency" json:"urgency" validate:"required"`
	RequiredBy   Date      `toml:"requiredBy" yaml:"requiredBy" json:"requiredBy"`
	CreatedAt    Date      `toml:"createdAt" yaml:"createdAt" json:"createdAt"`
	Status       Status    `toml:"status" yaml:"status" json:"status" validate:"required"`
}

func (b BloodRequest) RecordID() string { return b.ID }

func (b BloodRequest) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("blood request %q: %w", b.ID, err)
	}
	if b.RequiredBy.IsZero() {
		return fmt.Errorf("blood request %q: requiredBy: %w", b.ID, ErrMissingDate)
	}
	if b.CreatedAt.IsZero() {
		return fmt.Errorf("blood request %q: createdAt: %w", b.ID, ErrMissingDate)
	}
	return nil
}
