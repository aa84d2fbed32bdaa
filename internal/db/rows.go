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

package db

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const (
	insertMedicine = `INSERT INTO medicines
		(id, name, description, price, manufacturer, category, in_stock, prescription, image_ref)
		VALUES (:id, :name, :description, :price, :manufacturer, :category, :in_stock, :prescription, :image_ref)`
	insertPharmacy = `INSERT INTO pharmacies
		(id, name, address, distance, phone, hours, is_open, has_delivery)
		VALUES (:id, :name, :address, :distance, :phone, :hours, :is_open, :has_delivery)`
	insertBloodRequest = `INSERT INTO blood_requests
		(id, patient_name, blood_type, units_needed, hospital, address, contact_phone, urgency, required_by, created_at, status)
		VALUES (:id, :patient_name, :blood_type, :units_needed, :hospital, :address, :contact_phone, :urgency, :required_by, :created_at, :status)`
)

type medicineRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Price        string         `db:"price"`
	Manufacturer string         `db:"manufacturer"`
	Category     string         `db:"category"`
	InStock      bool           `db:"in_stock"`
	Prescription bool           `db:"prescription"`
	ImageRef     sql.NullString `db:"image_ref"`
}

func newMedicineRow(m types.Medicine) medicineRow {
	return medicineRow{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price.String(),
		Manufacturer: m.Manufacturer,
		Category:     string(m.Category),
		InStock:      m.InStock,
		Prescription: m.Prescription,
		ImageRef:     nullString(m.ImageRef),
	}
}

func (r medicineRow) toMedicine() (types.Medicine, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return types.Medicine{}, fmt.Errorf("medicine %q: price %q: %w", r.ID, r.Price, err)
	}
	return types.Medicine{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        price,
		Manufacturer: r.Manufacturer,
		Category:     types.Category(r.Category),
		InStock:      r.InStock,
		Prescription: r.Prescription,
		ImageRef:     r.ImageRef.String,
	}, nil
}

type pharmacyRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Address     string         `db:"address"`
	Distance    sql.NullString `db:"distance"`
	Phone       string         `db:"phone"`
	Hours       string         `db:"hours"`
	IsOpen      bool           `db:"is_open"`
	HasDelivery sql.NullBool   `db:"has_delivery"`
}

func newPharmacyRow(p types.Pharmacy) pharmacyRow {
	row := pharmacyRow{
		ID:       p.ID,
		Name:     p.Name,
		Address:  p.Address,
		Distance: nullString(p.Distance),
		Phone:    p.Phone,
		Hours:    p.Hours,
		IsOpen:   p.IsOpen,
	}
	if p.HasDelivery != nil {
		row.HasDelivery = sql.NullBool{Bool: *p.HasDelivery, Valid: true}
	}
	return row
}

func (r pharmacyRow) toPharmacy() types.Pharmacy {
	p := types.Pharmacy{
		ID:       r.ID,
		Name:     r.Name,
		Address:  r.Address,
		Distance: r.Distance.String,
		Phone:    r.Phone,
		Hours:    r.Hours,
		IsOpen:   r.IsOpen,
	}
	if r.HasDelivery.Valid {
		delivers := r.HasDelivery.Bool
		p.HasDelivery = &delivers
	}
	return p
}

type bloodRequestRow struct {
	ID           string `db:"id"`
	PatientName  string `db:"patient_name"`
	BloodType    string `db:"blood_type"`
	UnitsNeeded  int    `db:"units_needed"`
	Hospital     string `db:"hospital"`
	Address      string `db:"address"`
	ContactPhone string `db:"contact_phone"`
	Urgency      string `db:"urgency"`
	RequiredBy   string `db:"required_by"`
	CreatedAt    string `db:"created_at"`
	Status       string `db:"status"`
}

func newBloodRequestRow(b types.BloodRequest) bloodRequestRow {
	return bloodRequestRow{
		ID:           b.ID,
		PatientName:  b.PatientName,
		BloodType:    string(b.BloodType),
		UnitsNeeded:  b.UnitsNeeded,
		Hospital:     b.Hospital,
		Address:      b.Address,
		ContactPhone: b.ContactPhone,
		Urgency:      string(b.Urgency),
		RequiredBy:   b.RequiredBy.String(),
		CreatedAt:    b.CreatedAt.String(),
		Status:       string(b.Status),
	}
}

func (r bloodRequestRow) toBloodRequest() (types.BloodRequest, error) {
	requiredBy, err := types.ParseDate(r.RequiredBy)
	if err != nil {
		return types.BloodRequest{}, fmt.Errorf("blood request %q: requiredBy: %w", r.ID, err)
	}
	createdAt, err := types.ParseDate(r.CreatedAt)
	if err != nil {
		return types.BloodRequest{}, fmt.Errorf("blood request %q: createdAt: %w", r.ID, err)
	}
	return types.BloodRequest{
		ID:           r.ID,
		PatientName:  r.PatientName,
		BloodType:    types.BloodType(r.BloodType),
		UnitsNeeded:  r.UnitsNeeded,
		Hospital:     r.Hospital,
		Address:      r.Address,
		ContactPhone: r.ContactPhone,
		Urgency:      types.Urgency(r.Urgency),
		RequiredBy:   requiredBy,
		CreatedAt:    createdAt,
		Status:       types.Status(r.Status),
	}, nil
}
