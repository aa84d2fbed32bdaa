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
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/leonelquinteros/gotext"
	_ "modernc.org/sqlite"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const CurrentVersion = 1

var (
	ErrVersionMismatch = errors.New("catalogue schema version mismatch")
	ErrNotFound        = errors.New("catalogue not found")
	ErrNoSchema        = errors.New("catalogue has no medfind schema")
)

const schema = `
CREATE TABLE IF NOT EXISTS medicines (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL,
	price        TEXT NOT NULL,
	manufacturer TEXT NOT NULL,
	category     TEXT NOT NULL,
	in_stock     INTEGER NOT NULL DEFAULT 0,
	prescription INTEGER NOT NULL DEFAULT 0,
	image_ref    TEXT
);

CREATE TABLE IF NOT EXISTS pharmacies (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	address      TEXT NOT NULL,
	distance     TEXT,
	phone        TEXT NOT NULL,
	hours        TEXT NOT NULL,
	is_open      INTEGER NOT NULL DEFAULT 0,
	has_delivery INTEGER
);

CREATE TABLE IF NOT EXISTS blood_requests (
	id            TEXT PRIMARY KEY,
	patient_name  TEXT NOT NULL,
	blood_type    TEXT NOT NULL,
	units_needed  INTEGER NOT NULL,
	hospital      TEXT NOT NULL,
	address       TEXT NOT NULL,
	contact_phone TEXT NOT NULL,
	urgency       TEXT NOT NULL,
	required_by   TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	status        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS medfind_version (
	version INTEGER NOT NULL
);
`

type Config interface {
	GetPaths() *config.Paths
}

type Database struct {
	conn   *sqlx.DB
	config Config
}

func New(config Config) *Database {
	return &Database{
		config: config,
	}
}

func (d *Database) path() (string, error) {
	path := d.config.GetPaths().CatalogPath
	if path == "" {
		return "", errors.New("catalogue path is not configured")
	}
	return path, nil
}

func (d *Database) Connect() error {
	dsn, err := d.path()
	if err != nil {
		return err
	}
	return d.connect(dsn)
}

func (d *Database) connect(dsn string) error {
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	// A second connection to ":memory:" would see an empty database.
	conn.SetMaxOpenConns(1)
	d.conn = conn
	return nil
}

func (d *Database) GetConn() *sqlx.DB {
	return d.conn
}

func (d *Database) Init(ctx context.Context) error {
	if err := d.Connect(); err != nil {
		return err
	}
	if _, err := d.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	ver, ok := d.GetVersion(ctx)
	if !ok {
		slog.Debug(gotext.Get("Catalogue version does not exist, writing current version"), "version", CurrentVersion)
		return d.addVersion(ctx, CurrentVersion)
	}
	if ver != CurrentVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrVersionMismatch, ver, CurrentVersion)
	}
	return nil
}

// Open connects read-only to an existing catalogue written by Init. Unlike
// Init it never creates the file or the schema.
func (d *Database) Open(ctx context.Context) error {
	path, err := d.path()
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	if err := d.connect("file:" + path + "?mode=ro"); err != nil {
		return err
	}

	ver, ok := d.GetVersion(ctx)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSchema, path)
	}
	if ver != CurrentVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrVersionMismatch, ver, CurrentVersion)
	}
	return nil
}

func (d *Database) GetVersion(ctx context.Context) (int, bool) {
	var ver int
	err := d.conn.GetContext(ctx, &ver, "SELECT version FROM medfind_version LIMIT 1")
	if err != nil {
		return 0, false
	}
	return ver, true
}

func (d *Database) addVersion(ctx context.Context, ver int) error {
	_, err := d.conn.ExecContext(ctx, "INSERT INTO medfind_version(version) VALUES (?)", ver)
	return err
}

func (d *Database) IsEmpty(ctx context.Context) bool {
	var count int
	err := d.conn.GetContext(ctx, &count, `
		SELECT (SELECT count(*) FROM medicines)
		     + (SELECT count(*) FROM pharmacies)
		     + (SELECT count(*) FROM blood_requests)`)
	return err != nil || count == 0
}

func (d *Database) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// Import replaces the catalogue contents in one transaction. Rows keep the
// order they are given in.
func (d *Database) Import(ctx context.Context, medicines []types.Medicine, pharmacies []types.Pharmacy, bloodRequests []types.BloodRequest) (err error) {
	tx, err := d.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"medicines", "pharmacies", "blood_requests"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, m := range medicines {
		if _, err = tx.NamedExecContext(ctx, insertMedicine, newMedicineRow(m)); err != nil {
			return fmt.Errorf("medicine %q: %w", m.ID, err)
		}
	}
	for _, p := range pharmacies {
		if _, err = tx.NamedExecContext(ctx, insertPharmacy, newPharmacyRow(p)); err != nil {
			return fmt.Errorf("pharmacy %q: %w", p.ID, err)
		}
	}
	for _, b := range bloodRequests {
		if _, err = tx.NamedExecContext(ctx, insertBloodRequest, newBloodRequestRow(b)); err != nil {
			return fmt.Errorf("blood request %q: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

func (d *Database) Medicines(ctx context.Context) ([]types.Medicine, error) {
	var rows []medicineRow
	if err := d.conn.SelectContext(ctx, &rows, "SELECT * FROM medicines ORDER BY rowid"); err != nil {
		return nil, err
	}
	out := make([]types.Medicine, 0, len(rows))
	for _, row := range rows {
		m, err := row.toMedicine()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (d *Database) Pharmacies(ctx context.Context) ([]types.Pharmacy, error) {
	var rows []pharmacyRow
	if err := d.conn.SelectContext(ctx, &rows, "SELECT * FROM pharmacies ORDER BY rowid"); err != nil {
		return nil, err
	}
	out := make([]types.Pharmacy, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPharmacy())
	}
	return out, nil
}

func (d *Database) BloodRequests(ctx context.Context) ([]types.BloodRequest, error) {
	var rows []bloodRequestRow
	if err := d.conn.SelectContext(ctx, &rows, "SELECT * FROM blood_requests ORDER BY rowid"); err != nil {
		return nil, err
	}
	out := make([]types.BloodRequest, 0, len(rows))
	for _, row := range rows {
		b, err := row.toBloodRequest()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
