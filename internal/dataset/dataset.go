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

package dataset

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
	"github.com/pelletier/go-toml/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

const (
	MedicinesFile     = "medicines.toml"
	PharmaciesFile    = "pharmacies.toml"
	BloodRequestsFile = "blood_requests.toml"
)

var Files = []string{MedicinesFile, PharmaciesFile, BloodRequestsFile}

//go:embed seed/*.toml
var seedFS embed.FS

// Records holds undecorated records before they are turned into stores.
type Records struct {
	Medicines     []types.Medicine     `toml:"medicines"`
	Pharmacies    []types.Pharmacy     `toml:"pharmacies"`
	BloodRequests []types.BloodRequest `toml:"bloodRequests"`
}

type Source interface {
	Records(ctx context.Context) (Records, error)
}

type Catalog struct {
	Medicines     *listing.Store[types.Medicine]
	Pharmacies    *listing.Store[types.Pharmacy]
	BloodRequests *listing.Store[types.BloodRequest]
}

// Records returns the catalog contents in store order.
func (c *Catalog) Records() Records {
	return Records{
		Medicines:     c.Medicines.All(),
		Pharmacies:    c.Pharmacies.All(),
		BloodRequests: c.BloodRequests.All(),
	}
}

// Load reads every listing from src and builds its store. Any invalid or
// duplicated record fails the whole load.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	recs, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	medicines, err := listing.NewStore(recs.Medicines)
	if err != nil {
		return nil, fmt.Errorf("medicines: %w", err)
	}
	pharmacies, err := listing.NewStore(recs.Pharmacies)
	if err != nil {
		return nil, fmt.Errorf("pharmacies: %w", err)
	}
	bloodRequests, err := listing.NewStore(recs.BloodRequests)
	if err != nil {
		return nil, fmt.Errorf("blood requests: %w", err)
	}

	slog.Debug(gotext.Get("Dataset loaded"),
		"medicines", medicines.Len(),
		"pharmacies", pharmacies.Len(),
		"bloodRequests", bloodRequests.Len(),
	)

	return &Catalog{
		Medicines:     medicines,
		Pharmacies:    pharmacies,
		BloodRequests: bloodRequests,
	}, nil
}

func seed() fs.FS {
	sub, err := fs.Sub(seedFS, "seed")
	if err != nil {
		panic(err)
	}
	return sub
}

// EmbeddedSource serves the datasets compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Records(ctx context.Context) (Records, error) {
	return readAll(ctx, seed(), nil)
}

// DirSource reads the dataset files from Dir. A missing file falls back to
// the embedded copy of that listing.
type DirSource struct {
	Dir string
}

func (s DirSource) Records(ctx context.Context) (Records, error) {
	info, err := os.Stat(s.Dir)
	if err != nil {
		return Records{}, fmt.Errorf("dataset directory: %w", err)
	}
	if !info.IsDir() {
		return Records{}, fmt.Errorf("dataset directory: %s is not a directory", s.Dir)
	}
	return readAll(ctx, os.DirFS(s.Dir), func(name string) {
		slog.Debug(gotext.Get("Dataset file not found, using embedded data"), "file", filepath.Join(s.Dir, name))
	})
}

func readAll(ctx context.Context, fsys fs.FS, onMissing func(name string)) (Records, error) {
	var out Records
	for _, name := range Files {
		if err := ctx.Err(); err != nil {
			return Records{}, err
		}

		doc, err := readFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) && onMissing != nil {
			onMissing(name)
			doc, err = readFile(seed(), name)
		}
		if err != nil {
			return Records{}, err
		}

		switch name {
		case MedicinesFile:
			out.Medicines = doc.Medicines
		case PharmaciesFile:
			out.Pharmacies = doc.Pharmacies
		case BloodRequestsFile:
			out.BloodRequests = doc.BloodRequests
		}
	}
	return out, nil
}

func readFile(fsys fs.FS, name string) (Records, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Records{}, err
	}
	return Decode(data, name)
}

// Decode parses one dataset file. Unknown keys are rejected.
func Decode(data []byte, name string) (Records, error) {
	var doc Records
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Records{}, fmt.Errorf("%s:%d:%d: %w", name, row, col, err)
		}
		return Records{}, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// CatalogReader is implemented by the SQLite catalogue.
type CatalogReader interface {
	Medicines(ctx context.Context) ([]types.Medicine, error)
	Pharmacies(ctx context.Context) ([]types.Pharmacy, error)
	BloodRequests(ctx context.Context) ([]types.BloodRequest, error)
}

type CatalogSource struct {
	DB CatalogReader
}

func (s CatalogSource) Records(ctx context.Context) (Records, error) {
	var (
		out Records
		err error
	)
	if out.Medicines, err = s.DB.Medicines(ctx); err != nil {
		return Records{}, fmt.Errorf("medicines: %w", err)
	}
	if out.Pharmacies, err = s.DB.Pharmacies(ctx); err != nil {
		return Records{}, fmt.Errorf("pharmacies: %w", err)
	}
	if out.BloodRequests, err = s.DB.BloodRequests(ctx); err != nil {
		return Records{}, fmt.Errorf("blood requests: %w", err)
	}
	return out, nil
}

// StaticSource serves records already in memory.
type StaticSource Records

func (s StaticSource) Records(context.Context) (Records, error) {
	return Records(s), nil
}
