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

package appbuilder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/dataset"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/db"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/logger"
)

type AppDeps struct {
	Cfg     *config.MedfindConfig
	DB      *db.Database
	Catalog *dataset.Catalog
}

func (d *AppDeps) Defer() {
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			slog.Warn(gotext.Get("Failed to close catalogue"), "err", err)
		}
	}
}

type AppBuilder struct {
	deps AppDeps
	err  error
	ctx  context.Context
}

func New(ctx context.Context) *AppBuilder {
	return &AppBuilder{ctx: ctx}
}

func (b *AppBuilder) WithConfig() *AppBuilder {
	if b.err != nil {
		return b
	}

	cfg := config.New()
	if err := cfg.Load(); err != nil {
		b.err = cliutils.FormatCliExit(gotext.Get("Error loading config"), err)
		return b
	}
	if err := logger.SetLevel(cfg.LogLevel()); err != nil {
		slog.Warn(gotext.Get("Invalid log level"), "level", cfg.LogLevel(), "err", err)
	}

	b.deps.Cfg = cfg
	return b
}

// WithDB opens the SQLite catalogue read-only. It is a no-op when no
// catalogue path is configured.
func (b *AppBuilder) WithDB() *AppBuilder {
	if b.err != nil {
		return b
	}

	cfg := b.deps.Cfg
	if cfg == nil {
		b.err = errors.New("config is required before initializing DB")
		return b
	}
	if cfg.CatalogPath() == "" {
		return b
	}

	database := db.New(cfg)
	if err := database.Open(b.ctx); err != nil {
		_ = database.Close()
		b.err = cliutils.FormatCliExit(gotext.Get("Error loading listings"), err)
		return b
	}

	b.deps.DB = database
	return b
}

// WithCatalog loads the listings from the catalogue when one is open,
// otherwise from the configured dataset directory or the embedded data.
func (b *AppBuilder) WithCatalog() *AppBuilder {
	if b.err != nil {
		return b
	}

	cfg := b.deps.Cfg
	if cfg == nil {
		b.err = errors.New("config is required before loading the catalog")
		return b
	}

	var src dataset.Source = dataset.EmbeddedSource{}
	switch {
	case b.deps.DB != nil:
		src = dataset.CatalogSource{DB: b.deps.DB}
	case cfg.DatasetDir() != "":
		src = dataset.DirSource{Dir: cfg.DatasetDir()}
	}

	catalog, err := dataset.Load(b.ctx, src)
	if err != nil {
		b.err = cliutils.FormatCliExit(gotext.Get("Error loading listings"), err)
		return b
	}

	b.deps.Catalog = catalog
	return b
}

func (b *AppBuilder) Build() (*AppDeps, error) {
	if b.err != nil {
		b.deps.Defer()
		return nil, b.err
	}
	return &b.deps, nil
}
