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

package appbuilder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/db"
)

const singleMedicine = `[[medicines]]
id = "m1"
name = "Ibuprofen 200mg"
description = "Anti-inflammatory"
price = "3.10"
manufacturer = "MediCorp"
category = "Pain Relief"
inStock = true
`

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MEDFIND_CONFIG", filepath.Join(dir, "medfind.toml"))
	for _, key := range []string{"PAGE_SIZE", "DATASET_DIR", "CATALOG_PATH", "CACHE_SIZE"} {
		t.Setenv("MEDFIND_"+key, "")
		require.NoError(t, os.Unsetenv("MEDFIND_"+key))
	}
	return dir
}

func TestBuildEmbedded(t *testing.T) {
	setupEnv(t)

	deps, err := appbuilder.New(context.Background()).
		WithConfig().
		WithDB().
		WithCatalog().
		Build()
	require.NoError(t, err)
	defer deps.Defer()

	assert.Nil(t, deps.DB)
	assert.Equal(t, 5, deps.Catalog.Medicines.Len())
	assert.Equal(t, 5, deps.Catalog.Pharmacies.Len())
	assert.Equal(t, 4, deps.Catalog.BloodRequests.Len())
}

func TestBuildDatasetDir(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "medicines.toml"), []byte(singleMedicine), 0o644))
	t.Setenv("MEDFIND_DATASET_DIR", dir)

	deps, err := appbuilder.New(context.Background()).
		WithConfig().
		WithCatalog().
		Build()
	require.NoError(t, err)

	assert.Equal(t, 1, deps.Catalog.Medicines.Len())
	// Files missing from the directory fall back to the bundled data.
	assert.Equal(t, 5, deps.Catalog.Pharmacies.Len())
}

type catalogPath string

func (p catalogPath) GetPaths() *config.Paths {
	return &config.Paths{CatalogPath: string(p)}
}

func TestBuildCatalogue(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "catalog.db")
	empty := db.New(catalogPath(path))
	require.NoError(t, empty.Init(context.Background()))
	require.NoError(t, empty.Close())
	t.Setenv("MEDFIND_CATALOG_PATH", path)

	deps, err := appbuilder.New(context.Background()).
		WithConfig().
		WithDB().
		WithCatalog().
		Build()
	require.NoError(t, err)
	defer deps.Defer()

	require.NotNil(t, deps.DB)
	assert.Equal(t, 0, deps.Catalog.Medicines.Len())
}

func TestBuildErrors(t *testing.T) {
	t.Run("catalog without config", func(t *testing.T) {
		setupEnv(t)
		_, err := appbuilder.New(context.Background()).WithCatalog().Build()
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		setupEnv(t)
		t.Setenv("MEDFIND_PAGE_SIZE", "0")
		_, err := appbuilder.New(context.Background()).WithConfig().WithCatalog().Build()
		assert.Error(t, err)
	})

	t.Run("missing catalogue", func(t *testing.T) {
		dir := setupEnv(t)
		path := filepath.Join(dir, "typo.db")
		t.Setenv("MEDFIND_CATALOG_PATH", path)
		_, err := appbuilder.New(context.Background()).WithConfig().WithDB().WithCatalog().Build()
		assert.ErrorContains(t, err, "Error loading listings")
		assert.NoFileExists(t, path)
	})

	t.Run("missing dataset dir", func(t *testing.T) {
		dir := setupEnv(t)
		t.Setenv("MEDFIND_DATASET_DIR", filepath.Join(dir, "nope"))
		_, err := appbuilder.New(context.Background()).WithConfig().WithCatalog().Build()
		assert.Error(t, err)
	})
}
