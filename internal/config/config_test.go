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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/constants"
)

func withConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "medfind.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	t.Setenv(constants.ConfigPathEnv, path)
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := withConfigFile(t, "")

	cfg := config.New()
	require.NoError(t, cfg.Load())

	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, 10, cfg.PageSize())
	assert.Equal(t, "native", cfg.PagerStyle())
	assert.Equal(t, 128, cfg.CacheSize())
	assert.Empty(t, cfg.DatasetDir())
	assert.Empty(t, cfg.CatalogPath())
	assert.Equal(t, path, cfg.GetPaths().ConfigPath)
}

func TestLoadLayers(t *testing.T) {
	withConfigFile(t, `
pageSize = 5
pagerStyle = "monokai"
datasetDir = "/srv/medfind"
`)
	t.Setenv("MEDFIND_PAGE_SIZE", "20")
	t.Setenv("MEDFIND_CATALOG_PATH", "/var/lib/medfind/catalog.db")
	t.Setenv("MEDFIND_UNRELATED", "ignored")

	cfg := config.New()
	require.NoError(t, cfg.Load())

	assert.Equal(t, 20, cfg.PageSize(), "environment wins over the file")
	assert.Equal(t, "monokai", cfg.PagerStyle())
	assert.Equal(t, "/srv/medfind", cfg.GetPaths().DatasetDir)
	assert.Equal(t, "/var/lib/medfind/catalog.db", cfg.GetPaths().CatalogPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	withConfigFile(t, "pageSize = 0\n")

	err := config.New().Load()
	assert.Error(t, err)
}

func TestSetValueAndSave(t *testing.T) {
	path := withConfigFile(t, "")

	sys := config.NewSystemConfig()
	require.NoError(t, sys.Load())
	require.NoError(t, sys.SetValue("pageSize", "25"))
	require.NoError(t, sys.SetValue("logLevel", "debug"))
	require.NoError(t, sys.Save())
	assert.FileExists(t, path)

	cfg := config.New()
	require.NoError(t, cfg.Load())
	assert.Equal(t, 25, cfg.PageSize())
	assert.Equal(t, "debug", cfg.LogLevel())

	v, ok := cfg.System.Get("pageSize")
	assert.True(t, ok)
	assert.Equal(t, "25", v)

	_, ok = cfg.System.Get("cacheSize")
	assert.False(t, ok, "unset keys are not reported from the file")
}

func TestSetValueErrors(t *testing.T) {
	withConfigFile(t, "")
	sys := config.NewSystemConfig()

	for _, tc := range []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "unknown key", key: "theme", value: "dark", wantErr: config.ErrUnknownKey},
		{name: "bad level", key: "logLevel", value: "loud", wantErr: config.ErrInvalidValue},
		{name: "zero page size", key: "pageSize", value: "0", wantErr: config.ErrInvalidValue},
		{name: "non numeric cache size", key: "cacheSize", value: "lots", wantErr: config.ErrInvalidValue},
		{name: "empty style", key: "pagerStyle", value: " ", wantErr: config.ErrInvalidValue},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, sys.SetValue(tc.key, tc.value), tc.wantErr)
		})
	}
}

func TestToYAML(t *testing.T) {
	withConfigFile(t, "")

	cfg := config.New()
	require.NoError(t, cfg.Load())

	out, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, out, "pageSize: 10")
	assert.Contains(t, out, "pagerStyle: native")
}
