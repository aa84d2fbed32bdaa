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

package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/constants"
)

type EnvConfig struct {
	k *koanf.Koanf
}

func NewEnvConfig() *EnvConfig {
	return &EnvConfig{
		k: koanf.New("."),
	}
}

func (c *EnvConfig) koanf() *koanf.Koanf {
	return c.k
}

func (c *EnvConfig) Load() error {
	allowedKeys := map[string]struct{}{
		"MEDFIND_LOG_LEVEL":    {},
		"MEDFIND_PAGE_SIZE":    {},
		"MEDFIND_PAGER_STYLE":  {},
		"MEDFIND_DATASET_DIR":  {},
		"MEDFIND_CATALOG_PATH": {},
		"MEDFIND_CACHE_SIZE":   {},
	}
	return c.k.Load(env.Provider(constants.EnvPrefix, ".", func(s string) string {
		if _, ok := allowedKeys[s]; !ok {
			return ""
		}
		withoutPrefix := strings.TrimPrefix(s, constants.EnvPrefix)
		return toCamelCase(strings.ToLower(withoutPrefix))
	}), nil)
}

func toCamelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > 0 {
			parts[i] = cases.Title(language.Und, cases.NoLower).String(parts[i])
		}
	}
	return strings.Join(parts, "")
}
