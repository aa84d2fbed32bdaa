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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/constants"
)

var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
)

// Keys lists the settable config keys in display order.
var Keys = []string{"logLevel", "pageSize", "pagerStyle", "datasetDir", "catalogPath", "cacheSize"}

type SystemConfig struct {
	k    *koanf.Koanf
	path string
}

func NewSystemConfig() *SystemConfig {
	path := constants.SystemConfigPath
	if override := os.Getenv(constants.ConfigPathEnv); override != "" {
		path = override
	}
	return &SystemConfig{
		k:    koanf.New("."),
		path: path,
	}
}

func (c *SystemConfig) koanf() *koanf.Koanf {
	return c.k
}

func (c *SystemConfig) Path() string {
	return c.path
}

func (c *SystemConfig) Load() error {
	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return c.k.Load(file.Provider(c.path), ktoml.Parser())
}

func (c *SystemConfig) Save() (err error) {
	bytes, err := c.k.Marshal(ktoml.Parser())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := file.Write(bytes); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync config: %w", err)
	}

	return nil
}

// Get returns the value stored in the config file, not the merged value.
func (c *SystemConfig) Get(key string) (string, bool) {
	if !c.k.Exists(key) {
		return "", false
	}
	return c.k.String(key), true
}

// SetValue parses a command line value for key and stores it.
func (c *SystemConfig) SetValue(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "logLevel":
		switch value {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("%w: %s must be one of debug, info, warn or error", ErrInvalidValue, key)
		}
		c.SetLogLevel(value)
	case "pageSize", "cacheSize":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidValue, key)
		}
		if key == "pageSize" {
			c.SetPageSize(n)
		} else {
			c.SetCacheSize(n)
		}
	case "pagerStyle":
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
		}
		c.SetPagerStyle(value)
	case "datasetDir":
		c.SetDatasetDir(value)
	case "catalogPath":
		c.SetCatalogPath(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

func (c *SystemConfig) SetLogLevel(v string) {
	err := c.k.Set("logLevel", v)
	if err != nil {
		panic(err)
	}
}

func (c *SystemConfig) SetPageSize(v int) {
	err := c.k.Set("pageSize", v)
	if err != nil {
		panic(err)
	}
}

func (c *SystemConfig) SetPagerStyle(v string) {
	err := c.k.Set("pagerStyle", v)
	if err != nil {
		panic(err)
	}
}

func (c *SystemConfig) SetDatasetDir(v string) {
	err := c.k.Set("datasetDir", v)
	if err != nil {
		panic(err)
	}
}

func (c *SystemConfig) SetCatalogPath(v string) {
	err := c.k.Set("catalogPath", v)
	if err != nil {
		panic(err)
	}
}

func (c *SystemConfig) SetCacheSize(v int) {
	err := c.k.Set("cacheSize", v)
	if err != nil {
		panic(err)
	}
}
