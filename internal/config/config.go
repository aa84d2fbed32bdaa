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
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel    string `koanf:"logLevel" yaml:"logLevel" validate:"oneof=debug info warn error"`
	PageSize    int    `koanf:"pageSize" yaml:"pageSize" validate:"gte=1"`
	PagerStyle  string `koanf:"pagerStyle" yaml:"pagerStyle" validate:"required"`
	DatasetDir  string `koanf:"datasetDir" yaml:"datasetDir"`
	CatalogPath string `koanf:"catalogPath" yaml:"catalogPath"`
	CacheSize   int    `koanf:"cacheSize" yaml:"cacheSize" validate:"gte=1"`
}

var defaultConfig = map[string]any{
	"logLevel":    "info",
	"pageSize":    10,
	"pagerStyle":  "native",
	"datasetDir":  "",
	"catalogPath": "",
	"cacheSize":   128,
}

var validate = validator.New()

type MedfindConfig struct {
	cfg   *Config
	paths *Paths

	System *SystemConfig
	env    *EnvConfig
}

func New() *MedfindConfig {
	return &MedfindConfig{
		cfg:    &Config{},
		paths:  &Paths{},
		System: NewSystemConfig(),
		env:    NewEnvConfig(),
	}
}

func defaultConfigKoanf() *koanf.Koanf {
	k := koanf.New(".")
	for key, value := range defaultConfig {
		if err := k.Set(key, value); err != nil {
			panic(err)
		}
	}
	return k
}

// Load merges defaults, the system config file and the environment, in
// that order.
func (c *MedfindConfig) Load() error {
	if err := c.System.Load(); err != nil {
		return fmt.Errorf("failed to load system config: %w", err)
	}
	if err := c.env.Load(); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}

	merged := defaultConfigKoanf()
	if err := merged.Merge(c.System.koanf()); err != nil {
		return fmt.Errorf("failed to merge system config: %w", err)
	}
	if err := merged.Merge(c.env.koanf()); err != nil {
		return fmt.Errorf("failed to merge environment config: %w", err)
	}

	cfg := &Config{}
	if err := merged.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			slog.Debug(gotext.Get("Config validation failed"), "fields", len(verrs))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	c.cfg = cfg
	c.paths = &Paths{
		ConfigPath:  c.System.Path(),
		DatasetDir:  cfg.DatasetDir,
		CatalogPath: cfg.CatalogPath,
	}
	return nil
}

func (c *MedfindConfig) ToYAML() (string, error) {
	data, err := yaml.Marshal(c.cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *MedfindConfig) LogLevel() string    { return c.cfg.LogLevel }
func (c *MedfindConfig) PageSize() int       { return c.cfg.PageSize }
func (c *MedfindConfig) PagerStyle() string  { return c.cfg.PagerStyle }
func (c *MedfindConfig) DatasetDir() string  { return c.cfg.DatasetDir }
func (c *MedfindConfig) CatalogPath() string { return c.cfg.CatalogPath }
func (c *MedfindConfig) CacheSize() int      { return c.cfg.CacheSize }

func (c *MedfindConfig) GetPaths() *Paths {
	return c.paths
}
