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

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
)

func ConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: gotext.Get("Manage config"),
		Subcommands: []*cli.Command{
			ShowCmd(),
			SetConfig(),
			GetConfig(),
		},
	}
}

func completeConfigKeys(c *cli.Context) error {
	if c.Args().Len() == 0 {
		for _, key := range config.Keys {
			fmt.Fprintln(c.App.Writer, key)
		}
	}
	return nil
}

func ShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: gotext.Get("Show config"),
		Action: func(c *cli.Context) error {
			deps, err := appbuilder.
				New(c.Context).
				WithConfig().
				Build()
			if err != nil {
				return err
			}
			defer deps.Defer()

			content, err := deps.Cfg.ToYAML()
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("failed to serialize config"), err)
			}
			fmt.Fprint(c.App.Writer, content)
			return nil
		},
	}
}

func SetConfig() *cli.Command {
	return &cli.Command{
		Name:         "set",
		Usage:        gotext.Get("Set config value"),
		ArgsUsage:    gotext.Get("<key> <value>"),
		BashComplete: cliutils.BashCompleteWithError(completeConfigKeys),
		Action: func(c *cli.Context) error {
			if err := cliutils.RequireArgs(c, 2); err != nil {
				return err
			}

			key := c.Args().Get(0)
			value := c.Args().Get(1)

			deps, err := appbuilder.
				New(c.Context).
				WithConfig().
				Build()
			if err != nil {
				return err
			}
			defer deps.Defer()

			if err := deps.Cfg.System.SetValue(key, value); err != nil {
				code := 1
				if errors.Is(err, config.ErrUnknownKey) {
					code = 2
				}
				return cliutils.FormatCliExitWithCode(gotext.Get("Error setting %s", key), err, code)
			}

			if err := deps.Cfg.System.Save(); err != nil {
				return cliutils.FormatCliExit(gotext.Get("failed to save config"), err)
			}

			fmt.Fprintln(c.App.Writer, gotext.Get("Successfully set %s = %s", key, value))
			return nil
		},
	}
}

func GetConfig() *cli.Command {
	return &cli.Command{
		Name:         "get",
		Usage:        gotext.Get("Get config value"),
		ArgsUsage:    gotext.Get("<key>"),
		BashComplete: cliutils.BashCompleteWithError(completeConfigKeys),
		Action: func(c *cli.Context) error {
			deps, err := appbuilder.
				New(c.Context).
				WithConfig().
				Build()
			if err != nil {
				return err
			}
			defer deps.Defer()

			if c.Args().Len() == 0 {
				content, err := deps.Cfg.ToYAML()
				if err != nil {
					return cliutils.FormatCliExit(gotext.Get("failed to serialize config"), err)
				}
				fmt.Fprint(c.App.Writer, content)
				return nil
			}

			key := c.Args().Get(0)
			cfg := deps.Cfg

			var value string
			switch key {
			case "logLevel":
				value = cfg.LogLevel()
			case "pageSize":
				value = strconv.Itoa(cfg.PageSize())
			case "pagerStyle":
				value = cfg.PagerStyle()
			case "datasetDir":
				value = cfg.DatasetDir()
			case "catalogPath":
				value = cfg.CatalogPath()
			case "cacheSize":
				value = strconv.Itoa(cfg.CacheSize())
			default:
				return cliutils.FormatCliExitWithCode(gotext.Get("unknown config key: %s", key), nil, 2)
			}
			fmt.Fprintln(c.App.Writer, value)
			return nil
		},
	}
}
