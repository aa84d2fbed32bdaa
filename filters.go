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
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func FiltersCmd() *cli.Command {
	return &cli.Command{
		Name:      "filters",
		Usage:     gotext.Get("List the filters a listing understands"),
		ArgsUsage: gotext.Get("<listing>"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: gotext.Get("Print the filters as YAML"),
			},
		},
		Action: func(c *cli.Context) error {
			if err := cliutils.RequireArgs(c, 1); err != nil {
				return err
			}
			domain, err := search.ParseDomain(c.Args().First())
			if err != nil {
				return cliutils.FormatCliExitWithCode(gotext.Get("Error parsing listing"), err, 2)
			}
			keys, err := search.FilterKeys(domain)
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error listing filters"), err)
			}

			w := c.App.Writer
			if c.Bool("yaml") {
				out := make(map[string][]string, len(keys))
				for _, k := range keys {
					out[k.Key] = k.Values
				}
				return render.YAML(w, out)
			}

			for _, k := range keys {
				line := fmt.Sprintf("%s: %s", k.Key, strings.Join(k.Values, ", "))
				if k.Multi {
					line += " " + gotext.Get("(any number)")
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}
