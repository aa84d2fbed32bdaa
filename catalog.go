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
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/db"
)

type catalogTarget string

func (t catalogTarget) GetPaths() *config.Paths {
	return &config.Paths{CatalogPath: string(t)}
}

func CatalogCmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: gotext.Get("Manage SQLite catalogues"),
		Subcommands: []*cli.Command{
			{
				Name:      "build",
				Usage:     gotext.Get("Write the current listings into a SQLite catalogue"),
				ArgsUsage: gotext.Get("<path>"),
				Description: `medfind catalog build ./catalog.db
MEDFIND_DATASET_DIR=./data medfind catalog build /var/lib/medfind/catalog.db`,
				Action: func(c *cli.Context) error {
					if err := cliutils.RequireArgs(c, 1); err != nil {
						return err
					}
					path := c.Args().First()

					if _, err := os.Stat(path); err == nil {
						overwrite, err := cliutils.YesNoPrompt(c.Context, gotext.Get("Catalogue %s exists, replace its contents?", path), c.Bool("interactive"), true)
						if err != nil {
							return cliutils.FormatCliExit(gotext.Get("Error prompting for confirmation"), err)
						}
						if !overwrite {
							return nil
						}
					} else if !errors.Is(err, os.ErrNotExist) {
						return cliutils.FormatCliExit(gotext.Get("Error checking catalogue path"), err)
					}

					// The catalogue being built is never the source.
					deps, err := appbuilder.
						New(c.Context).
						WithConfig().
						WithCatalog().
						Build()
					if err != nil {
						return err
					}
					defer deps.Defer()

					database := db.New(catalogTarget(path))
					if err := database.Init(c.Context); err != nil {
						return cliutils.FormatCliExit(gotext.Get("Error initializing catalogue"), err)
					}
					defer database.Close()

					recs := deps.Catalog.Records()
					if err := database.Import(c.Context, recs.Medicines, recs.Pharmacies, recs.BloodRequests); err != nil {
						return cliutils.FormatCliExit(gotext.Get("Error writing catalogue"), err)
					}

					fmt.Fprintln(c.App.Writer, gotext.Get(
						"Wrote %d medicines, %d pharmacies and %d blood requests to %s",
						len(recs.Medicines), len(recs.Pharmacies), len(recs.BloodRequests), path,
					))
					return nil
				},
			},
		},
	}
}
