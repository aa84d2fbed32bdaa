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
	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

func BloodCmd() *cli.Command {
	return &cli.Command{
		Name:    "blood",
		Usage:   gotext.Get("List blood donation requests"),
		Aliases: []string{"bl"},
		Description: `medfind blood -b A- -b B+
medfind bl --pick`,
		Flags: listingFlags(
			&cli.StringSliceFlag{
				Name:    "blood-type",
				Aliases: []string{"b"},
				Usage:   gotext.Get("Blood type to show, may be repeated (none for all)"),
			},
			&cli.BoolFlag{
				Name:  "pick",
				Usage: gotext.Get("Choose blood types interactively"),
			},
		),
		Action: func(c *cli.Context) error {
			deps, err := appbuilder.
				New(c.Context).
				WithConfig().
				WithDB().
				WithCatalog().
				Build()
			if err != nil {
				return err
			}
			defer deps.Defer()

			raw, err := rawFilters(c, map[string]string{
				"blood-type": search.FilterBloodType,
			})
			if err != nil {
				return err
			}
			criteria, err := decodeFilters(search.DomainBlood, raw)
			if err != nil {
				return err
			}

			if c.Bool("pick") {
				options := make([]string, len(types.BloodTypes))
				for i, bt := range types.BloodTypes {
					options[i] = string(bt)
				}
				picked, err := cliutils.ChooseBloodTypes(c.Context, options, criteria.Values(search.FilterBloodType), c.Bool("interactive"))
				if err != nil {
					return cliutils.FormatCliExit(gotext.Get("Error prompting for blood types"), err)
				}
				criteria = search.BloodSelection{BloodTypes: picked}.Criteria()
			}

			s := search.New(deps.Catalog.BloodRequests, search.BloodSchema)
			opts := search.NewOptions(c.String("query"), criteria)

			return showListing(c, deps, search.DomainBlood, s, opts, render.BloodRequestCard)
		},
	}
}
