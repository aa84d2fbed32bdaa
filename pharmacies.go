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

	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func PharmaciesCmd() *cli.Command {
	return &cli.Command{
		Name:    "pharmacies",
		Usage:   gotext.Get("Search pharmacies"),
		Aliases: []string{"ph"},
		Description: `medfind pharmacies -q "main street"
medfind ph --open-now --delivery`,
		Flags: listingFlags(
			&cli.BoolFlag{
				Name:  "open-now",
				Usage: gotext.Get("Only pharmacies that are open now"),
			},
			&cli.BoolFlag{
				Name:  "delivery",
				Usage: gotext.Get("Only pharmacies that deliver"),
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
				"open-now": search.FilterOpenNow,
				"delivery": search.FilterHasDelivery,
			})
			if err != nil {
				return err
			}
			criteria, err := decodeFilters(search.DomainPharmacies, raw)
			if err != nil {
				return err
			}

			s := search.New(deps.Catalog.Pharmacies, search.PharmacySchema)
			opts := search.NewOptions(c.String("query"), criteria)

			return showListing(c, deps, search.DomainPharmacies, s, opts, render.PharmacyCard)
		},
	}
}
