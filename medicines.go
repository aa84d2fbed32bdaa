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
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func MedicinesCmd() *cli.Command {
	return &cli.Command{
		Name:    "medicines",
		Usage:   gotext.Get("Search medicines"),
		Aliases: []string{"med", "m"},
		Description: `medfind medicines -q amox
medfind med --category antibiotics --price 10-25 --availability in-stock
medfind m --filter priceRange=100+ --format '{{.Name}} {{.Price}}'`,
		Flags: listingFlags(
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   gotext.Get("Category (%s)", strings.Join(categoryKeys(), ", ")),
			},
			&cli.StringFlag{
				Name:    "price",
				Aliases: []string{"p"},
				Usage:   gotext.Get("Price range as min-max or min+, e.g. 10-25"),
			},
			&cli.StringFlag{
				Name:    "availability",
				Aliases: []string{"a"},
				Usage:   gotext.Get("Availability (%s)", strings.Join(search.Availabilities, ", ")),
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
				"category":     search.FilterCategory,
				"price":        search.FilterPriceRange,
				"availability": search.FilterAvailability,
			})
			if err != nil {
				return err
			}
			criteria, err := decodeFilters(search.DomainMedicines, raw)
			if err != nil {
				return err
			}

			s := search.New(deps.Catalog.Medicines, search.MedicineSchema)
			opts := search.NewOptions(c.String("query"), criteria)

			return showListing(c, deps, search.DomainMedicines, s, opts, render.MedicineCard)
		},
	}
}

func categoryKeys() []string {
	keys, _ := search.FilterKeys(search.DomainMedicines)
	for _, k := range keys {
		if k.Key == search.FilterCategory {
			return k.Values
		}
	}
	return nil
}
