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

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/browse"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func BrowseCmd() *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     gotext.Get("Browse a listing interactively"),
		ArgsUsage: gotext.Get("<listing>"),
		Action: func(c *cli.Context) error {
			if err := cliutils.RequireArgs(c, 1); err != nil {
				return err
			}
			if !c.Bool("interactive") {
				return cliutils.FormatCliExit(gotext.Get("browse needs an interactive terminal"), nil)
			}
			domain, err := search.ParseDomain(c.Args().First())
			if err != nil {
				return cliutils.FormatCliExitWithCode(gotext.Get("Error parsing listing"), err, 2)
			}

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

			size, pageSize := deps.Cfg.CacheSize(), deps.Cfg.PageSize()
			switch domain {
			case search.DomainMedicines:
				err = runBrowser(domain, deps.Catalog.Medicines, search.MedicineSchema, render.MedicineCard, size, pageSize)
			case search.DomainPharmacies:
				err = runBrowser(domain, deps.Catalog.Pharmacies, search.PharmacySchema, render.PharmacyCard, size, pageSize)
			case search.DomainBlood:
				err = runBrowser(domain, deps.Catalog.BloodRequests, search.BloodSchema, render.BloodRequestCard, size, pageSize)
			}
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error running browser"), err)
			}
			return nil
		},
	}
}

func runBrowser[T listing.Record](
	domain search.Domain,
	store *listing.Store[T],
	schema listing.Schema[T],
	card func(T) string,
	cacheSize, pageSize int,
) error {
	cached, err := listing.NewCachedEngine(listing.NewEngine(schema), store, cacheSize)
	if err != nil {
		return err
	}
	m, err := browse.New(domain, cached, card, pageSize)
	if err != nil {
		return err
	}
	return browse.Run(m)
}
