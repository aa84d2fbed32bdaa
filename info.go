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
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/dataset"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/pager"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func InfoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     gotext.Get("Print one record as YAML"),
		ArgsUsage: gotext.Get("<listing> <id>"),
		Description: `medfind info medicines 2
medfind info blood 1 --highlight`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "highlight",
				Value: isatty.IsTerminal(os.Stdout.Fd()),
				Usage: gotext.Get("Syntax highlight the output"),
			},
			&cli.BoolFlag{
				Name:  "pager",
				Usage: gotext.Get("Open the record in a pager"),
			},
		},
		BashComplete: cliutils.BashCompleteWithError(func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				for _, d := range search.Domains {
					fmt.Fprintln(c.App.Writer, d)
				}
			}
			return nil
		}),
		Action: func(c *cli.Context) error {
			if err := cliutils.RequireArgs(c, 2); err != nil {
				return err
			}
			domain, err := search.ParseDomain(c.Args().Get(0))
			if err != nil {
				return cliutils.FormatCliExitWithCode(gotext.Get("Error parsing listing"), err, 2)
			}
			id := c.Args().Get(1)

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

			record, ok := lookup(deps.Catalog, domain, id)
			if !ok {
				return cliutils.FormatCliExit(gotext.Get("No %s record with id %q", domain, id), nil)
			}

			buf := &bytes.Buffer{}
			if err := render.YAML(buf, record); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error encoding YAML"), err)
			}

			style := deps.Cfg.PagerStyle()
			if !pager.StyleExists(style) {
				slog.Warn(gotext.Get("Unknown pager style, using the default"), "style", style)
			}
			if c.Bool("pager") && c.Bool("interactive") {
				if err := cliutils.ShowYAML(buf.String(), fmt.Sprintf("%s/%s", domain, id), style); err != nil {
					return cliutils.FormatCliExit(gotext.Get("Error running pager"), err)
				}
				return nil
			}

			out := buf.String()
			if c.Bool("highlight") {
				out, err = pager.SyntaxHighlightYAML(buf, style)
				if err != nil {
					return cliutils.FormatCliExit(gotext.Get("Error highlighting output"), err)
				}
			}
			fmt.Fprint(c.App.Writer, out)
			return nil
		},
	}
}

func lookup(cat *dataset.Catalog, domain search.Domain, id string) (any, bool) {
	switch domain {
	case search.DomainMedicines:
		return cat.Medicines.Get(id)
	case search.DomainPharmacies:
		return cat.Pharmacies.Get(id)
	case search.DomainBlood:
		return cat.BloodRequests.Get(id)
	}
	return nil, false
}
