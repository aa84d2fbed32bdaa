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
	appbuilder "gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils/app_builder"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/render"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/search"
)

func queryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "query",
		Aliases: []string{"q"},
		Usage:   gotext.Get("Case-insensitive text to search for"),
	}
}

func filterFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "filter",
		Usage: gotext.Get("Filter as key=value, may be repeated (see 'medfind filters')"),
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "page",
			Value: 1,
			Usage: gotext.Get("Page to show, clamped to the available pages"),
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: gotext.Get("Results per page (default from config)"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   gotext.Get("Format output using a Go template"),
		},
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: gotext.Get("Print the page as YAML"),
		},
	}
}

func listingFlags(flags ...cli.Flag) []cli.Flag {
	out := []cli.Flag{queryFlag()}
	out = append(out, flags...)
	out = append(out, filterFlag())
	return append(out, outputFlags()...)
}

// rawFilters merges --filter pairs with the dedicated flags. Dedicated
// flags win over a --filter entry for the same key.
func rawFilters(c *cli.Context, flagKeys map[string]string) (map[string]string, error) {
	raw, err := search.ParseFilterArgs(c.StringSlice("filter"))
	if err != nil {
		return nil, cliutils.FormatCliExitWithCode(gotext.Get("Error parsing filters"), err, 2)
	}
	for flag, key := range flagKeys {
		if !c.IsSet(flag) {
			continue
		}
		switch commandFlag(c, flag).(type) {
		case *cli.BoolFlag:
			raw[key] = fmt.Sprint(c.Bool(flag))
		case *cli.StringSliceFlag:
			raw[key] = strings.Join(c.StringSlice(flag), ",")
		default:
			raw[key] = c.String(flag)
		}
	}
	return raw, nil
}

func commandFlag(c *cli.Context, name string) cli.Flag {
	for _, f := range c.Command.Flags {
		for _, n := range f.Names() {
			if n == name {
				return f
			}
		}
	}
	return nil
}

func decodeFilters(domain search.Domain, raw map[string]string) (listing.Selection, error) {
	criteria, err := search.DecodeSelection(domain, raw)
	if err != nil {
		return nil, cliutils.FormatCliExitWithCode(gotext.Get("Error parsing filters"), err, 2)
	}
	return criteria, nil
}

func showListing[T listing.Record](
	c *cli.Context,
	deps *appbuilder.AppDeps,
	domain search.Domain,
	s *search.Searcher[T],
	opts *search.SearchOptions,
	card func(T) string,
) error {
	pageSize := c.Int("page-size")
	if pageSize < 1 {
		pageSize = deps.Cfg.PageSize()
	}
	page := s.SearchPage(opts, pageSize, c.Int("page"))
	w := c.App.Writer

	if page.Total == 0 {
		return render.WriteEmpty(w, domain)
	}

	if c.Bool("yaml") {
		if err := render.YAML(w, page.Items); err != nil {
			return cliutils.FormatCliExit(gotext.Get("Error encoding YAML"), err)
		}
		return nil
	}

	f, err := render.NewFormat(c.String("format"), card)
	if err != nil {
		return cliutils.FormatCliExit(gotext.Get("Error parsing format template"), err)
	}
	if err := f.Write(w, page.Items); err != nil {
		return cliutils.FormatCliExit(gotext.Get("Error executing template"), err)
	}
	if c.String("format") == "" {
		fmt.Fprintln(w, render.PageFooter(page))
	}
	return nil
}
