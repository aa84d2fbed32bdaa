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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/config"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/constants"
	"gitea.plemya-x.ru/Plemya-x/medfind/internal/logger"
)

func VersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: gotext.Get("Print the current medfind version and exit"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, config.Version)
			return nil
		},
	}
}

func GetApp() *cli.App {
	return &cli.App{
		Name:  "medfind",
		Usage: gotext.Get("Search medicines, pharmacies and blood donation requests"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Value:   isatty.IsTerminal(os.Stdin.Fd()),
				Usage:   gotext.Get("Enable interactive questions and prompts"),
			},
		},
		Commands: []*cli.Command{
			MedicinesCmd(),
			PharmaciesCmd(),
			BloodCmd(),
			InfoCmd(),
			FiltersCmd(),
			BrowseCmd(),
			CatalogCmd(),
			ConfigCmd(),
			VersionCmd(),
		},
		EnableBashCompletion: true,

		// Filter values such as bloodType=A+,B- carry their own commas.
		DisableSliceFlagSeparator: true,
		ExitErrHandler: func(cCtx *cli.Context, err error) {
			cliutils.HandleExitCoder(err)
		},
	}
}

func main() {
	logger.SetupDefault()
	if level := os.Getenv(constants.EnvPrefix + "LOG_LEVEL"); level != "" {
		if err := logger.SetLevel(level); err != nil {
			slog.Warn(gotext.Get("Invalid log level"), "level", level, "err", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli.AppHelpTemplate = cliutils.GetAppCliTemplate()
	cli.CommandHelpTemplate = cliutils.GetCommandHelpTemplate()
	cli.HelpFlag.(*cli.BoolFlag).Usage = gotext.Get("Show help")

	if err := GetApp().RunContext(ctx, os.Args); err != nil {
		slog.Error(gotext.Get("Error while running app"), "err", err)
		os.Exit(1)
	}
}
