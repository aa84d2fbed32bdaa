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

package cliutils

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Help templates with translatable headings. The named sub-templates
// ("helpNameTemplate", "visibleFlagTemplate", ...) are the ones registered
// by urfave/cli.

func GetAppCliTemplate() string {
	return fmt.Sprintf(`%s:
   {{template "helpNameTemplate" .}}

%s:
   {{if .UsageText}}{{wrap .UsageText 3}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[%s]{{end}}{{if .Commands}} %s [%s]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[%s...]{{end}}{{end}}{{if .Version}}{{if not .HideVersion}}

%s:
   {{.Version}}{{end}}{{end}}{{if .Description}}

%s:
   {{template "descriptionTemplate" .}}{{end}}{{if .VisibleCommands}}

%s:{{template "visibleCommandCategoryTemplate" .}}{{end}}{{if .VisibleFlagCategories}}

%s:{{template "visibleFlagCategoryTemplate" .}}{{else if .VisibleFlags}}

%s:{{template "visibleFlagTemplate" .}}{{end}}
`,
		gotext.Get("NAME"),
		gotext.Get("USAGE"),
		gotext.Get("global options"),
		gotext.Get("command"),
		gotext.Get("command options"),
		gotext.Get("arguments"),
		gotext.Get("VERSION"),
		gotext.Get("DESCRIPTION"),
		gotext.Get("COMMANDS"),
		gotext.Get("GLOBAL OPTIONS"),
		gotext.Get("GLOBAL OPTIONS"),
	)
}

func GetCommandHelpTemplate() string {
	return fmt.Sprintf(`%s:
   {{template "helpNameTemplate" .}}

%s:
   {{if .UsageText}}{{wrap .UsageText 3}}{{else}}{{.HelpName}}{{if .VisibleFlags}} [%s]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[%s...]{{end}}{{end}}{{if .Description}}

%s:
   {{template "descriptionTemplate" .}}{{end}}{{if .VisibleFlagCategories}}

%s:{{template "visibleFlagCategoryTemplate" .}}{{else if .VisibleFlags}}

%s:{{template "visibleFlagTemplate" .}}{{end}}
`,
		gotext.Get("NAME"),
		gotext.Get("USAGE"),
		gotext.Get("command options"),
		gotext.Get("arguments"),
		gotext.Get("EXAMPLES"),
		gotext.Get("OPTIONS"),
		gotext.Get("OPTIONS"),
	)
}
