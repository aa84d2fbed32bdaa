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
	"context"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/medfind/internal/pager"
)

func YesNoPrompt(ctx context.Context, msg string, interactive, def bool) (bool, error) {
	if !interactive {
		return def, nil
	}
	var answer bool
	err := survey.AskOne(
		&survey.Confirm{
			Message: msg,
			Default: def,
		},
		&answer,
	)
	return answer, err
}

// ChooseBloodTypes asks for a set of blood types. Without a terminal the
// preselected set is returned unchanged.
func ChooseBloodTypes(ctx context.Context, options, preselected []string, interactive bool) ([]string, error) {
	if !interactive {
		return preselected, nil
	}

	prompt := &survey.MultiSelect{
		Options:  options,
		Default:  preselected,
		Message:  gotext.Get("Choose blood types to show (none for all)"),
		PageSize: len(options),
	}

	var choices []int
	if err := survey.AskOne(prompt, &choices); err != nil {
		return nil, err
	}

	out := make([]string, len(choices))
	for i, choiceIndex := range choices {
		out[i] = options[choiceIndex]
	}
	return out, nil
}

// ShowYAML highlights content and opens it in the pager.
func ShowYAML(content, name, style string) error {
	str, err := pager.SyntaxHighlightYAML(strings.NewReader(content), style)
	if err != nil {
		return err
	}
	return pager.New(name, str).Run()
}
