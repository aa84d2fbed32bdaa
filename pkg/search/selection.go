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

package search

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/listing"
	"gitea.plemya-x.ru/Plemya-x/medfind/pkg/types"
)

// ParseFilterArgs splits "key=value" arguments into a map. Repeated keys
// are joined with commas so that set filters can be given one value at a
// time.
func ParseFilterArgs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", arg)
		}
		value = strings.TrimSpace(value)
		if prev, exists := out[key]; exists && prev != "" {
			value = prev + "," + value
		}
		out[key] = value
	}
	return out, nil
}

// DecodeSelection converts loosely typed filter input into the closed
// selection of a listing. Unknown keys are an error; malformed values are
// left for the filters to reject at query time.
func DecodeSelection(domain Domain, raw map[string]string) (listing.Selection, error) {
	switch domain {
	case DomainMedicines:
		var sel MedicineSelection
		if err := decode(raw, &sel); err != nil {
			return nil, err
		}
		return sel.Criteria(), nil
	case DomainPharmacies:
		var sel PharmacySelection
		if err := decode(raw, &sel); err != nil {
			return nil, err
		}
		return sel.Criteria(), nil
	case DomainBlood:
		var sel BloodSelection
		if err := decode(raw, &sel); err != nil {
			return nil, err
		}
		return sel.Criteria(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}

// decode fills one of the typed selections from raw key=value pairs.
// Keys are matched case-insensitively and unknown keys are an error.
func decode(raw map[string]string, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			lenientBoolHook,
			mapstructure.StringToSliceHookFunc(","),
		),
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid filter selection: %w", err)
	}
	return nil
}

// lenientBoolHook turns unparsable flag values into false so that the
// filter stays inactive instead of failing the whole query.
func lenientBoolHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		slog.Warn(gotext.Get("Ignoring invalid filter value"), "value", s, "err", err)
		return false, nil
	}
	return b, nil
}

// FilterKey describes one filter a listing understands, for rendering
// filter controls.
type FilterKey struct {
	Key    string
	Values []string
	Multi  bool
}

// FilterKeys lists the recognized filters of a listing with their values.
func FilterKeys(domain Domain) ([]FilterKey, error) {
	switch domain {
	case DomainMedicines:
		categories := make([]string, len(types.Categories))
		for i, c := range types.Categories {
			categories[i] = c.Key()
		}
		return []FilterKey{
			{Key: FilterCategory, Values: categories},
			{Key: FilterPriceRange, Values: slices.Clone(PriceRanges)},
			{Key: FilterAvailability, Values: slices.Clone(Availabilities)},
		}, nil
	case DomainPharmacies:
		flag := []string{"true", "false"}
		return []FilterKey{
			{Key: FilterOpenNow, Values: flag},
			{Key: FilterHasDelivery, Values: slices.Clone(flag)},
		}, nil
	case DomainBlood:
		bloodTypes := make([]string, len(types.BloodTypes))
		for i, bt := range types.BloodTypes {
			bloodTypes[i] = string(bt)
		}
		return []FilterKey{{Key: FilterBloodType, Values: bloodTypes, Multi: true}}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}

// SchemaKeys returns the sorted filter keys of a schema.
func SchemaKeys[T any](schema listing.Schema[T]) []string {
	keys := maps.Keys(schema.Filters)
	slices.Sort(keys)
	return keys
}
