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

package listing

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/slices"
)

// CachedEngine memoizes query results for one store. Queries are
// deterministic over an immutable snapshot, so a cached result is always
// identical to a fresh one.
type CachedEngine[T Record] struct {
	engine *Engine[T]
	store  *Store[T]
	cache  *lru.Cache[string, Result[T]]
}

func NewCachedEngine[T Record](engine *Engine[T], store *Store[T], size int) (*CachedEngine[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	cache, err := lru.New[string, Result[T]](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}
	return &CachedEngine[T]{engine: engine, store: store, cache: cache}, nil
}

func (c *CachedEngine[T]) Query(text string, sel Selection) Result[T] {
	key := cacheKey(text, sel)
	if res, ok := c.cache.Get(key); ok {
		return cloneResult(res)
	}
	res := c.engine.Query(c.store, text, sel)
	c.cache.Add(key, res)
	return cloneResult(res)
}

func (c *CachedEngine[T]) Len() int {
	return c.cache.Len()
}

func cloneResult[T any](r Result[T]) Result[T] {
	return Result[T]{Items: slices.Clone(r.Items), Count: r.Count}
}

// cacheKey normalizes a query so that equivalent queries share an entry:
// the text is trimmed and folded, criteria are sorted by key and values.
func cacheKey(text string, sel Selection) string {
	parts := make([]string, 0, len(sel))
	for _, c := range sel {
		values := slices.Clone(c.Values)
		slices.Sort(values)
		parts = append(parts, c.Key+"="+strings.Join(values, ","))
	}
	slices.Sort(parts)
	return Fold(strings.TrimSpace(text)) + "\x00" + strings.Join(parts, "\x00")
}
