// Package cache memoizes completed standardization runs. The engine is a
// pure function of its inputs, so a fingerprint of (table content, mode,
// columns, cutoff) fully identifies a result; repeated uploads of the same
// file with the same settings skip recomputation entirely.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ohana-solucoes/padroniza-backend/internal/service/standardize"
)

// Results is a fixed-size LRU cache of standardization results.
type Results struct {
	lru *lru.Cache[string, *standardize.Result]
}

// NewResults creates a result cache holding up to size entries.
func NewResults(size int) (*Results, error) {
	c, err := lru.New[string, *standardize.Result](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Results{lru: c}, nil
}

// Get returns the memoized result for key, if present.
func (r *Results) Get(key string) (*standardize.Result, bool) {
	return r.lru.Get(key)
}

// Add stores a completed result under key, evicting the least recently used
// entry when full.
func (r *Results) Add(key string, result *standardize.Result) {
	r.lru.Add(key, result)
}

// Len returns the number of cached results.
func (r *Results) Len() int {
	return r.lru.Len()
}
