// Package standardize orchestrates the two standardization modes over
// in-memory tables: single-column clustering and two-column reference
// resolution ("de-para").
package standardize

import (
	"log/slog"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// resultCache memoizes completed runs keyed by a table/args fingerprint.
// The engine itself is a pure function; caching lives outside it.
type resultCache interface {
	Get(key string) (*Result, bool)
	Add(key string, result *Result)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the standardization business logic.
type Service struct {
	log   *slog.Logger
	cache resultCache
}

// NewService creates a standardization service. cache may be nil to disable
// result memoization.
func NewService(logger *slog.Logger, cache resultCache) *Service {
	return &Service{
		log:   logger.With("service", "standardize"),
		cache: cache,
	}
}

func (s *Service) cacheGet(key string) (*Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Service) cacheAdd(key string, result *Result) {
	if s.cache != nil {
		s.cache.Add(key, result)
	}
}
