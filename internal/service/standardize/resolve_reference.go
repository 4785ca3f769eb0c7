package standardize

import (
	"context"
	"log/slog"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
	"github.com/ohana-solucoes/padroniza-backend/internal/match"
)

// ResolveAgainstReference maps each distinct value of the dirty column onto
// the trusted reference column ("de-para"). The reference index is built once
// and frozen; unmatched dirty values pass through as their normalized form.
func (s *Service) ResolveAgainstReference(ctx context.Context, table domain.Table, dirtyColumn, referenceColumn string, opts Options) (*Result, error) {
	if err := validateCutoff(opts.Cutoff); err != nil {
		return nil, err
	}
	dirtyIdx, err := columnIndex(&table, "dirty_column", dirtyColumn)
	if err != nil {
		return nil, err
	}
	refIdx, err := columnIndex(&table, "reference_column", referenceColumn)
	if err != nil {
		return nil, err
	}
	if dirtyIdx == refIdx {
		return nil, domain.NewValidationError("reference_column",
			"dirty and reference columns must differ")
	}

	key := fingerprint("depara", opts.Cutoff, &table, dirtyColumn, referenceColumn)
	if cached, ok := s.cacheGet(key); ok {
		s.log.DebugContext(ctx, "de-para cache hit", slog.String("dirty_column", dirtyColumn))
		return cached, nil
	}

	references := domain.Distinct(table.ColumnValues(refIdx))
	index := match.BuildReferenceIndex(references, opts.Cutoff)

	dirtyValues := domain.Distinct(table.ColumnValues(dirtyIdx))
	mapping := make(map[string]string, len(dirtyValues))
	step := reportEvery(len(dirtyValues))
	for i, value := range dirtyValues {
		if opts.Progress != nil && i%step == 0 {
			opts.Progress(float64(i) / float64(len(dirtyValues)))
		}
		mapping[value] = index.Resolve(value)
	}
	if opts.Progress != nil {
		opts.Progress(1)
	}

	result := applyMapping(&table, dirtyIdx, mapping, DeParaColumn)

	s.log.InfoContext(ctx, "de-para completed",
		slog.String("dirty_column", dirtyColumn),
		slog.String("reference_column", referenceColumn),
		slog.Int("cutoff", opts.Cutoff),
		slog.Int("reference_entries", index.Size()),
		slog.Int("distinct_values", len(dirtyValues)),
		slog.Int("rows_total", result.Summary.TotalRows),
		slog.Int("rows_altered", result.Summary.AlteredRows),
	)

	s.cacheAdd(key, result)
	return result, nil
}
