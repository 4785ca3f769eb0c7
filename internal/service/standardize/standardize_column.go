package standardize

import (
	"context"
	"log/slog"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
	"github.com/ohana-solucoes/padroniza-backend/internal/match"
)

// StandardizeColumn self-clusters one column: its distinct values, processed
// in descending frequency order, are merged into canonical groups and the
// table gets a "<column>_Padronizado" column plus the audit column.
func (s *Service) StandardizeColumn(ctx context.Context, table domain.Table, column string, opts Options) (*Result, error) {
	if err := validateCutoff(opts.Cutoff); err != nil {
		return nil, err
	}
	idx, err := columnIndex(&table, "column", column)
	if err != nil {
		return nil, err
	}

	key := fingerprint("padronizar", opts.Cutoff, &table, column)
	if cached, ok := s.cacheGet(key); ok {
		s.log.DebugContext(ctx, "standardize cache hit", slog.String("column", column))
		return cached, nil
	}

	values := table.ColumnValues(idx)
	distinct := domain.DistinctByFrequency(values)

	clusterer := match.NewClusterer(opts.Cutoff)
	mapping := make(map[string]string, len(distinct))
	step := reportEvery(len(distinct))
	for i, value := range distinct {
		if opts.Progress != nil && i%step == 0 {
			opts.Progress(float64(i) / float64(len(distinct)))
		}
		mapping[value] = clusterer.Assign(value)
	}
	if opts.Progress != nil {
		opts.Progress(1)
	}

	result := applyMapping(&table, idx, mapping, column+"_Padronizado")

	s.log.InfoContext(ctx, "standardize column completed",
		slog.String("column", column),
		slog.Int("cutoff", opts.Cutoff),
		slog.Int("distinct_values", len(distinct)),
		slog.Int("groups", clusterer.Size()),
		slog.Int("rows_total", result.Summary.TotalRows),
		slog.Int("rows_altered", result.Summary.AlteredRows),
	)

	s.cacheAdd(key, result)
	return result, nil
}
