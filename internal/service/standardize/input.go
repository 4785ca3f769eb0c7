package standardize

import (
	"fmt"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

// Options tune a standardization run.
type Options struct {
	// Cutoff is the minimum similarity score (0-100) for fuzzy candidates.
	Cutoff int
	// Progress, when set, receives a completion fraction in [0,1] at roughly
	// 5% steps of distinct-value processing. Advisory only: its presence
	// never changes the output.
	Progress func(fraction float64)
}

func validateCutoff(cutoff int) error {
	if cutoff < 0 || cutoff > 100 {
		return domain.NewValidationError("cutoff",
			fmt.Sprintf("must be between 0 and 100 (got %d)", cutoff))
	}
	return nil
}

func columnIndex(table *domain.Table, field, name string) (int, error) {
	if len(table.Columns) == 0 {
		return 0, domain.ErrEmptyTable
	}
	if name == "" {
		return 0, domain.NewValidationError(field, "column name is required")
	}
	idx, ok := table.ColumnIndex(name)
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", field, name, domain.ErrColumnNotFound)
	}
	return idx, nil
}
