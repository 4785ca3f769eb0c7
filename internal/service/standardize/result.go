package standardize

import "github.com/ohana-solucoes/padroniza-backend/internal/domain"

// StatusColumn is the audit column appended by both modes.
const StatusColumn = "Status_Auditoria"

// DeParaColumn is the fixed output column of two-column resolution.
const DeParaColumn = "DePara_Resultado"

// Result is a completed standardization run: the input table with the
// canonical and audit columns appended, plus aggregate statistics.
type Result struct {
	Table        domain.Table
	NewColumn    string
	StatusColumn string
	Summary      domain.AuditSummary
}

// applyMapping clones the table and broadcasts the value→canonical mapping
// onto every row of the source column, appending the canonical and status
// columns. Row order is preserved; rows sharing a raw value share its
// canonical form.
func applyMapping(table *domain.Table, sourceIdx int, mapping map[string]string, newColumn string) *Result {
	out := table.Clone()

	canonical := make([]string, len(out.Rows))
	status := make([]string, len(out.Rows))
	altered := 0
	for i := range out.Rows {
		raw := out.Cell(i, sourceIdx)
		canonical[i] = mapping[raw]
		st := domain.StatusFor(raw, canonical[i])
		status[i] = string(st)
		if st == domain.StatusAltered {
			altered++
		}
	}

	out.AppendColumn(newColumn, canonical)
	out.AppendColumn(StatusColumn, status)

	return &Result{
		Table:        out,
		NewColumn:    newColumn,
		StatusColumn: StatusColumn,
		Summary: domain.AuditSummary{
			TotalRows:   len(out.Rows),
			AlteredRows: altered,
		},
	}
}

// reportEvery returns the distinct-value interval between progress callbacks,
// one checkpoint per ~5% of the total.
func reportEvery(total int) int {
	step := total / 20
	if step < 1 {
		step = 1
	}
	return step
}
