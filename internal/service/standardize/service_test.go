package standardize

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockResultCache struct {
	GetFunc func(key string) (*Result, bool)
	AddFunc func(key string, result *Result)

	gets int
	adds int
}

func (m *mockResultCache) Get(key string) (*Result, bool) {
	m.gets++
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	return nil, false
}

func (m *mockResultCache) Add(key string, result *Result) {
	m.adds++
	if m.AddFunc != nil {
		m.AddFunc(key, result)
	}
}

func newTestService(cache resultCache) *Service {
	return NewService(slog.Default(), cache)
}

func sampleTable() domain.Table {
	return domain.Table{
		Columns: []string{"Cliente", "Valor"},
		Rows: [][]string{
			{"Acme Corp.", "10"},
			{"Acme Corp.", "20"},
			{"123 - Acme Corp", "30"},
			{"124 - Other Co", "40"},
		},
	}
}

// ===========================================================================
// StandardizeColumn
// ===========================================================================

func TestStandardizeColumn_MergesVariants(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	res, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Equal(t, "Cliente_Padronizado", res.NewColumn)
	assert.Equal(t, "Status_Auditoria", res.StatusColumn)
	require.Equal(t, []string{"Cliente", "Valor", "Cliente_Padronizado", "Status_Auditoria"}, res.Table.Columns)

	// "Acme Corp." is the most frequent spelling, so it founds the group and
	// the identifier-prefixed variant folds into it.
	assert.Equal(t, "Acme Corp", res.Table.Rows[0][2])
	assert.Equal(t, "Acme Corp", res.Table.Rows[2][2])
	assert.Equal(t, "124 Other Co", res.Table.Rows[3][2])

	assert.Equal(t, string(domain.StatusAltered), res.Table.Rows[0][3])
	assert.Equal(t, string(domain.StatusAltered), res.Table.Rows[2][3])

	assert.Equal(t, 4, res.Summary.TotalRows)
	assert.Equal(t, 4, res.Summary.AlteredRows)
}

func TestStandardizeColumn_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	svc := newTestService(nil)
	_, err := svc.StandardizeColumn(context.Background(), table, "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Equal(t, []string{"Cliente", "Valor"}, table.Columns)
	assert.Len(t, table.Rows[0], 2)
}

func TestStandardizeColumn_UnknownColumn(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Nope", Options{Cutoff: 70})
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestStandardizeColumn_EmptyTable(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.StandardizeColumn(context.Background(), domain.Table{}, "a", Options{Cutoff: 70})
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
}

func TestStandardizeColumn_CutoffOutOfRange(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	for _, cutoff := range []int{-1, 101} {
		_, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: cutoff})
		assert.ErrorIs(t, err, domain.ErrValidation, "cutoff %d", cutoff)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "cutoff", verr.Errors[0].Field)
	}
}

func TestStandardizeColumn_Determinism(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	first, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)
	second, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Equal(t, first.Table, second.Table)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestStandardizeColumn_CutoffMonotonicity(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	loose, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 60})
	require.NoError(t, err)
	strict, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 100})
	require.NoError(t, err)

	assert.LessOrEqual(t, strict.Summary.AlteredRows, loose.Summary.AlteredRows)
}

func TestStandardizeColumn_SelfMappingIdempotence(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	first, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)

	second, err := svc.StandardizeColumn(context.Background(), first.Table, "Cliente_Padronizado", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Zero(t, second.Summary.AlteredRows)
}

func TestStandardizeColumn_ProgressObserver(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	var fractions []float64
	withProgress, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{
		Cutoff:   70,
		Progress: func(f float64) { fractions = append(fractions, f) },
	})
	require.NoError(t, err)

	require.NotEmpty(t, fractions)
	assert.Equal(t, float64(1), fractions[len(fractions)-1])
	for _, f := range fractions {
		assert.GreaterOrEqual(t, f, float64(0))
		assert.LessOrEqual(t, f, float64(1))
	}

	// The observer never changes the output.
	without, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)
	assert.Equal(t, without.Table, withProgress.Table)
}

func TestStandardizeColumn_EmptyCellsCluster(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"Nome"},
		Rows:    [][]string{{""}, {""}, {"Acme"}},
	}
	svc := newTestService(nil)
	res, err := svc.StandardizeColumn(context.Background(), table, "Nome", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Equal(t, "", res.Table.Rows[0][1])
	assert.Equal(t, string(domain.StatusOriginal), res.Table.Rows[0][2])
	assert.Equal(t, string(domain.StatusOriginal), res.Table.Rows[1][2])
}

// ===========================================================================
// Cache behavior
// ===========================================================================

func TestStandardizeColumn_CacheHitSkipsComputation(t *testing.T) {
	t.Parallel()

	memo := map[string]*Result{}
	cache := &mockResultCache{
		GetFunc: func(key string) (*Result, bool) {
			r, ok := memo[key]
			return r, ok
		},
		AddFunc: func(key string, result *Result) { memo[key] = result },
	}

	svc := newTestService(cache)
	first, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)
	require.Equal(t, 1, cache.adds)

	second, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.adds, "cached run must not be recomputed and re-stored")
}

func TestStandardizeColumn_CacheKeyIncludesCutoff(t *testing.T) {
	t.Parallel()

	memo := map[string]*Result{}
	cache := &mockResultCache{
		GetFunc: func(key string) (*Result, bool) {
			r, ok := memo[key]
			return r, ok
		},
		AddFunc: func(key string, result *Result) { memo[key] = result },
	}

	svc := newTestService(cache)
	_, err := svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 70})
	require.NoError(t, err)
	_, err = svc.StandardizeColumn(context.Background(), sampleTable(), "Cliente", Options{Cutoff: 90})
	require.NoError(t, err)

	assert.Equal(t, 2, cache.adds)
}

// ===========================================================================
// ResolveAgainstReference
// ===========================================================================

func deparaTable() domain.Table {
	return domain.Table{
		Columns: []string{"Entrada", "Oficial"},
		Rows: [][]string{
			{"acme corp.", "Acme Corp"},
			{"Acme  Corp -", "Banco do Brasil SA"},
			{"banco do brasil s.a.", ""},
			{"Fornecedor Misterioso XY", ""},
		},
	}
}

func TestResolveAgainstReference_Basic(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	res, err := svc.ResolveAgainstReference(context.Background(), deparaTable(), "Entrada", "Oficial", Options{Cutoff: 70})
	require.NoError(t, err)

	assert.Equal(t, "DePara_Resultado", res.NewColumn)
	require.Equal(t, []string{"Entrada", "Oficial", "DePara_Resultado", "Status_Auditoria"}, res.Table.Columns)

	assert.Equal(t, "Acme Corp", res.Table.Rows[0][2])
	assert.Equal(t, "Acme Corp", res.Table.Rows[1][2])
	assert.Equal(t, "Banco do Brasil SA", res.Table.Rows[2][2])
	// Unresolved values pass through normalized, untied to any reference.
	assert.Equal(t, "Fornecedor Misterioso XY", res.Table.Rows[3][2])
	assert.Equal(t, string(domain.StatusOriginal), res.Table.Rows[3][3])
}

func TestResolveAgainstReference_IdentifierVeto(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"Entrada", "Oficial"},
		Rows:    [][]string{{"2 - Official Name Ltd", "1 - Official Name Ltd"}},
	}
	svc := newTestService(nil)
	res, err := svc.ResolveAgainstReference(context.Background(), table, "Entrada", "Oficial", Options{Cutoff: 0})
	require.NoError(t, err)

	assert.Equal(t, "2 Official Name Ltd", res.Table.Rows[0][2])
}

func TestResolveAgainstReference_SameColumnRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.ResolveAgainstReference(context.Background(), deparaTable(), "Entrada", "Entrada", Options{Cutoff: 70})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResolveAgainstReference_UnknownColumns(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.ResolveAgainstReference(context.Background(), deparaTable(), "Nope", "Oficial", Options{Cutoff: 70})
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)

	_, err = svc.ResolveAgainstReference(context.Background(), deparaTable(), "Entrada", "Nope", Options{Cutoff: 70})
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}
