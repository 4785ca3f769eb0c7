package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohana-solucoes/padroniza-backend/internal/service/standardize"
)

func TestResults_GetAdd(t *testing.T) {
	t.Parallel()

	c, err := NewResults(4)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	want := &standardize.Result{NewColumn: "Cliente_Padronizado"}
	c.Add("k", want)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestResults_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, err := NewResults(2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		c.Add(fmt.Sprintf("k%d", i), &standardize.Result{})
	}

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("k0")
	assert.False(t, ok, "oldest entry should have been evicted")
}

func TestNewResults_RejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	_, err := NewResults(0)
	assert.Error(t, err)
}
