package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     Format
	}{
		{"clientes.csv", FormatCSV},
		{"CLIENTES.CSV", FormatCSV},
		{"planilha.xlsx", FormatXLSX},
		{"planilha.xls", FormatXLSX},
		{"dados.txt", FormatUnknown},
		{"semextensao", FormatUnknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	in := "Cliente,Valor\nAcme Corp.,10\n\"Other, Co\",20\n"
	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Cliente", "Valor"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Acme Corp.", "10"}, table.Rows[0])
	assert.Equal(t, []string{"Other, Co", "20"}, table.Rows[1])
}

func TestReadCSV_PadsShortRows(t *testing.T) {
	t.Parallel()

	table, err := ReadCSV(strings.NewReader("a,b,c\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "", ""}, table.Rows[0])
}

func TestReadCSV_RejectsOverlongRows(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestReadCSV_EmptyInput(t *testing.T) {
	t.Parallel()

	table, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestRead_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader("x"), "dados.parquet", "")
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestXLSX_RoundTrip(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"Cliente", "Cliente_Padronizado", "Status_Auditoria"},
		Rows: [][]string{
			{"Acme Corp.", "Acme Corp", "ALTERADO"},
			{"", "", "ORIGINAL"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, &table))

	got, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)

	assert.Equal(t, table.Columns, got.Columns)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, table.Rows[0], got.Rows[0])
	assert.Equal(t, table.Rows[1], got.Rows[1])
}

func TestReadXLSX_SingleSheetNeedsNoSelection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, &domain.Table{Columns: []string{"a"}}))

	sheets, err := SheetNames(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	_, err = ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	assert.NoError(t, err)
}

func TestReadXLSX_UnknownSheet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, &domain.Table{Columns: []string{"a"}}))

	_, err := ReadXLSX(bytes.NewReader(buf.Bytes()), "Inexistente")
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestReadXLSX_GarbageBytes(t *testing.T) {
	t.Parallel()

	_, err := ReadXLSX(strings.NewReader("this is not a zip archive"), "")
	assert.ErrorIs(t, err, domain.ErrEncoding)
}
