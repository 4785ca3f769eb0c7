// Command padroniza runs the standardization engine over a local spreadsheet
// without the HTTP server. It reads a CSV or XLSX file, applies one of the
// two modes, and writes the augmented workbook as XLSX.
//
// Modes (-mode):
//
//	padronizar (default) - deduplicate one column against itself
//	depara               - resolve a dirty column against a reference column
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ohana-solucoes/padroniza-backend/internal/service/standardize"
	"github.com/ohana-solucoes/padroniza-backend/internal/tabular"
)

func main() {
	var (
		input     = flag.String("input", "", "path to the input CSV/XLSX file (required)")
		output    = flag.String("output", "saida.xlsx", "path for the output XLSX file")
		mode      = flag.String("mode", "padronizar", "padronizar or depara")
		column    = flag.String("column", "", "column to standardize (both modes)")
		refCol    = flag.String("ref-column", "", "column with official values (depara mode)")
		sheet     = flag.String("sheet", "", "worksheet name for XLSX inputs with multiple sheets")
		cutoff    = flag.Int("cutoff", 70, "minimum similarity score (0-100)")
		verbosity = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	logger := newLogger(*verbosity)

	if *input == "" {
		logger.Error("missing required flag -input")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(context.Background(), logger, runParams{
		input:  *input,
		output: *output,
		mode:   *mode,
		column: *column,
		ref:    *refCol,
		sheet:  *sheet,
		cutoff: *cutoff,
	}); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type runParams struct {
	input  string
	output string
	mode   string
	column string
	ref    string
	sheet  string
	cutoff int
}

func run(ctx context.Context, logger *slog.Logger, p runParams) error {
	in, err := os.Open(p.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	table, err := tabular.Read(in, p.input, p.sheet)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	logger.Info("loaded table",
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)),
	)

	svc := standardize.NewService(logger, nil)
	opts := standardize.Options{
		Cutoff: p.cutoff,
		Progress: func(fraction float64) {
			logger.Info("progress", slog.String("done", fmt.Sprintf("%.0f%%", fraction*100)))
		},
	}

	var result *standardize.Result
	switch p.mode {
	case "padronizar":
		result, err = svc.StandardizeColumn(ctx, table, p.column, opts)
	case "depara":
		result, err = svc.ResolveAgainstReference(ctx, table, p.column, p.ref, opts)
	default:
		return fmt.Errorf("unknown mode %q (want padronizar or depara)", p.mode)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(p.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := tabular.WriteXLSX(out, &result.Table); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("done",
		slog.String("output", p.output),
		slog.Int("rows_total", result.Summary.TotalRows),
		slog.Int("rows_altered", result.Summary.AlteredRows),
		slog.String("alteration_rate", fmt.Sprintf("%.1f%%", result.Summary.AlterationRate())),
	)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
