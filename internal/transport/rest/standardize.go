package rest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/ohana-solucoes/padroniza-backend/internal/config"
	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
	"github.com/ohana-solucoes/padroniza-backend/internal/service/standardize"
	"github.com/ohana-solucoes/padroniza-backend/internal/tabular"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// standardizeService defines the engine operations the handler consumes.
type standardizeService interface {
	StandardizeColumn(ctx context.Context, table domain.Table, column string, opts standardize.Options) (*standardize.Result, error)
	ResolveAgainstReference(ctx context.Context, table domain.Table, dirtyColumn, referenceColumn string, opts standardize.Options) (*standardize.Result, error)
}

// Handler serves the standardization endpoints.
type Handler struct {
	log *slog.Logger
	svc standardizeService
	cfg config.EngineConfig
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, svc standardizeService, cfg config.EngineConfig) *Handler {
	return &Handler{
		log: logger.With("handler", "standardize"),
		svc: svc,
		cfg: cfg,
	}
}

// NewMux routes the API.
func NewMux(h *Handler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("POST /api/v1/sheets", h.Sheets)
	mux.HandleFunc("POST /api/v1/standardize", h.Standardize)
	mux.HandleFunc("POST /api/v1/depara", h.DePara)
	return mux
}

// Sheets lists the worksheet names of an uploaded workbook, so a client can
// ask the user which one to process before the real request.
func (h *Handler) Sheets(w http.ResponseWriter, r *http.Request) {
	file, header, err := h.formFile(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	if tabular.Detect(header.Filename) == tabular.FormatCSV {
		writeJSON(w, http.StatusOK, map[string][]string{"sheets": nil})
		return
	}

	sheets, err := tabular.SheetNames(file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"sheets": sheets})
}

// Standardize runs single-column standardization over an uploaded
// spreadsheet and streams back the augmented workbook.
func (h *Handler) Standardize(w http.ResponseWriter, r *http.Request) {
	table, opts, err := h.parseUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	column := r.FormValue("column")
	result, err := h.svc.StandardizeColumn(r.Context(), table, column, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondWorkbook(w, result, "padronizado.xlsx")
}

// DePara resolves a dirty column against a reference column and streams back
// the augmented workbook.
func (h *Handler) DePara(w http.ResponseWriter, r *http.Request) {
	table, opts, err := h.parseUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	dirty := r.FormValue("dirty_column")
	reference := r.FormValue("reference_column")
	result, err := h.svc.ResolveAgainstReference(r.Context(), table, dirty, reference, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	h.respondWorkbook(w, result, "depara.xlsx")
}

func (h *Handler) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, domain.NewValidationError("file", "a spreadsheet upload is required")
	}
	return file, header, nil
}

// parseUpload reads the multipart upload into a table and extracts the
// shared engine options.
func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) (domain.Table, standardize.Options, error) {
	var opts standardize.Options

	file, header, err := h.formFile(w, r)
	if err != nil {
		return domain.Table{}, opts, err
	}
	defer file.Close()

	table, err := tabular.Read(file, header.Filename, r.FormValue("sheet"))
	if err != nil {
		return domain.Table{}, opts, err
	}

	opts.Cutoff = h.cfg.DefaultCutoff
	if raw := r.FormValue("cutoff"); raw != "" {
		cutoff, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Table{}, opts, domain.NewValidationError("cutoff", "must be an integer")
		}
		opts.Cutoff = cutoff
	}
	return table, opts, nil
}

func (h *Handler) respondWorkbook(w http.ResponseWriter, result *standardize.Result, filename string) {
	var buf bytes.Buffer
	if err := tabular.WriteXLSX(&buf, &result.Table); err != nil {
		h.log.Error("export workbook", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Rows-Total", strconv.Itoa(result.Summary.TotalRows))
	w.Header().Set("X-Rows-Altered", strconv.Itoa(result.Summary.AlteredRows))
	w.Header().Set("X-Alteration-Rate", fmt.Sprintf("%.1f", result.Summary.AlterationRate()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}
