package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

// ErrorResponse is the JSON error body for all non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps domain errors onto HTTP statuses: input-shape problems are
// 422 (the file parsed, but the request cannot be processed as asked),
// undecodable uploads are 400, oversized bodies 413, the rest 500.
func writeError(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "upload too large"})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrColumnNotFound),
		errors.Is(err, domain.ErrEmptyTable):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEncoding):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
