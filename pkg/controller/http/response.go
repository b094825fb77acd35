package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/usecase"
	"github.com/secmon-lab/cmseval/pkg/utils/errutil"
	"github.com/secmon-lab/cmseval/pkg/utils/safe"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// writeError maps use case errors to status codes and reports the rest as
// internal errors
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrVendorNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrVendorNotDeletable):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidVendor),
		errors.Is(err, usecase.ErrInvalidPayload),
		errors.Is(err, usecase.ErrVersionMismatch),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
