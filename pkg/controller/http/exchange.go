package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/utils/safe"
)

// exportFilename is the download name, dated like cms-evaluation-2025-09-01.json
func exportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("cms-evaluation-%s.%s", now.UTC().Format(time.DateOnly), ext)
}

func (s *Server) exportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := s.uc.Exchange.ExportJSON(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(time.Now(), "json")+`"`)
	safe.Write(r.Context(), w, data)
}

func (s *Server) exportMarkdown(w http.ResponseWriter, r *http.Request) {
	data, err := s.uc.Exchange.ExportMarkdown(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(time.Now(), "md")+`"`)
	safe.Write(r.Context(), w, data)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (s *Server) importJSON(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, r, http.StatusRequestEntityTooLarge, errorResponse{Error: "import document is too large"})
			return
		}
		writeError(w, r, goerr.Wrap(errBadRequest, "failed to read import body", goerr.V("error", err.Error())))
		return
	}

	n, err := s.uc.Exchange.ImportJSON(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, importResponse{Imported: n})
}
