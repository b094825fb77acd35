package http

import (
	"net/http"
	"strings"

	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/scoring"
)

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.uc.Analysis.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, ov)
}

func (s *Server) analysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.Analysis.Analysis(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, a)
}

// compare reads a comma separated id list; blanks are ignored
func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	var ids []types.VendorID
	for _, raw := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id := strings.TrimSpace(raw); id != "" {
			ids = append(ids, types.VendorID(id))
		}
	}
	writeJSON(w, r, http.StatusOK, s.uc.Analysis.Compare(r.Context(), ids))
}

func (s *Server) migration(w http.ResponseWriter, r *http.Request) {
	timelines, err := s.uc.Analysis.Timelines(r.Context(), types.VendorID(r.URL.Query().Get("vendor")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"timelines": timelines})
}

func (s *Server) risks(w http.ResponseWriter, r *http.Request) {
	view, err := s.uc.Risk.Register(r.Context(), types.VendorID(r.URL.Query().Get("vendor")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) scenarios(w http.ResponseWriter, r *http.Request) {
	views, err := s.uc.Risk.Scenarios(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"scenarios": views})
}

type weightResponse struct {
	Dimension types.ScoreDimension `json:"dimension"`
	Label     string               `json:"label"`
	Percent   int                  `json:"percent"`
}

func (s *Server) weights(w http.ResponseWriter, r *http.Request) {
	table := scoring.Weights()
	resp := make([]weightResponse, 0, len(table))
	for _, wt := range table {
		resp = append(resp, weightResponse{
			Dimension: wt.Dimension,
			Label:     wt.Dimension.Label(),
			Percent:   wt.Percent,
		})
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"weights": resp})
}
