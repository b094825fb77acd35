package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
	"github.com/secmon-lab/cmseval/pkg/usecase"
)

type vendorListResponse struct {
	Vendors []*model.Vendor     `json:"vendors"`
	Sort    types.SortKey       `json:"sort"`
	Dir     types.SortDirection `json:"dir"`
}

func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	key, err := types.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, err.Error()))
		return
	}
	dir, err := types.ParseSortDirection(r.URL.Query().Get("dir"))
	if err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, err.Error()))
		return
	}

	writeJSON(w, r, http.StatusOK, vendorListResponse{
		Vendors: s.uc.Vendor.Sorted(r.Context(), key, dir),
		Sort:    key,
		Dir:     dir,
	})
}

func (s *Server) addVendor(w http.ResponseWriter, r *http.Request) {
	v, err := s.uc.Vendor.Add(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, v)
}

func (s *Server) getVendor(w http.ResponseWriter, r *http.Request) {
	v, err := s.uc.Vendor.Get(r.Context(), types.VendorID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

// recordSections are the vendor fields a PUT body must carry. Save replaces
// the whole record, so a missing section would silently reset to zero values.
var recordSections = []string{"features", "weightedScores", "cost", "migration", "metadata"}

// saveVendor replaces the vendor named in the path with the full record in
// the body. The body may omit the ID but must not name another vendor.
func (s *Server) saveVendor(w http.ResponseWriter, r *http.Request) {
	id := types.VendorID(chi.URLParam(r, "id"))

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, "failed to read vendor body", goerr.V("error", err.Error())))
		return
	}

	var raw map[string]json.RawMessage
	var v model.Vendor
	if err := json.Unmarshal(data, &raw); err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, "invalid vendor JSON", goerr.V("error", err.Error())))
		return
	}
	if err := json.Unmarshal(data, &v); err != nil {
		writeError(w, r, goerr.Wrap(errBadRequest, "invalid vendor JSON", goerr.V("error", err.Error())))
		return
	}
	if v.ID != "" && v.ID != id {
		writeError(w, r, goerr.Wrap(errBadRequest, "vendor ID does not match path",
			goerr.V("path_id", id), goerr.V("body_id", v.ID)))
		return
	}
	for _, key := range recordSections {
		if _, ok := raw[key]; !ok {
			writeError(w, r, goerr.Wrap(errBadRequest, "vendor body must carry the full record",
				goerr.V("missing", key)))
			return
		}
	}
	v.ID = id

	saved, err := s.uc.Vendor.Save(r.Context(), &v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, saved)
}

func (s *Server) deleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Vendor.Delete(r.Context(), types.VendorID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resetVendors(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Vendor.Reset(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, vendorListResponse{
		Vendors: s.uc.Vendor.Sorted(r.Context(), types.SortByPriority, types.SortAsc),
		Sort:    types.SortByPriority,
		Dir:     types.SortAsc,
	})
}

// topVendors serves the priority shortlist; n defaults to the overview size
func (s *Server) topVendors(w http.ResponseWriter, r *http.Request) {
	n := usecase.TopChoiceCount
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, goerr.Wrap(errBadRequest, "n must be an integer", goerr.V("n", raw)))
			return
		}
		n = parsed
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"vendors": ranking.TopN(s.uc.Vendor.List(r.Context()), n),
	})
}
