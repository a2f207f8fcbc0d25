package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/openhire/matchengine/internal/digest"
	"github.com/openhire/matchengine/internal/types"
)

// digestRunConcurrency bounds parallel digest generation for scheduled runs
const digestRunConcurrency = 4

// handleGenerateDigest generates and persists a fresh digest for a saved
// search.
func (s *Server) handleGenerateDigest(w http.ResponseWriter, r *http.Request) {
	searchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid search ID")
		return
	}

	search, err := s.db.GetSavedSearch(r.Context(), searchID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if search == nil {
		notFound := &ErrSearchNotFound{SearchID: searchID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	d, err := s.digests.Generate(r.Context(), *search)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Digest generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, d)
}

// handleLatestDigest returns the most recent digest for a saved search.
func (s *Server) handleLatestDigest(w http.ResponseWriter, r *http.Request) {
	searchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid search ID")
		return
	}

	d, err := s.db.GetLatestDigest(r.Context(), searchID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if d == nil {
		s.errorResponse(w, http.StatusNotFound, "No digest generated yet for this search")
		return
	}

	s.jsonResponse(w, http.StatusOK, d)
}

// RunDueResponse summarizes a scheduled digest run
type RunDueResponse struct {
	Generated int         `json:"generated"`
	SearchIDs []uuid.UUID `json:"search_ids"`
}

// handleRunDueDigests generates digests for every saved search whose
// schedule has elapsed since its last run.
func (s *Server) handleRunDueDigests(w http.ResponseWriter, r *http.Request) {
	searches, err := s.db.ListSavedSearches(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	now := time.Now().UTC()
	due := make([]types.SavedSearch, 0, len(searches))
	for _, search := range searches {
		if digest.Due(search, now) {
			due = append(due, search)
		}
	}

	digests, err := s.digests.RunAll(r.Context(), due, digestRunConcurrency)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Digest run failed: "+err.Error())
		return
	}

	resp := RunDueResponse{SearchIDs: make([]uuid.UUID, 0, len(digests))}
	for _, d := range digests {
		if d != nil {
			resp.Generated++
			resp.SearchIDs = append(resp.SearchIDs, d.SearchID)
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
