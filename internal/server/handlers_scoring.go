package server

import (
	"encoding/json"
	"net/http"

	"github.com/openhire/matchengine/internal/alerts"
	"github.com/openhire/matchengine/internal/ingestion"
	"github.com/openhire/matchengine/internal/relevance"
	"github.com/openhire/matchengine/internal/types"
)

// ExtractSkillsResponse carries the canonical skills found in the input
type ExtractSkillsResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// handleExtractSkills normalizes free text or raw HTML into canonical skills
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text := req.Text
	if req.HTML != "" {
		extracted, err := ingestion.ExtractText(req.HTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to parse HTML: "+err.Error())
			return
		}
		text = extracted
	}

	found := s.extractor.Extract(text)
	s.jsonResponse(w, http.StatusOK, ExtractSkillsResponse{
		Skills: found,
		Count:  len(found),
	})
}

// handleRelevance scores a candidate against a job with an explainable
// factor breakdown and a rank within the supplied pool.
func (s *Server) handleRelevance(w http.ResponseWriter, r *http.Request) {
	var req types.RelevanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	score := relevance.CalculateRelevance(&req.Candidate, &req.Job, req.Pool)
	s.jsonResponse(w, http.StatusOK, score)
}

// AlertsResponse carries the generated alerts, highest confidence first
type AlertsResponse struct {
	Alerts []types.Alert `json:"alerts"`
	Count  int           `json:"count"`
}

// handleAlerts generates smart alerts for a candidate against the active
// job pool.
func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	var req types.AlertsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pool, err := s.db.ListActiveJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	generated := alerts.Generate(&req.Candidate, pool)
	s.jsonResponse(w, http.StatusOK, AlertsResponse{
		Alerts: generated,
		Count:  len(generated),
	})
}
