package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/openhire/matchengine/internal/salary"
	"github.com/openhire/matchengine/internal/types"
)

// SalaryResponse pairs the market insight with a 0-100 fairness score
type SalaryResponse struct {
	Insight       types.SalaryInsight `json:"insight"`
	FairnessScore int                 `json:"fairness_score"`
}

// handleAnalyzeSalary analyzes an arbitrary posted range against market
// benchmarks.
func (s *Server) handleAnalyzeSalary(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	insight := s.analyzer.Analyze(req.Title, req.Location, req.Min, req.Max, req.Currency)
	s.jsonResponse(w, http.StatusOK, SalaryResponse{
		Insight:       insight,
		FairnessScore: salary.FairnessScore(insight),
	})
}

// handleJobSalary analyzes the published range of a stored job posting.
func (s *Server) handleJobSalary(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}

	job, err := s.db.GetJobPosting(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	if !job.HasPublishedRange() {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Job posting has no published salary range")
		return
	}

	location := ""
	if len(job.Locations) > 0 {
		location = job.Locations[0]
	}

	insight := s.analyzer.Analyze(job.Title, location, job.Compensation.Min, job.Compensation.Max, job.Compensation.Currency)
	s.jsonResponse(w, http.StatusOK, SalaryResponse{
		Insight:       insight,
		FairnessScore: salary.FairnessScore(insight),
	})
}
