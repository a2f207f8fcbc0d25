package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/openhire/matchengine/internal/prooftask"
	"github.com/openhire/matchengine/internal/types"
)

// handleGetProofTask returns the task template for a task type with the
// answer key stripped.
func (s *Server) handleGetProofTask(w http.ResponseWriter, r *http.Request) {
	taskType := r.PathValue("type")
	template, ok := s.catalog.ProofTasks[taskType]
	if !ok {
		unknown := &ErrUnknownTaskType{TaskType: taskType}
		s.errorResponse(w, HTTPStatus(unknown), unknown.Error())
		return
	}

	// Never ship the answer key to candidates
	public := template
	public.Questions = make([]types.Question, len(template.Questions))
	for i, q := range template.Questions {
		q.CorrectAnswer = ""
		public.Questions[i] = q
	}

	s.jsonResponse(w, http.StatusOK, public)
}

// handleScoreProofTask grades a candidate's ordered answers against a task
// template's fixed rubric.
func (s *Server) handleScoreProofTask(w http.ResponseWriter, r *http.Request) {
	taskType := r.PathValue("type")
	template, ok := s.catalog.ProofTasks[taskType]
	if !ok {
		unknown := &ErrUnknownTaskType{TaskType: taskType}
		s.errorResponse(w, HTTPStatus(unknown), unknown.Error())
		return
	}

	var req types.ScoreTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := prooftask.ScoreSubmission(req.Answers, template)

	// Persist when the caller identifies the candidate
	if candidateIDStr := r.URL.Query().Get("candidate_id"); candidateIDStr != "" {
		candidateID, err := uuid.Parse(candidateIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid candidate_id")
			return
		}
		if err := s.db.SaveTaskResult(r.Context(), candidateID, taskType, &result); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}
