package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/openhire/matchengine/internal/trust"
)

// handleTrust returns an employer's verification status, remaining steps,
// and derived trust score.
func (s *Server) handleTrust(w http.ResponseWriter, r *http.Request) {
	employerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	employer, err := s.db.GetEmployer(r.Context(), employerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if employer == nil {
		notFound := &ErrEmployerNotFound{EmployerID: employerID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	status := trust.DeriveVerificationStatus(*employer)
	s.jsonResponse(w, http.StatusOK, status)
}
