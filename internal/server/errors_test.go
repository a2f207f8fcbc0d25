package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"job not found", &ErrJobNotFound{JobID: id}, http.StatusNotFound},
		{"employer not found", &ErrEmployerNotFound{EmployerID: id}, http.StatusNotFound},
		{"search not found", &ErrSearchNotFound{SearchID: id}, http.StatusNotFound},
		{"unknown task type", &ErrUnknownTaskType{TaskType: "juggling"}, http.StatusNotFound},
		{"validation", &ErrValidation{Message: "bad"}, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages_IncludeIdentifiers(t *testing.T) {
	id := uuid.New()

	assert.Contains(t, (&ErrJobNotFound{JobID: id}).Error(), id.String())
	assert.Contains(t, (&ErrUnknownTaskType{TaskType: "juggling"}).Error(), "juggling")
}
