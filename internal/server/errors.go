// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrJobNotFound indicates the job posting does not exist
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job posting not found: %s", e.JobID)
}

// ErrEmployerNotFound indicates the employer account does not exist
type ErrEmployerNotFound struct {
	EmployerID uuid.UUID
}

func (e *ErrEmployerNotFound) Error() string {
	return fmt.Sprintf("employer not found: %s", e.EmployerID)
}

// ErrSearchNotFound indicates the saved search does not exist
type ErrSearchNotFound struct {
	SearchID uuid.UUID
}

func (e *ErrSearchNotFound) Error() string {
	return fmt.Sprintf("saved search not found: %s", e.SearchID)
}

// ErrUnknownTaskType indicates no proof task template exists for the type
type ErrUnknownTaskType struct {
	TaskType string
}

func (e *ErrUnknownTaskType) Error() string {
	return fmt.Sprintf("unknown proof task type: %s", e.TaskType)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrJobNotFound, *ErrEmployerNotFound, *ErrSearchNotFound, *ErrUnknownTaskType:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
