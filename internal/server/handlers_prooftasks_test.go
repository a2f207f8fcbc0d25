package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/matchengine/internal/types"
)

func TestHandleGetProofTask_StripsAnswerKey(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/proof-tasks/frontend", nil)
	req.SetPathValue("type", "frontend")
	w := httptest.NewRecorder()

	s.handleGetProofTask(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var template types.TaskTemplate
	err := json.Unmarshal(w.Body.Bytes(), &template)
	require.NoError(t, err)

	assert.Equal(t, "frontend", template.Type)
	assert.NotEmpty(t, template.Questions)
	for _, q := range template.Questions {
		assert.Empty(t, q.CorrectAnswer, "question %s should not expose its answer", q.ID)
	}

	// The embedded template still carries its key for grading
	assert.NotEmpty(t, s.catalog.ProofTasks["frontend"].Questions[0].CorrectAnswer)
}

func TestHandleGetProofTask_UnknownType(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/proof-tasks/juggling", nil)
	req.SetPathValue("type", "juggling")
	w := httptest.NewRecorder()

	s.handleGetProofTask(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleScoreProofTask_GradesSubmission(t *testing.T) {
	s := newTestServer(t)

	template := s.catalog.ProofTasks["frontend"]
	answers := make([]string, len(template.Questions))
	for i, q := range template.Questions {
		if q.CorrectAnswer != "" {
			answers[i] = q.CorrectAnswer
		} else {
			answers[i] = "a thorough free-form answer"
		}
	}

	payload, err := json.Marshal(types.ScoreTaskRequest{Answers: answers})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/proof-tasks/frontend/score", strings.NewReader(string(payload)))
	req.SetPathValue("type", "frontend")
	w := httptest.NewRecorder()

	s.handleScoreProofTask(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result types.TaskResult
	err = json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, len(template.Questions)*10, result.MaxScore)
	assert.True(t, result.Passed)
}

func TestHandleScoreProofTask_UnknownType(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/proof-tasks/juggling/score", strings.NewReader(`{"answers": ["a"]}`))
	req.SetPathValue("type", "juggling")
	w := httptest.NewRecorder()

	s.handleScoreProofTask(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleScoreProofTask_RequiresAnswers(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/proof-tasks/frontend/score", strings.NewReader(`{"answers": []}`))
	req.SetPathValue("type", "frontend")
	w := httptest.NewRecorder()

	s.handleScoreProofTask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScoreProofTask_InvalidCandidateID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/proof-tasks/frontend/score?candidate_id=nope", strings.NewReader(`{"answers": ["a"]}`))
	req.SetPathValue("type", "frontend")
	w := httptest.NewRecorder()

	s.handleScoreProofTask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
