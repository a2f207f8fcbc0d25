package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExtractSkills_FromText(t *testing.T) {
	s := newTestServer(t)

	body := `{"text": "We use React, TypeScript and golang in production."}`
	req := httptest.NewRequest(http.MethodPost, "/skills/extract", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleExtractSkills(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ExtractSkillsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Contains(t, resp.Skills, "React")
	assert.Contains(t, resp.Skills, "TypeScript")
	assert.Contains(t, resp.Skills, "Go")
	assert.Equal(t, len(resp.Skills), resp.Count)
}

func TestHandleExtractSkills_FromHTML(t *testing.T) {
	s := newTestServer(t)

	body := `{"html": "<html><body><p>Experience with Kubernetes required.</p><script>x()</script></body></html>"}`
	req := httptest.NewRequest(http.MethodPost, "/skills/extract", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleExtractSkills(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ExtractSkillsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp.Skills, "Kubernetes")
}

func TestHandleExtractSkills_RequiresInput(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/skills/extract", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	s.handleExtractSkills(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleExtractSkills_RejectsBothInputs(t *testing.T) {
	s := newTestServer(t)

	body := `{"text": "React", "html": "<p>React</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/skills/extract", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleExtractSkills(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRelevance_ScoresCandidate(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"candidate": {
			"id": "7b0f47a2-31a1-4f7c-9a55-3f3d9d2f42c1",
			"skills": ["React", "TypeScript"],
			"location": "Remote",
			"completeness": 80
		},
		"job": {
			"id": "f3c4f648-58d1-4c2b-8a1c-28b9ea2f8f10",
			"title": "Frontend Engineer",
			"company": "Acme",
			"description": "Frontend role",
			"tags": ["React", "TypeScript", "GraphQL"],
			"locations": ["Remote"],
			"remote": true,
			"employer_id": "9d2c53a7-6f3e-4b7e-8f11-0bb1a9c3e771",
			"active": true
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/relevance", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleRelevance(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Overall int `json:"overall"`
		Factors []struct {
			Name string `json:"name"`
		} `json:"factors"`
		Rank        int    `json:"rank"`
		Explanation string `json:"explanation"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Greater(t, resp.Overall, 0)
	assert.Len(t, resp.Factors, 6)
	assert.Equal(t, 1, resp.Rank)
	assert.NotEmpty(t, resp.Explanation)
}

func TestHandleRelevance_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/relevance", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	s.handleRelevance(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAlerts_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/alerts", strings.NewReader("{"))
	w := httptest.NewRecorder()

	s.handleAlerts(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
