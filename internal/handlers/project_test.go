package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/collabtrack/project-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestProjectHandler_CreateAndList(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "owner@example.com")

	w := env.do(t, http.MethodPost, "/api/projects", token, map[string]string{
		"name":        "Apollo",
		"description": "Lunar program",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Projects []struct {
			Name string `json:"name"`
			Rank string `json:"rank"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Projects, 1)
	require.Equal(t, "Apollo", response.Projects[0].Name)
	require.Equal(t, string(models.RankOwner), response.Projects[0].Rank)
}

func TestProjectHandler_DetailsDeniedForNonMember(t *testing.T) {
	env := setupTestEnv(t)
	ownerToken := env.signup(t, "owner@example.com")
	outsiderToken := env.signup(t, "outsider@example.com")

	w := env.do(t, http.MethodPost, "/api/projects", ownerToken, map[string]string{
		"name": "Apollo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), outsiderToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "GetProjectDetails.NoAccess", errorCode(t, w))
}

func TestProjectHandler_MalformedID(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "owner@example.com")

	w := env.do(t, http.MethodGet, "/api/projects/abc", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "GetProjectDetails.Validation", errorCode(t, w))
}

func TestParticipantHandler_UnknownEmail(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "owner@example.com")

	w := env.do(t, http.MethodPost, "/api/projects", token, map[string]string{
		"name": "Apollo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, http.MethodPost, "/api/participants", token, map[string]any{
		"project_id": created.ID,
		"email":      "nobody@example.com",
		"rank":       "member",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "AddParticipant.NotFound", errorCode(t, w))
}
