package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionguard-service/internal/auth"
	"visionguard-service/internal/http/middleware"
	"visionguard-service/internal/model"
	"visionguard-service/internal/storage"
)

func userAdminServer(t *testing.T) (*httptest.Server, *auth.Manager) {
	t.Helper()

	tokens := auth.NewManager("test-secret", time.Hour)
	files, err := storage.NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	handler := NewHandler(nil, nil, nil, nil, nil, nil, zerolog.Nop())
	router := NewRouter(handler, middleware.Auth(tokens), files, "test")
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, tokens
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestUserRoutesRequireToken(t *testing.T) {
	server, _ := userAdminServer(t)

	resp, err := http.Get(server.URL + "/api/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserRoutesRejectHRRole(t *testing.T) {
	server, tokens := userAdminServer(t)

	token, err := tokens.Issue(&model.User{ID: 2, Username: "hr", Role: model.RoleHR})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/users", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	created := doJSON(t, http.MethodPost, server.URL+"/api/users", token, createUserRequest{
		Username: "newbie", Password: "secret", Role: "HR",
	})
	defer created.Body.Close()
	assert.Equal(t, http.StatusForbidden, created.StatusCode)
}

func TestCreateUserValidatesPayload(t *testing.T) {
	server, tokens := userAdminServer(t)

	token, err := tokens.Issue(&model.User{ID: 1, Username: "supervisor", Role: model.RoleSupervisor})
	require.NoError(t, err)

	missing := doJSON(t, http.MethodPost, server.URL+"/api/users", token, map[string]string{
		"password": "secret", "role": "HR",
	})
	defer missing.Body.Close()
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)

	badRole := doJSON(t, http.MethodPost, server.URL+"/api/users", token, createUserRequest{
		Username: "newbie", Password: "secret", Role: "JANITOR",
	})
	defer badRole.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badRole.StatusCode)
}

func TestDeleteUserRejectsOwnAccount(t *testing.T) {
	server, tokens := userAdminServer(t)

	token, err := tokens.Issue(&model.User{ID: 7, Username: "supervisor", Role: model.RoleSupervisor})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodDelete, server.URL+"/api/users/7", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
