package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfaisal/user-api/internal/api"
	"github.com/mfaisal/user-api/internal/domain"
	"github.com/mfaisal/user-api/internal/mocks"
	"github.com/mfaisal/user-api/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestServer wires a handler over an in-memory store and returns the
// server plus the store for direct inspection.
func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockUserStore) {
	t.Helper()

	mockStore := mocks.NewMockUserStore()
	svc := service.NewUserService(mockStore, nil, testLogger())
	handler := api.NewUserHandler(svc, testLogger())

	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)

	return server, mockStore
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeUser(t *testing.T, resp *http.Response) domain.User {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var user domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	return user
}

// TestUserLifecycle walks the full create/read/delete scenario over HTTP.
func TestUserLifecycle(t *testing.T) {
	server, _ := newTestServer(t)

	// Create
	resp := doJSON(t, http.MethodPost, server.URL+"/", map[string]string{
		"name":     "Mohammad Faisal",
		"email":    "m@example.com",
		"password": "x",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeUser(t, resp)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Mohammad Faisal", created.Username)
	assert.Equal(t, "m@example.com", created.Email)
	assert.Equal(t, "x", created.Password)

	// Read back the same row
	resp = doJSON(t, http.MethodGet, server.URL+"/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeUser(t, resp)
	assert.Equal(t, created, got)

	// Delete returns the snapshot
	resp = doJSON(t, http.MethodDelete, server.URL+"/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decodeUser(t, resp)
	assert.Equal(t, created, deleted)

	// Gone afterwards
	resp = doJSON(t, http.MethodGet, server.URL+"/1", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "User not found", errResp["error"])
}

// TestListUsers verifies the collection endpoint, including the empty case.
func TestListUsers(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.NotNil(t, users, "empty table should serialize as [], not null")
	assert.Empty(t, users)

	for _, u := range []map[string]string{
		{"name": "a", "email": "a@example.com", "password": "pw1"},
		{"name": "b", "email": "b@example.com", "password": "pw2"},
	} {
		resp := doJSON(t, http.MethodPost, server.URL+"/", u)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)
}

// TestUpdateUserFullReplace verifies PUT overwrites every field.
func TestUpdateUserFullReplace(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/", map[string]string{
		"name": "old", "email": "old@example.com", "password": "oldpw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodPut, server.URL+"/1", map[string]string{
		"name": "new", "email": "new@example.com", "password": "newpw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeUser(t, resp)

	expected := domain.User{ID: 1, Username: "new", Email: "new@example.com", Password: "newpw"}
	assert.Equal(t, expected, updated)

	resp = doJSON(t, http.MethodGet, server.URL+"/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, expected, decodeUser(t, resp))
}

// TestKeyedEndpointsNotFound verifies GET/PUT/DELETE on an absent id all
// short-circuit with 404 from the existence check.
func TestKeyedEndpointsNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	tests := []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, map[string]string{"name": "n", "email": "e@example.com", "password": "p"}},
		{http.MethodDelete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp := doJSON(t, tt.method, server.URL+"/42", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)

			var errResp map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, "User not found", errResp["error"])
		})
	}
}

// TestCreateUserValidation verifies missing required fields produce 422.
func TestCreateUserValidation(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/", map[string]string{
		"name": "no credentials",
	})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

// TestCreateUserMalformedBody verifies undecodable JSON produces 400.
func TestCreateUserMalformedBody(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestInvalidPathID verifies a non-integer id is rejected with 400 before
// any lookup happens.
func TestInvalidPathID(t *testing.T) {
	server, mockStore := newTestServer(t)

	mockStore.GetByIDFn = func(ctx context.Context, id int64) (*domain.User, error) {
		t.Fatal("store should not be queried for a malformed id")
		return nil, nil
	}

	resp := doJSON(t, http.MethodGet, server.URL+"/abc", nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestStoreFailureIsSanitized verifies persistence failures surface as 500
// with a generic message, never the raw error.
func TestStoreFailureIsSanitized(t *testing.T) {
	server, mockStore := newTestServer(t)
	mockStore.ListError = errors.New("pq: connection to postgresql://user:secret@db failed")

	resp := doJSON(t, http.MethodGet, server.URL+"/", nil)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Failed to list users", errResp["error"])
	assert.NotContains(t, errResp["error"], "user:secret")
}
