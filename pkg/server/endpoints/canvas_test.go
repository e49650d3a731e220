package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
	syncpkg "github.com/easeboard/easeboard/pkg/sync"
)

// stubCanvasClient answers Validate without real HTTP.
type stubCanvasClient struct {
	result *canvas.ValidationResult
}

func (c *stubCanvasClient) Validate(ctx context.Context) *canvas.ValidationResult {
	return c.result
}

// withStubValidation swaps the Canvas client factory for the test.
func withStubValidation(t *testing.T, result *canvas.ValidationResult) {
	t.Helper()

	original := newCanvasClient
	newCanvasClient = func(canvasURL, token string, cfg *config.Settings) canvasClient {
		return &stubCanvasClient{result: result}
	}
	t.Cleanup(func() { newCanvasClient = original })
}

// emptyFetcher satisfies the sync engine with an empty payload.
type emptyFetcher struct{}

func (emptyFetcher) FetchAll(ctx context.Context) (*canvas.SyncPayload, error) {
	return &canvas.SyncPayload{}, nil
}

func emptyFactory(canvasURL, token string) syncpkg.Fetcher {
	return emptyFetcher{}
}

func TestCanvasSetup(t *testing.T) {
	userID := uuid.New()
	connectionID := uuid.New()

	srv, stores := newTestServer(t, emptyFactory)
	withStubValidation(t, &canvas.ValidationResult{
		Valid: true,
		User:  &canvas.User{ID: 7, Name: "Alice"},
	})

	connection := &model.CanvasConnection{
		ID:         connectionID,
		UserID:     userID,
		CanvasURL:  "https://canvas.example.edu",
		CanvasName: "State University",
	}
	// Setup provisions the profile row the connection references
	stores.Profiles.On("EnsureProfile", userID, "student@example.edu").
		Return(&model.Profile{ID: userID, Email: "student@example.edu"}, nil)
	stores.Connections.On("UpsertConnection", userID, "https://canvas.example.edu", "State University", "token-1234567890").
		Return(connection, nil)

	// The initial background sync may or may not land before the test
	// finishes
	stores.Connections.On("FetchConnection", userID, connectionID).Return(connection, nil).Maybe()
	stores.SyncLogs.On("CreateSyncLog", userID, connectionID, "initial").Return(&model.SyncLog{ID: uuid.New()}, nil).Maybe()
	stores.Cache.On("ApplySyncData", userID, connectionID, mock.Anything).Return(0, nil).Maybe()
	stores.SyncLogs.On("CompleteSyncLog", mock.Anything, 0).Return(nil).Maybe()
	stores.SyncLogs.On("FetchSyncLog", userID, mock.Anything).Return(&model.SyncLog{}, nil).Maybe()

	body := `{"canvas_url":"https://canvas.example.edu","api_token":"token-1234567890","canvas_name":"State University"}`
	rec := doRequest(t, srv, userID, "POST", "/api/v1/canvas/setup", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Connection model.CanvasConnection `json:"connection"`
		UserInfo   *canvas.User           `json:"user_info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, connectionID, resp.Connection.ID)
	require.NotNil(t, resp.UserInfo)
	assert.Equal(t, "Alice", resp.UserInfo.Name)
}

func TestCanvasSetupValidation(t *testing.T) {
	userID := uuid.New()
	srv, _ := newTestServer(t, nil)
	withStubValidation(t, &canvas.ValidationResult{Valid: true})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"missing url", `{"api_token":"token-1234567890","canvas_name":"A"}`},
		{"bad scheme", `{"canvas_url":"ftp://x.edu","api_token":"token-1234567890","canvas_name":"A"}`},
		{"short token", `{"canvas_url":"https://x.edu","api_token":"short","canvas_name":"A"}`},
		{"missing name", `{"canvas_url":"https://x.edu","api_token":"token-1234567890"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, userID, "POST", "/api/v1/canvas/setup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCanvasSetupRejectedToken(t *testing.T) {
	userID := uuid.New()
	srv, stores := newTestServer(t, nil)
	withStubValidation(t, &canvas.ValidationResult{Valid: false, ErrorMessage: "canvas: invalid API token"})

	body := `{"canvas_url":"https://canvas.example.edu","api_token":"token-1234567890","canvas_name":"A"}`
	rec := doRequest(t, srv, userID, "POST", "/api/v1/canvas/setup", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	stores.Profiles.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything)
	stores.Connections.AssertNotCalled(t, "UpsertConnection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListConnections(t *testing.T) {
	userID := uuid.New()
	srv, stores := newTestServer(t, nil)

	stores.Connections.On("ListConnections", userID).Return([]model.CanvasConnection{
		{ID: uuid.New(), CanvasURL: "https://canvas.example.edu", CanvasName: "State University"},
	}, nil)

	rec := doRequest(t, srv, userID, "GET", "/api/v1/canvas/connections", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Connections []model.CanvasConnection `json:"connections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Connections, 1)

	// Token material never leaves the server
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestListConnectionsUnauthorized(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req := httptest.NewRequest("GET", "/api/v1/canvas/connections", nil)
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteConnection(t *testing.T) {
	userID := uuid.New()
	connectionID := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Connections.On("DeleteConnection", userID, connectionID).Return(nil)

		rec := doRequest(t, srv, userID, "DELETE", "/api/v1/canvas/connections/"+connectionID.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		stores.Connections.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Connections.On("DeleteConnection", userID, connectionID).Return(store.ErrConnectionNotFound)

		rec := doRequest(t, srv, userID, "DELETE", "/api/v1/canvas/connections/"+connectionID.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		srv, _ := newTestServer(t, nil)

		rec := doRequest(t, srv, userID, "DELETE", "/api/v1/canvas/connections/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTokenUpdate(t *testing.T) {
	userID := uuid.New()
	connectionID := uuid.New()

	srv, stores := newTestServer(t, nil)
	withStubValidation(t, &canvas.ValidationResult{Valid: true})

	connection := &model.CanvasConnection{
		ID:         connectionID,
		UserID:     userID,
		CanvasURL:  "https://canvas.example.edu",
		CanvasName: "State University",
	}
	stores.Connections.On("FetchConnection", userID, connectionID).Return(connection, nil)
	stores.Connections.On("UpsertConnection", userID, "https://canvas.example.edu", "State University", "fresh-token-12345").
		Return(connection, nil)

	target := fmt.Sprintf("/api/v1/canvas/connections/%s/token", connectionID)
	rec := doRequest(t, srv, userID, "PUT", target, `{"api_token":"fresh-token-12345"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	stores.Connections.AssertExpectations(t)
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("no connection", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Connections.On("ListConnections", userID).Return([]model.CanvasConnection{}, nil)

		rec := doRequest(t, srv, userID, "GET", "/api/v1/canvas/validate-token", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		withStubValidation(t, &canvas.ValidationResult{Valid: true, User: &canvas.User{Name: "Alice"}})

		stores.Connections.On("ListConnections", userID).Return([]model.CanvasConnection{
			{ID: uuid.New(), CanvasURL: "https://canvas.example.edu", Token: "secret"},
		}, nil)

		rec := doRequest(t, srv, userID, "GET", "/api/v1/canvas/validate-token", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result canvas.ValidationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Valid)
	})
}

func TestValidateConnection(t *testing.T) {
	userID := uuid.New()
	connectionID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		withStubValidation(t, &canvas.ValidationResult{Valid: true, User: &canvas.User{Name: "Alice"}})

		stores.Connections.On("FetchConnection", userID, connectionID).Return(&model.CanvasConnection{
			ID:        connectionID,
			UserID:    userID,
			CanvasURL: "https://canvas.example.edu",
			Token:     "secret",
		}, nil)

		rec := doRequest(t, srv, userID, "POST", fmt.Sprintf("/api/v1/canvas/connections/%s/validate", connectionID), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result canvas.ValidationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Valid)
	})

	t.Run("not found", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Connections.On("FetchConnection", userID, connectionID).Return(nil, store.ErrConnectionNotFound)

		rec := doRequest(t, srv, userID, "POST", fmt.Sprintf("/api/v1/canvas/connections/%s/validate", connectionID), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		srv, _ := newTestServer(t, nil)

		rec := doRequest(t, srv, userID, "POST", "/api/v1/canvas/connections/nope/validate", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
