package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPage(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	t.Run("html by default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Your EaseBoard server is running!")
	})

	t.Run("json when asked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["version"])
	})

	t.Run("json via format param", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?format=json", nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	})
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Health.On("CheckConnectivity").Return(nil)

		req := httptest.NewRequest("GET", "/health", nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Database)
	})

	t.Run("database down", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Health.On("CheckConnectivity").Return(errors.New("dial tcp: connection refused"))

		req := httptest.NewRequest("GET", "/health", nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "unreachable", resp.Database)
	})
}
