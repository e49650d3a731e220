package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/middleware"
	syncpkg "github.com/easeboard/easeboard/pkg/sync"
)

var testJWTSecret = []byte("test-supabase-jwt-secret")

// testStores bundles every mock store wired into a test server.
type testStores struct {
	Connections *MockConnectionsStore
	Cache       *MockCacheStore
	SyncLogs    *MockSyncLogsStore
	Stats       *MockStatsStore
	Profiles    *MockProfilesStore
	Schedule    *MockScheduleStore
	Health      *MockHealthStore
}

// newTestServer builds a server over mock stores with all endpoints
// registered. The sync engine uses the given client factory, or a
// never-called one when nil.
func newTestServer(t *testing.T, factory syncpkg.ClientFactory) (*server.Server, *testStores) {
	t.Helper()

	stores := &testStores{
		Connections: NewMockConnectionsStore(),
		Cache:       NewMockCacheStore(),
		SyncLogs:    NewMockSyncLogsStore(),
		Stats:       NewMockStatsStore(),
		Profiles:    NewMockProfilesStore(),
		Schedule:    NewMockScheduleStore(),
		Health:      NewMockHealthStore(),
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	srv := server.NewServer(nil, cfg, middleware.NewSessionAuthenticator(testJWTSecret), "localhost", "0")
	srv.ConnectionsStore = stores.Connections
	srv.CacheStore = stores.Cache
	srv.SyncLogsStore = stores.SyncLogs
	srv.StatsStore = stores.Stats
	srv.ProfilesStore = stores.Profiles
	srv.ScheduleStore = stores.Schedule
	srv.HealthStore = stores.Health
	srv.Syncer = syncpkg.NewSyncer(stores.Connections, stores.Cache, stores.SyncLogs, factory)

	RegisterAll(srv)

	return srv, stores
}

// sessionToken signs a test session token for the user.
func sessionToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "student@example.edu",
		"role":  "authenticated",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testJWTSecret)
	require.NoError(t, err)
	return signed
}

// doRequest runs a request carrying a valid session token through the
// server's router and returns the recorder.
func doRequest(t *testing.T, srv *server.Server, userID uuid.UUID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, userID))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)
	return rec
}
