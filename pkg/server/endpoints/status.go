package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the unauthenticated status endpoints
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.HealthStore

	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")

	// GET /health - Liveness and database connectivity (no auth required)
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("EASEBOARD_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>EaseBoard Status</title>
  </head>
  <body>
    <main>
      <h1>Status</h1>
      <p>Your EaseBoard server is running!</p>
      <dl>
        <dt>Details:</dt>
        <dd>Version ` + version + `</dd>
      </dl>
    </main>
  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "error",
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Database: "ok",
		})
	}
}
