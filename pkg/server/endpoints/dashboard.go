package endpoints

import (
	"net/http"

	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/identity"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// RegisterDashboardEndpoints registers the dashboard summary endpoint
func RegisterDashboardEndpoints(s *server.Server) {
	statsStore := s.StatsStore
	connectionsStore := s.ConnectionsStore
	cfg := s.Config

	dashboardRouter := s.Router.PathPrefix("/api/v1/dashboard").Subrouter()
	dashboardRouter.Use(s.SessionAuth.Middleware)

	// GET /api/v1/dashboard - Summary stats and due-soon list
	dashboardRouter.HandleFunc("", handleDashboard(statsStore, connectionsStore, cfg)).Methods("GET")
}

func handleDashboard(statsStore store.StatsStore, connectionsStore store.ConnectionsStore, cfg *config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connections, err := connectionsStore.ListConnections(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// No connection is not an error, the dashboard renders empty
		if len(connections) == 0 {
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"connected": false,
				"stats":     &store.DashboardStats{},
				"due_soon":  []interface{}{},
			})
			return
		}

		stats, err := statsStore.DashboardStats(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		dueSoon, err := statsStore.DueSoon(id.UserID, cfg.DueSoonWindow())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"connected": true,
			"stats":     stats,
			"due_soon":  dueSoon,
			"last_sync": connections[0].LastSync,
		})
	}
}
