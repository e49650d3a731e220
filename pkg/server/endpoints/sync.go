package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easeboard/easeboard/pkg/audit"
	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/identity"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
	syncpkg "github.com/easeboard/easeboard/pkg/sync"
)

const defaultLogLimit = 20

// RegisterSyncEndpoints registers the sync trigger and inspection endpoints
func RegisterSyncEndpoints(s *server.Server) {
	syncer := s.Syncer
	syncLogsStore := s.SyncLogsStore
	connectionsStore := s.ConnectionsStore

	canvasRouter := s.Router.PathPrefix("/api/v1/canvas").Subrouter()
	canvasRouter.Use(s.SessionAuth.Middleware)

	// POST /api/v1/canvas/connections/{id}/sync - Trigger a manual sync
	canvasRouter.HandleFunc("/connections/{id}/sync", handleTriggerSync(syncer)).Methods("POST")

	// GET /api/v1/canvas/connections/{id}/sync/status - In-flight flag + recent logs
	canvasRouter.HandleFunc("/connections/{id}/sync/status", handleSyncStatus(syncer, connectionsStore, syncLogsStore)).Methods("GET")

	// DELETE /api/v1/canvas/connections/{id}/sync - Cancel an in-flight sync
	canvasRouter.HandleFunc("/connections/{id}/sync", handleCancelSync(syncer)).Methods("DELETE")

	// GET /api/v1/canvas/connections/{id}/conflicts - Diff the cache against Canvas
	canvasRouter.HandleFunc("/connections/{id}/conflicts", handleListConflicts(syncer)).Methods("GET")

	syncRouter := s.Router.PathPrefix("/api/v1/sync").Subrouter()
	syncRouter.Use(s.SessionAuth.Middleware)

	// GET /api/v1/sync/logs - Recent sync logs across all connections
	syncRouter.HandleFunc("/logs", handleSyncLogs(syncLogsStore)).Methods("GET")

	// GET /api/v1/sync/status - Per-connection sync state overview
	syncRouter.HandleFunc("/status", handleSyncOverview(syncer, connectionsStore)).Methods("GET")
}

func connectionIDVar(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func handleTriggerSync(syncer *syncpkg.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, ok := connectionIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid connection id")
			return
		}

		result, err := syncer.Run(r.Context(), id.UserID, connectionID, "manual")
		if err != nil {
			audit.Log(audit.SyncEvent{
				UserID:       id.UserID.String(),
				ClientIP:     clientIP(r),
				ConnectionID: connectionID.String(),
				SyncType:     "manual",
				ErrorMessage: err.Error(),
			})

			switch {
			case errors.Is(err, syncpkg.ErrSyncInProgress):
				respondWithError(w, http.StatusBadRequest, "Sync already in progress")
			case errors.Is(err, store.ErrConnectionNotFound):
				respondWithError(w, http.StatusNotFound, "Connection not found")
			default:
				respondWithError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		audit.Log(audit.SyncEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			ConnectionID: connectionID.String(),
			SyncType:     "manual",
			ItemsSynced:  result.ItemsSynced,
			Success:      true,
		})

		respondWithJSON(w, http.StatusOK, result)
	}
}

func handleSyncStatus(syncer *syncpkg.Syncer, connectionsStore store.ConnectionsStore, syncLogsStore store.SyncLogsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, ok := connectionIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid connection id")
			return
		}

		connection, err := connectionsStore.FetchConnection(id.UserID, connectionID)
		if err != nil {
			if errors.Is(err, store.ErrConnectionNotFound) {
				respondWithError(w, http.StatusNotFound, "Connection not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logs, err := syncLogsStore.ListRecentSyncLogs(id.UserID, defaultLogLimit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"in_progress": syncer.InProgress(id.UserID, connectionID),
			"status":      connection.Status,
			"last_sync":   connection.LastSync,
			"recent_logs": logs,
		})
	}
}

func handleListConflicts(syncer *syncpkg.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, ok := connectionIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid connection id")
			return
		}

		conflicts, err := syncer.Conflicts(r.Context(), id.UserID, connectionID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrConnectionNotFound):
				respondWithError(w, http.StatusNotFound, "Connection not found")
			case errors.Is(err, canvas.ErrInvalidToken):
				respondWithError(w, http.StatusBadRequest, "Canvas rejected the API token")
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"conflicts": conflicts,
			"count":     len(conflicts),
		})
	}
}

func handleCancelSync(syncer *syncpkg.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, ok := connectionIDVar(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid connection id")
			return
		}

		if !syncer.Cancel(id.UserID, connectionID) {
			respondWithError(w, http.StatusNotFound, "No sync in progress")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
	}
}

func handleSyncLogs(syncLogsStore store.SyncLogsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		limit := defaultLogLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxListLimit {
				respondWithError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			limit = parsed
		}

		logs, err := syncLogsStore.ListRecentSyncLogs(id.UserID, limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"logs":  logs,
			"count": len(logs),
		})
	}
}

func handleSyncOverview(syncer *syncpkg.Syncer, connectionsStore store.ConnectionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connections, err := connectionsStore.ListConnections(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		overview := make([]map[string]interface{}, 0, len(connections))
		for _, connection := range connections {
			overview = append(overview, map[string]interface{}{
				"connection_id": connection.ID,
				"canvas_name":   connection.CanvasName,
				"status":        connection.Status,
				"last_sync":     connection.LastSync,
				"in_progress":   syncer.InProgress(id.UserID, connection.ID),
			})
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"connections": overview,
		})
	}
}
