package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easeboard/easeboard/pkg/audit"
	"github.com/easeboard/easeboard/pkg/canvas"
	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/identity"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
	syncpkg "github.com/easeboard/easeboard/pkg/sync"
)

var validate = validator.New()

// canvasClient is the slice of the Canvas client the endpoints need.
type canvasClient interface {
	Validate(ctx context.Context) *canvas.ValidationResult
}

// newCanvasClient is swapped out in tests to avoid real HTTP.
var newCanvasClient = func(canvasURL, token string, cfg *config.Settings) canvasClient {
	return canvas.NewClient(canvasURL, token, canvas.Options{
		Timeout:       cfg.RequestTimeout(),
		RetryAttempts: cfg.RetryAttempts,
		MaxConcurrent: cfg.MaxConcurrentRequests,
		RateLimit:     cfg.CanvasRateLimit,
	})
}

// SetupRequest is the body of POST /api/v1/canvas/setup
type SetupRequest struct {
	CanvasURL  string `json:"canvas_url" validate:"required,url,startswith=http"`
	APIToken   string `json:"api_token" validate:"required,min=10"`
	CanvasName string `json:"canvas_name" validate:"required"`
}

// TokenUpdateRequest is the body of PUT /api/v1/canvas/connections/{id}/token
type TokenUpdateRequest struct {
	APIToken string `json:"api_token" validate:"required,min=10"`
}

// RegisterCanvasEndpoints registers the connection management endpoints
func RegisterCanvasEndpoints(s *server.Server) {
	connectionsStore := s.ConnectionsStore
	profilesStore := s.ProfilesStore
	cfg := s.Config
	syncer := s.Syncer

	canvasRouter := s.Router.PathPrefix("/api/v1/canvas").Subrouter()
	canvasRouter.Use(s.SessionAuth.Middleware)

	// POST /api/v1/canvas/setup - Connect a Canvas instance
	canvasRouter.HandleFunc("/setup", handleCanvasSetup(connectionsStore, profilesStore, syncer, cfg)).Methods("POST")

	// GET /api/v1/canvas/validate-token - Check the primary connection's token
	canvasRouter.HandleFunc("/validate-token", handleValidateToken(connectionsStore, cfg)).Methods("GET")

	// GET /api/v1/canvas/connections - List connections
	canvasRouter.HandleFunc("/connections", handleListConnections(connectionsStore)).Methods("GET")

	// DELETE /api/v1/canvas/connections/{id} - Remove a connection and its cache
	canvasRouter.HandleFunc("/connections/{id}", handleDeleteConnection(connectionsStore)).Methods("DELETE")

	// PUT /api/v1/canvas/connections/{id}/token - Replace the stored token
	canvasRouter.HandleFunc("/connections/{id}/token", handleTokenUpdate(connectionsStore, cfg)).Methods("PUT")

	// POST /api/v1/canvas/connections/{id}/validate - Check a connection's stored token
	canvasRouter.HandleFunc("/connections/{id}/validate", handleValidateConnection(connectionsStore, cfg)).Methods("POST")
}

func clientIP(r *http.Request) string {
	if id, ok := identity.Get(r.Context()); ok && id.RemoteIP != nil {
		return id.RemoteIP.String()
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func handleCanvasSetup(connectionsStore store.ConnectionsStore, profilesStore store.ProfilesStore, syncer *syncpkg.Syncer, cfg *config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req SetupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		result := newCanvasClient(req.CanvasURL, req.APIToken, cfg).Validate(r.Context())
		audit.Log(audit.TokenValidationEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			CanvasURL:    req.CanvasURL,
			Valid:        result.Valid,
			ErrorMessage: result.ErrorMessage,
		})
		if !result.Valid {
			respondWithError(w, http.StatusBadRequest, "Canvas rejected the API token")
			return
		}

		// The connection row references the profile, provision it first
		if _, err := profilesStore.EnsureProfile(id.UserID, id.Email); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		connection, err := connectionsStore.UpsertConnection(id.UserID, req.CanvasURL, req.CanvasName, req.APIToken)
		if err != nil {
			audit.Log(audit.ConnectionEvent{
				UserID:       id.UserID.String(),
				ClientIP:     clientIP(r),
				CanvasURL:    req.CanvasURL,
				Operation:    "connect",
				ErrorMessage: err.Error(),
			})
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		audit.Log(audit.ConnectionEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			ConnectionID: connection.ID.String(),
			CanvasURL:    req.CanvasURL,
			Operation:    "connect",
			Success:      true,
		})

		// Initial sync runs in the background, the response doesn't wait
		// for Canvas
		userID := id.UserID
		go func() {
			if _, err := syncer.Run(context.Background(), userID, connection.ID, "initial"); err != nil &&
				!errors.Is(err, syncpkg.ErrSyncInProgress) {
				log.Printf("initial sync for connection %s: %v", connection.ID, err)
			}
		}()

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"connection": connection,
			"user_info":  result.User,
		})
	}
}

func handleValidateToken(connectionsStore store.ConnectionsStore, cfg *config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connections, err := connectionsStore.ListConnections(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(connections) == 0 {
			respondWithError(w, http.StatusNotFound, "No Canvas connection configured")
			return
		}

		// Newest connection is the primary one
		primary := connections[0]
		result := newCanvasClient(primary.CanvasURL, primary.Token, cfg).Validate(r.Context())

		audit.Log(audit.TokenValidationEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			CanvasURL:    primary.CanvasURL,
			Valid:        result.Valid,
			ErrorMessage: result.ErrorMessage,
		})

		respondWithJSON(w, http.StatusOK, result)
	}
}

func handleValidateConnection(connectionsStore store.ConnectionsStore, cfg *config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
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

		result := newCanvasClient(connection.CanvasURL, connection.Token, cfg).Validate(r.Context())
		audit.Log(audit.TokenValidationEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			CanvasURL:    connection.CanvasURL,
			Valid:        result.Valid,
			ErrorMessage: result.ErrorMessage,
		})

		respondWithJSON(w, http.StatusOK, result)
	}
}

func handleListConnections(connectionsStore store.ConnectionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connections, err := connectionsStore.ListConnections(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"connections": connections,
		})
	}
}

func handleDeleteConnection(connectionsStore store.ConnectionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid connection id")
			return
		}

		if err := connectionsStore.DeleteConnection(id.UserID, connectionID); err != nil {
			if errors.Is(err, store.ErrConnectionNotFound) {
				respondWithError(w, http.StatusNotFound, "Connection not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		audit.Log(audit.ConnectionEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			ConnectionID: connectionID.String(),
			Operation:    "disconnect",
			Success:      true,
		})

		respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func handleTokenUpdate(connectionsStore store.ConnectionsStore, cfg *config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		connectionID, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid connection id")
			return
		}

		var req TokenUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
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

		result := newCanvasClient(connection.CanvasURL, req.APIToken, cfg).Validate(r.Context())
		audit.Log(audit.TokenValidationEvent{
			UserID:       id.UserID.String(),
			ClientIP:     clientIP(r),
			CanvasURL:    connection.CanvasURL,
			Valid:        result.Valid,
			ErrorMessage: result.ErrorMessage,
		})
		if !result.Valid {
			respondWithError(w, http.StatusBadRequest, "Canvas rejected the API token")
			return
		}

		// Upserting to the same URL replaces the stored token with a
		// fresh salt
		updated, err := connectionsStore.UpsertConnection(id.UserID, connection.CanvasURL, connection.CanvasName, req.APIToken)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"connection": updated,
		})
	}
}
