package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/config"
	"github.com/easeboard/easeboard/pkg/server/middleware"
	"github.com/easeboard/easeboard/pkg/server/store"
	"github.com/easeboard/easeboard/pkg/sync"
)

// Server bundles the router, database handle, stores and sync engine
// behind one HTTP listener.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Settings

	SessionAuth *middleware.SessionAuthenticator

	ConnectionsStore store.ConnectionsStore
	CacheStore       store.CacheStore
	SyncLogsStore    store.SyncLogsStore
	StatsStore       store.StatsStore
	ProfilesStore    store.ProfilesStore
	ScheduleStore    store.ScheduleStore
	HealthStore      store.HealthStore

	Syncer *sync.Syncer

	srv *http.Server
}

// NewServer builds a server listening on host:port. Stores and the
// syncer are attached by the caller before endpoints are registered.
func NewServer(
	db *gorm.DB,
	cfg *config.Settings,
	sessionAuth *middleware.SessionAuthenticator,
	host string,
	port string,
) *Server {
	router := mux.NewRouter().UseEncodedPath()

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:      router,
		DB:          db,
		Config:      cfg,
		SessionAuth: sessionAuth,
		srv:         srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
