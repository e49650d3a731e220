package endpoints

import (
	"github.com/easeboard/easeboard/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterCanvasEndpoints(srv)
	RegisterDataEndpoints(srv)
	RegisterSyncEndpoints(srv)
	RegisterDashboardEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterScheduleEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
