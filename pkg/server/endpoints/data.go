package endpoints

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/identity"
	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
)

const maxListLimit = 200

// RegisterDataEndpoints registers the cached Canvas data endpoints
func RegisterDataEndpoints(s *server.Server) {
	cacheStore := s.CacheStore
	connectionsStore := s.ConnectionsStore
	syncLogsStore := s.SyncLogsStore

	dataRouter := s.Router.PathPrefix("/api/v1/canvas").Subrouter()
	dataRouter.Use(s.SessionAuth.Middleware)

	// GET /api/v1/canvas/courses - Cached courses
	dataRouter.HandleFunc("/courses", handleListCourses(cacheStore)).Methods("GET")

	// GET /api/v1/canvas/assignments - Cached assignments with filters
	dataRouter.HandleFunc("/assignments", handleListAssignments(cacheStore)).Methods("GET")

	// GET /api/v1/canvas/grades - Cached grades
	dataRouter.HandleFunc("/grades", handleListGrades(cacheStore)).Methods("GET")

	// GET /api/v1/canvas/data - Combined payload plus last sync info
	dataRouter.HandleFunc("/data", handleCombinedData(cacheStore, connectionsStore, syncLogsStore)).Methods("GET")
}

func handleListCourses(cacheStore store.CacheStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		courses, err := cacheStore.ListCourses(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"courses": courses,
			"count":   len(courses),
		})
	}
}

// assignmentFilterFromQuery builds the store filter from query params.
// Unknown status values and malformed course ids are rejected by the
// caller via the returned error message.
func assignmentFilterFromQuery(r *http.Request) (store.AssignmentFilter, string) {
	var filter store.AssignmentFilter

	if raw := r.URL.Query().Get("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return filter, "Invalid course_id"
		}
		filter.CourseID = &courseID
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := model.AssignmentStatusString(raw)
		if err != nil {
			return filter, "Invalid status"
		}
		filter.Status = &status
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, "Invalid limit"
		}
		filter.Limit = limit
	}
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, "Invalid offset"
		}
		filter.Offset = offset
	}

	return filter, ""
}

func handleListAssignments(cacheStore store.CacheStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		filter, errMsg := assignmentFilterFromQuery(r)
		if errMsg != "" {
			respondWithError(w, http.StatusBadRequest, errMsg)
			return
		}

		assignments, err := cacheStore.ListAssignments(id.UserID, filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"assignments": assignments,
			"count":       len(assignments),
		})
	}
}

func handleListGrades(cacheStore store.CacheStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var courseID *uuid.UUID
		if raw := r.URL.Query().Get("course_id"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid course_id")
				return
			}
			courseID = &parsed
		}

		grades, err := cacheStore.ListGrades(id.UserID, courseID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"grades": grades,
			"count":  len(grades),
		})
	}
}

func handleCombinedData(cacheStore store.CacheStore, connectionsStore store.ConnectionsStore, syncLogsStore store.SyncLogsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		courses, err := cacheStore.ListCourses(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		assignments, err := cacheStore.ListAssignments(id.UserID, store.AssignmentFilter{Limit: maxListLimit})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		grades, err := cacheStore.ListGrades(id.UserID, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		connections, err := connectionsStore.ListConnections(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logs, err := syncLogsStore.ListRecentSyncLogs(id.UserID, 1)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		payload := map[string]interface{}{
			"courses":     courses,
			"assignments": assignments,
			"grades":      grades,
			"connected":   len(connections) > 0,
		}
		if len(connections) > 0 {
			payload["last_sync"] = connections[0].LastSync
		}
		if len(logs) > 0 {
			payload["last_sync_log"] = logs[0]
		}

		respondWithJSON(w, http.StatusOK, payload)
	}
}
