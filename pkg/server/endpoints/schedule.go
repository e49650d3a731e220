package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/easeboard/easeboard/pkg/identity"
	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// ScheduleEventRequest is the body of POST /api/v1/schedule/events
type ScheduleEventRequest struct {
	CourseID     *uuid.UUID `json:"course_id"`
	AssignmentID *uuid.UUID `json:"assignment_id"`
	Title        string     `json:"title" validate:"required"`
	Description  *string    `json:"description"`
	EventType    string     `json:"event_type" validate:"required,oneof=class exam study personal other"`
	StartsAt     time.Time  `json:"starts_at" validate:"required"`
	EndsAt       *time.Time `json:"ends_at"`
	AllDay       bool       `json:"all_day"`
}

// NotificationRequest is the body of POST /api/v1/notifications
type NotificationRequest struct {
	AssignmentID     *uuid.UUID `json:"assignment_id"`
	Title            string     `json:"title" validate:"required"`
	Message          *string    `json:"message"`
	NotificationType string     `json:"notification_type" validate:"required"`
}

// StudySessionRequest is the body of POST /api/v1/schedule/sessions
type StudySessionRequest struct {
	CourseID        *uuid.UUID `json:"course_id"`
	AssignmentID    *uuid.UUID `json:"assignment_id"`
	DurationMinutes int        `json:"duration_minutes" validate:"required,min=1,max=1440"`
	FocusScore      *int       `json:"focus_score" validate:"omitempty,min=1,max=10"`
	SessionType     string     `json:"session_type" validate:"required"`
	Notes           *string    `json:"notes"`
	StartedAt       time.Time  `json:"started_at" validate:"required"`
	EndedAt         time.Time  `json:"ended_at" validate:"required"`
}

// ReminderRequest is the body of POST /api/v1/reminders
type ReminderRequest struct {
	AssignmentID *uuid.UUID `json:"assignment_id"`
	Title        string     `json:"title" validate:"required"`
	Message      *string    `json:"message"`
	RemindAt     time.Time  `json:"remind_at" validate:"required"`
}

// RegisterScheduleEndpoints registers calendar event, study session,
// reminder and notification endpoints
func RegisterScheduleEndpoints(s *server.Server) {
	scheduleStore := s.ScheduleStore

	scheduleRouter := s.Router.PathPrefix("/api/v1/schedule").Subrouter()
	scheduleRouter.Use(s.SessionAuth.Middleware)

	// POST /api/v1/schedule/events - Create a calendar event
	scheduleRouter.HandleFunc("/events", handleCreateScheduleEvent(scheduleStore)).Methods("POST")

	// GET /api/v1/schedule/events - List events in a window
	scheduleRouter.HandleFunc("/events", handleListScheduleEvents(scheduleStore)).Methods("GET")

	// DELETE /api/v1/schedule/events/{id} - Delete an event
	scheduleRouter.HandleFunc("/events/{id}", handleDeleteScheduleEvent(scheduleStore)).Methods("DELETE")

	// POST /api/v1/schedule/sessions - Record a study session
	scheduleRouter.HandleFunc("/sessions", handleCreateStudySession(scheduleStore)).Methods("POST")

	// GET /api/v1/schedule/sessions - List recent study sessions
	scheduleRouter.HandleFunc("/sessions", handleListStudySessions(scheduleStore)).Methods("GET")

	remindersRouter := s.Router.PathPrefix("/api/v1/reminders").Subrouter()
	remindersRouter.Use(s.SessionAuth.Middleware)

	// POST /api/v1/reminders - Create a reminder
	remindersRouter.HandleFunc("", handleCreateReminder(scheduleStore)).Methods("POST")

	// GET /api/v1/reminders - List pending reminders
	remindersRouter.HandleFunc("", handleListReminders(scheduleStore)).Methods("GET")

	// POST /api/v1/reminders/{id}/dismiss - Dismiss a reminder
	remindersRouter.HandleFunc("/{id}/dismiss", handleDismissReminder(scheduleStore)).Methods("POST")

	notificationsRouter := s.Router.PathPrefix("/api/v1/notifications").Subrouter()
	notificationsRouter.Use(s.SessionAuth.Middleware)

	// POST /api/v1/notifications - Create a notification
	notificationsRouter.HandleFunc("", handleCreateNotification(scheduleStore)).Methods("POST")

	// GET /api/v1/notifications - List notifications
	notificationsRouter.HandleFunc("", handleListNotifications(scheduleStore)).Methods("GET")

	// POST /api/v1/notifications/{id}/read - Mark a notification read
	notificationsRouter.HandleFunc("/{id}/read", handleMarkNotificationRead(scheduleStore)).Methods("POST")
}

func handleCreateScheduleEvent(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req ScheduleEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.EndsAt != nil && !req.EndsAt.After(req.StartsAt) {
			respondWithError(w, http.StatusBadRequest, "ends_at must be after starts_at")
			return
		}

		event := &model.ScheduleEvent{
			UserID:       id.UserID,
			CourseID:     req.CourseID,
			AssignmentID: req.AssignmentID,
			Title:        req.Title,
			Description:  req.Description,
			EventType:    req.EventType,
			StartsAt:     req.StartsAt,
			EndsAt:       req.EndsAt,
			AllDay:       req.AllDay,
		}

		if err := scheduleStore.CreateScheduleEvent(event); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusCreated, event)
	}
}

func handleListScheduleEvents(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		// Default to the month ahead
		from := time.Now()
		to := from.AddDate(0, 1, 0)

		query := r.URL.Query()
		if raw := query.Get("from"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid from timestamp")
				return
			}
			from = parsed
			to = from.AddDate(0, 1, 0)
		}
		if raw := query.Get("to"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid to timestamp")
				return
			}
			to = parsed
		}
		if !to.After(from) {
			respondWithError(w, http.StatusBadRequest, "to must be after from")
			return
		}

		events, err := scheduleStore.ListScheduleEvents(id.UserID, from, to)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"events": events,
			"count":  len(events),
		})
	}
}

func handleDeleteScheduleEvent(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		eventID, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		if err := scheduleStore.DeleteScheduleEvent(id.UserID, eventID); err != nil {
			if errors.Is(err, store.ErrScheduleEventNotFound) {
				respondWithError(w, http.StatusNotFound, "Event not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func handleCreateNotification(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req NotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		notification := &model.Notification{
			UserID:           id.UserID,
			AssignmentID:     req.AssignmentID,
			Title:            req.Title,
			Message:          req.Message,
			NotificationType: req.NotificationType,
		}

		if err := scheduleStore.CreateNotification(notification); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusCreated, notification)
	}
}

func handleListNotifications(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		unreadOnly := r.URL.Query().Get("unread") == "true"

		notifications, err := scheduleStore.ListNotifications(id.UserID, unreadOnly)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"notifications": notifications,
			"count":         len(notifications),
		})
	}
}

func handleMarkNotificationRead(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		notificationID, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid notification id")
			return
		}

		if err := scheduleStore.MarkNotificationRead(id.UserID, notificationID); err != nil {
			if errors.Is(err, store.ErrNotificationNotFound) {
				respondWithError(w, http.StatusNotFound, "Notification not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"status": "read"})
	}
}

func handleCreateStudySession(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req StudySessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !req.EndedAt.After(req.StartedAt) {
			respondWithError(w, http.StatusBadRequest, "ended_at must be after started_at")
			return
		}

		session := &model.StudySession{
			UserID:          id.UserID,
			CourseID:        req.CourseID,
			AssignmentID:    req.AssignmentID,
			DurationMinutes: req.DurationMinutes,
			FocusScore:      req.FocusScore,
			SessionType:     req.SessionType,
			Notes:           req.Notes,
			StartedAt:       req.StartedAt,
			EndedAt:         req.EndedAt,
		}

		if err := scheduleStore.CreateStudySession(session); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusCreated, session)
	}
}

func handleListStudySessions(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		// Default to the trailing week, matching the dashboard's window
		since := time.Now().AddDate(0, 0, -7)
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid since timestamp")
				return
			}
			since = parsed
		}

		sessions, err := scheduleStore.ListStudySessions(id.UserID, since)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"sessions": sessions,
			"count":    len(sessions),
		})
	}
}

func handleCreateReminder(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req ReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		reminder := &model.Reminder{
			UserID:       id.UserID,
			AssignmentID: req.AssignmentID,
			Title:        req.Title,
			Message:      req.Message,
			RemindAt:     req.RemindAt,
		}

		if err := scheduleStore.CreateReminder(reminder); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusCreated, reminder)
	}
}

func handleListReminders(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		reminders, err := scheduleStore.ListReminders(id.UserID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"reminders": reminders,
			"count":     len(reminders),
		})
	}
}

func handleDismissReminder(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		reminderID, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid reminder id")
			return
		}

		if err := scheduleStore.DismissReminder(id.UserID, reminderID); err != nil {
			if errors.Is(err, store.ErrReminderNotFound) {
				respondWithError(w, http.StatusNotFound, "Reminder not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
	}
}
