package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/model"
)

// ErrReminderNotFound is returned when a reminder doesn't exist
var ErrReminderNotFound = errors.New("reminder not found")

// ErrScheduleEventNotFound is returned when a schedule event doesn't exist
var ErrScheduleEventNotFound = errors.New("schedule event not found")

// ErrNotificationNotFound is returned when a notification doesn't exist
var ErrNotificationNotFound = errors.New("notification not found")

// ScheduleStore abstracts schedule event, study session, reminder and
// notification storage operations
type ScheduleStore interface {
	// CreateScheduleEvent records a calendar event.
	CreateScheduleEvent(event *model.ScheduleEvent) error

	// ListScheduleEvents returns the user's events starting within
	// [from, to), soonest first.
	ListScheduleEvents(userID uuid.UUID, from, to time.Time) ([]model.ScheduleEvent, error)

	// DeleteScheduleEvent removes an event.
	// Returns ErrScheduleEventNotFound if it doesn't exist or isn't the user's.
	DeleteScheduleEvent(userID, eventID uuid.UUID) error

	// CreateStudySession records a study session.
	CreateStudySession(session *model.StudySession) error

	// ListStudySessions returns sessions started at or after since,
	// newest first.
	ListStudySessions(userID uuid.UUID, since time.Time) ([]model.StudySession, error)

	// CreateReminder records a reminder.
	CreateReminder(reminder *model.Reminder) error

	// ListReminders returns the user's reminders that are not dismissed,
	// soonest first.
	ListReminders(userID uuid.UUID) ([]model.Reminder, error)

	// DismissReminder marks a reminder dismissed.
	// Returns ErrReminderNotFound if it doesn't exist or isn't the user's.
	DismissReminder(userID, reminderID uuid.UUID) error

	// CreateNotification records a notification.
	CreateNotification(notification *model.Notification) error

	// ListNotifications returns the user's notifications, newest first.
	// With unreadOnly set, read notifications are excluded.
	ListNotifications(userID uuid.UUID, unreadOnly bool) ([]model.Notification, error)

	// MarkNotificationRead marks a notification read.
	// Returns ErrNotificationNotFound if it doesn't exist or isn't the user's.
	MarkNotificationRead(userID, notificationID uuid.UUID) error
}
