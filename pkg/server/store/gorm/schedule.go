package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Ensure ScheduleStore implements store.ScheduleStore
var _ store.ScheduleStore = (*ScheduleStore)(nil)

// ScheduleStore implements store.ScheduleStore using GORM
type ScheduleStore struct {
	db *gorm.DB
}

// NewScheduleStore creates a new ScheduleStore
func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// CreateScheduleEvent records a calendar event.
func (s *ScheduleStore) CreateScheduleEvent(event *model.ScheduleEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return s.db.Create(event).Error
}

// ListScheduleEvents returns the user's events starting within [from, to),
// soonest first.
func (s *ScheduleStore) ListScheduleEvents(userID uuid.UUID, from, to time.Time) ([]model.ScheduleEvent, error) {
	var events []model.ScheduleEvent
	tx := s.db.
		Where("user_id = ? AND starts_at >= ? AND starts_at < ?", userID, from, to).
		Order("starts_at asc").
		Find(&events)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return events, nil
}

// DeleteScheduleEvent removes an event.
func (s *ScheduleStore) DeleteScheduleEvent(userID, eventID uuid.UUID) error {
	tx := s.db.
		Where("id = ? AND user_id = ?", eventID, userID).
		Delete(&model.ScheduleEvent{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrScheduleEventNotFound
	}
	return nil
}

// CreateStudySession records a study session.
func (s *ScheduleStore) CreateStudySession(session *model.StudySession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return s.db.Create(session).Error
}

// ListStudySessions returns sessions started at or after since, newest first.
func (s *ScheduleStore) ListStudySessions(userID uuid.UUID, since time.Time) ([]model.StudySession, error) {
	var sessions []model.StudySession
	tx := s.db.
		Where("user_id = ? AND started_at >= ?", userID, since).
		Order("started_at desc").
		Find(&sessions)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return sessions, nil
}

// CreateReminder records a reminder.
func (s *ScheduleStore) CreateReminder(reminder *model.Reminder) error {
	if reminder.ID == uuid.Nil {
		reminder.ID = uuid.New()
	}
	return s.db.Create(reminder).Error
}

// ListReminders returns the user's reminders that are not dismissed,
// soonest first.
func (s *ScheduleStore) ListReminders(userID uuid.UUID) ([]model.Reminder, error) {
	var reminders []model.Reminder
	tx := s.db.
		Where("user_id = ? AND dismissed = false", userID).
		Order("remind_at asc").
		Find(&reminders)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return reminders, nil
}

// DismissReminder marks a reminder dismissed.
func (s *ScheduleStore) DismissReminder(userID, reminderID uuid.UUID) error {
	tx := s.db.Model(&model.Reminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Update("dismissed", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrReminderNotFound
	}
	return nil
}

// CreateNotification records a notification.
func (s *ScheduleStore) CreateNotification(notification *model.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	return s.db.Create(notification).Error
}

// ListNotifications returns the user's notifications, newest first.
func (s *ScheduleStore) ListNotifications(userID uuid.UUID, unreadOnly bool) ([]model.Notification, error) {
	query := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = false")
	}

	var notifications []model.Notification
	tx := query.Order("created_at desc").Find(&notifications)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return notifications, nil
}

// MarkNotificationRead marks a notification read.
func (s *ScheduleStore) MarkNotificationRead(userID, notificationID uuid.UUID) error {
	tx := s.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotificationNotFound
	}
	return nil
}
