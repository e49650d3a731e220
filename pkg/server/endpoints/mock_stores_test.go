package endpoints

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// MockConnectionsStore implements store.ConnectionsStore for testing using testify/mock
type MockConnectionsStore struct {
	mock.Mock
}

func NewMockConnectionsStore() *MockConnectionsStore {
	return &MockConnectionsStore{}
}

func (m *MockConnectionsStore) UpsertConnection(userID uuid.UUID, canvasURL, canvasName, token string) (*model.CanvasConnection, error) {
	args := m.Called(userID, canvasURL, canvasName, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CanvasConnection), args.Error(1)
}

func (m *MockConnectionsStore) ListConnections(userID uuid.UUID) ([]model.CanvasConnection, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CanvasConnection), args.Error(1)
}

func (m *MockConnectionsStore) FetchConnection(userID, connectionID uuid.UUID) (*model.CanvasConnection, error) {
	args := m.Called(userID, connectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CanvasConnection), args.Error(1)
}

func (m *MockConnectionsStore) DeleteConnection(userID, connectionID uuid.UUID) error {
	args := m.Called(userID, connectionID)
	return args.Error(0)
}

func (m *MockConnectionsStore) SetConnectionStatus(connectionID uuid.UUID, status model.ConnectionStatus) error {
	args := m.Called(connectionID, status)
	return args.Error(0)
}

func (m *MockConnectionsStore) ListStaleConnections(cutoff time.Time) ([]model.CanvasConnection, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CanvasConnection), args.Error(1)
}

// MockCacheStore implements store.CacheStore for testing using testify/mock
type MockCacheStore struct {
	mock.Mock
}

func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{}
}

func (m *MockCacheStore) ApplySyncData(userID, connectionID uuid.UUID, data store.SyncData) (int, error) {
	args := m.Called(userID, connectionID, data)
	return args.Int(0), args.Error(1)
}

func (m *MockCacheStore) ListCourses(userID uuid.UUID) ([]model.Course, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCacheStore) ListAssignments(userID uuid.UUID, filter store.AssignmentFilter) ([]model.Assignment, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

func (m *MockCacheStore) ListGrades(userID uuid.UUID, courseID *uuid.UUID) ([]model.Grade, error) {
	args := m.Called(userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Grade), args.Error(1)
}

func (m *MockCacheStore) ListCachedAssignments(connectionID uuid.UUID) ([]model.Assignment, error) {
	args := m.Called(connectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

// MockSyncLogsStore implements store.SyncLogsStore for testing using testify/mock
type MockSyncLogsStore struct {
	mock.Mock
}

func NewMockSyncLogsStore() *MockSyncLogsStore {
	return &MockSyncLogsStore{}
}

func (m *MockSyncLogsStore) CreateSyncLog(userID, connectionID uuid.UUID, syncType string) (*model.SyncLog, error) {
	args := m.Called(userID, connectionID, syncType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SyncLog), args.Error(1)
}

func (m *MockSyncLogsStore) CompleteSyncLog(id uuid.UUID, itemsSynced int) error {
	args := m.Called(id, itemsSynced)
	return args.Error(0)
}

func (m *MockSyncLogsStore) FailSyncLog(id uuid.UUID, message string) error {
	args := m.Called(id, message)
	return args.Error(0)
}

func (m *MockSyncLogsStore) FetchSyncLog(userID, id uuid.UUID) (*model.SyncLog, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SyncLog), args.Error(1)
}

func (m *MockSyncLogsStore) ListRecentSyncLogs(userID uuid.UUID, limit int) ([]model.SyncLog, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SyncLog), args.Error(1)
}

// MockStatsStore implements store.StatsStore for testing using testify/mock
type MockStatsStore struct {
	mock.Mock
}

func NewMockStatsStore() *MockStatsStore {
	return &MockStatsStore{}
}

func (m *MockStatsStore) DashboardStats(userID uuid.UUID) (*store.DashboardStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.DashboardStats), args.Error(1)
}

func (m *MockStatsStore) DueSoon(userID uuid.UUID, window time.Duration) ([]model.Assignment, error) {
	args := m.Called(userID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

// MockProfilesStore implements store.ProfilesStore for testing using testify/mock
type MockProfilesStore struct {
	mock.Mock
}

func NewMockProfilesStore() *MockProfilesStore {
	return &MockProfilesStore{}
}

func (m *MockProfilesStore) EnsureProfile(userID uuid.UUID, email string) (*model.Profile, error) {
	args := m.Called(userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfilesStore) FetchProfile(userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfilesStore) UpdateProfile(userID uuid.UUID, update store.ProfileUpdate) (*model.Profile, error) {
	args := m.Called(userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockScheduleStore implements store.ScheduleStore for testing using testify/mock
type MockScheduleStore struct {
	mock.Mock
}

func NewMockScheduleStore() *MockScheduleStore {
	return &MockScheduleStore{}
}

func (m *MockScheduleStore) CreateScheduleEvent(event *model.ScheduleEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockScheduleStore) ListScheduleEvents(userID uuid.UUID, from, to time.Time) ([]model.ScheduleEvent, error) {
	args := m.Called(userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScheduleEvent), args.Error(1)
}

func (m *MockScheduleStore) DeleteScheduleEvent(userID, eventID uuid.UUID) error {
	args := m.Called(userID, eventID)
	return args.Error(0)
}

func (m *MockScheduleStore) CreateStudySession(session *model.StudySession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockScheduleStore) ListStudySessions(userID uuid.UUID, since time.Time) ([]model.StudySession, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudySession), args.Error(1)
}

func (m *MockScheduleStore) CreateReminder(reminder *model.Reminder) error {
	args := m.Called(reminder)
	return args.Error(0)
}

func (m *MockScheduleStore) ListReminders(userID uuid.UUID) ([]model.Reminder, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reminder), args.Error(1)
}

func (m *MockScheduleStore) DismissReminder(userID, reminderID uuid.UUID) error {
	args := m.Called(userID, reminderID)
	return args.Error(0)
}

func (m *MockScheduleStore) CreateNotification(notification *model.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockScheduleStore) ListNotifications(userID uuid.UUID, unreadOnly bool) ([]model.Notification, error) {
	args := m.Called(userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockScheduleStore) MarkNotificationRead(userID, notificationID uuid.UUID) error {
	args := m.Called(userID, notificationID)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
