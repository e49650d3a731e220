package sync

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
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCacheStore) ListAssignments(userID uuid.UUID, filter store.AssignmentFilter) ([]model.Assignment, error) {
	args := m.Called(userID, filter)
	return args.Get(0).([]model.Assignment), args.Error(1)
}

func (m *MockCacheStore) ListGrades(userID uuid.UUID, courseID *uuid.UUID) ([]model.Grade, error) {
	args := m.Called(userID, courseID)
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
	return args.Get(0).([]model.SyncLog), args.Error(1)
}
