package canvas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-token", Options{
		RateLimit:     1000,
		RetryAttempts: 3,
	})
	// No real waits between retries in tests
	client.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	return client, server
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotAgent string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode([]Course{})
	}))

	_, err := client.Courses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "EaseBoard-Canvas-Integration/1.0", gotAgent)
}

func TestClientStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrInvalidToken},
		{"forbidden", http.StatusForbidden, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := client.Courses(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientNotFoundIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	courses, err := client.Courses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)

	assignments, err := client.CourseAssignments(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestClientRetriesRateLimit(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode([]Course{{ID: 1, Name: "Biology"}})
	}))

	courses, err := client.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientExhaustsRetries(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Courses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientCoursesParams(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "active", q.Get("enrollment_state"))
		assert.Equal(t, "100", q.Get("per_page"))
		json.NewEncoder(w).Encode([]Course{})
	}))

	_, err := client.Courses(context.Background())
	require.NoError(t, err)
}

func TestClientAssignmentsIncludeSubmission(t *testing.T) {
	submittedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/7/assignments", r.URL.Path)
		assert.Equal(t, "submission", r.URL.Query().Get("include[]"))
		json.NewEncoder(w).Encode([]Assignment{
			{ID: 101, Name: "Essay", Submission: &Submission{SubmittedAt: &submittedAt}},
		})
	}))

	assignments, err := client.CourseAssignments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, assignments, 1)

	// Course id is stamped from the request, Canvas omits it here
	assert.Equal(t, int64(7), assignments[0].CourseID)
	require.NotNil(t, assignments[0].SubmittedAt())
	assert.Equal(t, submittedAt, *assignments[0].SubmittedAt())
	assert.Nil(t, assignments[0].GradedAt())
}

func TestValidate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/users/self", r.URL.Path)
			json.NewEncoder(w).Encode(User{ID: 9, Name: "Alice"})
		}))

		result := client.Validate(context.Background())
		assert.True(t, result.Valid)
		require.NotNil(t, result.User)
		assert.Equal(t, "Alice", result.User.Name)
	})

	t.Run("rejected token", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		result := client.Validate(context.Background())
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.ErrorMessage)
	})
}
