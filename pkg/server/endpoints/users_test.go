package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("existing", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		fullName := "Alice Park"
		stores.Profiles.On("EnsureProfile", userID, "student@example.edu").Return(&model.Profile{
			ID:       userID,
			Email:    "student@example.edu",
			FullName: &fullName,
			Timezone: "America/Chicago",
		}, nil)

		rec := doRequest(t, srv, userID, "GET", "/api/v1/users/me", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var profile model.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "student@example.edu", profile.Email)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Alice Park", *profile.FullName)
	})

	t.Run("provisioned on first contact", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		stores.Profiles.On("EnsureProfile", userID, "student@example.edu").Return(&model.Profile{
			ID:       userID,
			Email:    "student@example.edu",
			Timezone: "UTC",
		}, nil)

		rec := doRequest(t, srv, userID, "GET", "/api/v1/users/me", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var profile model.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, userID, profile.ID)
		assert.Equal(t, "student@example.edu", profile.Email)
		stores.Profiles.AssertExpectations(t)
	})
}

func TestUpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		srv, stores := newTestServer(t, nil)
		timezone := "Europe/Berlin"
		stores.Profiles.On("EnsureProfile", userID, "student@example.edu").
			Return(&model.Profile{ID: userID, Email: "student@example.edu"}, nil)
		stores.Profiles.On("UpdateProfile", userID, mock.MatchedBy(func(u store.ProfileUpdate) bool {
			return u.FullName == nil && u.Timezone != nil && *u.Timezone == timezone
		})).Return(&model.Profile{ID: userID, Timezone: timezone}, nil)

		rec := doRequest(t, srv, userID, "PUT", "/api/v1/users/me", `{"timezone":"Europe/Berlin"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var profile model.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, timezone, profile.Timezone)
	})

	t.Run("bad avatar url", func(t *testing.T) {
		srv, _ := newTestServer(t, nil)

		rec := doRequest(t, srv, userID, "PUT", "/api/v1/users/me", `{"avatar_url":"not a url"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
