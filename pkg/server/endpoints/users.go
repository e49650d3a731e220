package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/easeboard/easeboard/pkg/identity"
	"github.com/easeboard/easeboard/pkg/server"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// ProfileUpdateRequest is the body of PUT /api/v1/users/me.
// Absent fields are left unchanged.
type ProfileUpdateRequest struct {
	FullName    *string         `json:"full_name"`
	AvatarURL   *string         `json:"avatar_url" validate:"omitempty,url"`
	Timezone    *string         `json:"timezone"`
	Preferences json.RawMessage `json:"preferences"`
}

// RegisterUsersEndpoints registers the profile endpoints
func RegisterUsersEndpoints(s *server.Server) {
	profilesStore := s.ProfilesStore

	usersRouter := s.Router.PathPrefix("/api/v1/users").Subrouter()
	usersRouter.Use(s.SessionAuth.Middleware)

	// GET /api/v1/users/me - Fetch own profile
	usersRouter.HandleFunc("/me", handleGetProfile(profilesStore)).Methods("GET")

	// PUT /api/v1/users/me - Update own profile
	usersRouter.HandleFunc("/me", handleUpdateProfile(profilesStore)).Methods("PUT")
}

func handleGetProfile(profilesStore store.ProfilesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		// First contact provisions the row from the session claims
		profile, err := profilesStore.EnsureProfile(id.UserID, id.Email)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, profile)
	}
}

func handleUpdateProfile(profilesStore store.ProfilesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := profilesStore.EnsureProfile(id.UserID, id.Email); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		profile, err := profilesStore.UpdateProfile(id.UserID, store.ProfileUpdate{
			FullName:    req.FullName,
			AvatarURL:   req.AvatarURL,
			Timezone:    req.Timezone,
			Preferences: req.Preferences,
		})
		if err != nil {
			if errors.Is(err, store.ErrProfileNotFound) {
				respondWithError(w, http.StatusNotFound, "Profile not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, profile)
	}
}
