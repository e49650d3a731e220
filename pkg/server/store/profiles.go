package store

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/model"
)

// ErrProfileNotFound is returned when a profile doesn't exist
var ErrProfileNotFound = errors.New("profile not found")

// ProfileUpdate holds the fields a user may change on their profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FullName    *string
	AvatarURL   *string
	Timezone    *string
	Preferences json.RawMessage
}

// ProfilesStore abstracts user profile storage operations
type ProfilesStore interface {
	// EnsureProfile returns the profile for the user, creating it from
	// the session claims on first contact.
	EnsureProfile(userID uuid.UUID, email string) (*model.Profile, error)

	// FetchProfile retrieves a profile by user id.
	// Returns ErrProfileNotFound if it doesn't exist.
	FetchProfile(userID uuid.UUID) (*model.Profile, error)

	// UpdateProfile applies the non-nil fields of the update.
	UpdateProfile(userID uuid.UUID, update ProfileUpdate) (*model.Profile, error)
}
