package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/model"
	"github.com/easeboard/easeboard/pkg/server/store"
)

// Ensure ProfilesStore implements store.ProfilesStore
var _ store.ProfilesStore = (*ProfilesStore)(nil)

// ProfilesStore implements store.ProfilesStore using GORM
type ProfilesStore struct {
	db *gorm.DB
}

// NewProfilesStore creates a new ProfilesStore
func NewProfilesStore(db *gorm.DB) *ProfilesStore {
	return &ProfilesStore{db: db}
}

// EnsureProfile returns the profile for the user, creating it from the
// session claims on first contact. Every table hangs off profiles, so
// connection setup and the profile endpoints call this before writing.
func (s *ProfilesStore) EnsureProfile(userID uuid.UUID, email string) (*model.Profile, error) {
	profile := model.Profile{
		ID:          userID,
		Email:       email,
		Timezone:    "UTC",
		Preferences: []byte("{}"),
	}
	tx := s.db.Where("id = ?", userID).FirstOrCreate(&profile)
	if tx.Error != nil {
		// A concurrent first request may have inserted the row between
		// the lookup and the create
		return s.FetchProfile(userID)
	}
	return &profile, nil
}

// FetchProfile retrieves a profile by user id.
func (s *ProfilesStore) FetchProfile(userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	tx := s.db.Where("id = ?", userID).First(&profile)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrProfileNotFound
		}
		return nil, tx.Error
	}
	return &profile, nil
}

// UpdateProfile applies the non-nil fields of the update.
func (s *ProfilesStore) UpdateProfile(userID uuid.UUID, update store.ProfileUpdate) (*model.Profile, error) {
	updates := map[string]interface{}{}
	if update.FullName != nil {
		updates["full_name"] = *update.FullName
	}
	if update.AvatarURL != nil {
		updates["avatar_url"] = *update.AvatarURL
	}
	if update.Timezone != nil {
		updates["timezone"] = *update.Timezone
	}
	if update.Preferences != nil {
		updates["preferences"] = []byte(update.Preferences)
	}

	if len(updates) > 0 {
		tx := s.db.Model(&model.Profile{}).Where("id = ?", userID).Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, store.ErrProfileNotFound
		}
	}

	return s.FetchProfile(userID)
}
