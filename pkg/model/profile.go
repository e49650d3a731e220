package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the auth user record. Rows are provisioned lazily from
// the session claims the first time an authenticated user writes anything.
type Profile struct {
	ID          uuid.UUID `gorm:"primaryKey" json:"id"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Timezone    string    `json:"timezone"`
	Preferences json.RawMessage `gorm:"type:jsonb" json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p Profile) TableName() string {
	return "profiles"
}
