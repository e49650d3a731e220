package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/vault"
)

const tokenSaltSize = 16

// CanvasConnection links a user to a Canvas instance. The API token is
// stored encrypted; the plaintext only lives in the Token field, which
// never reaches the database or JSON output.
type CanvasConnection struct {
	ID         uuid.UUID `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `json:"-"`
	CanvasURL  string    `json:"canvas_url"`
	CanvasName string    `json:"canvas_name"`

	// Token holds the plaintext API token between assignment and save,
	// and after a find. It is never persisted directly.
	Token string `gorm:"-" json:"-"`

	EncryptedToken []byte `gorm:"type:bytea" json:"-"`
	TokenSalt      []byte `gorm:"type:bytea" json:"-"`

	Status   ConnectionStatus `gorm:"type:text" json:"status"`
	LastSync *time.Time       `gorm:"column:last_sync" json:"last_sync"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c CanvasConnection) TableName() string {
	return "canvas_connections"
}

// BeforeSave encrypts the plaintext token. A fresh salt is drawn on every
// token change so re-connecting rotates the AAD as well.
func (c *CanvasConnection) BeforeSave(tx *gorm.DB) error {
	if c.Token == "" {
		return nil
	}

	cipher, err := cipherForDb(tx)
	if err != nil {
		return err
	}

	salt, err := vault.RandomBytes(tokenSaltSize)
	if err != nil {
		return err
	}

	encrypted, err := cipher.Encrypt(salt, []byte(c.Token))
	if err != nil {
		return fmt.Errorf("token encryption failed for connection id=%q", c.ID)
	}

	c.TokenSalt = salt
	c.EncryptedToken = encrypted
	return nil
}

func (c *CanvasConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AfterFind decrypts the stored token into the Token field.
func (c *CanvasConnection) AfterFind(tx *gorm.DB) error {
	if len(c.EncryptedToken) == 0 {
		return nil
	}

	cipher, err := cipherForDb(tx)
	if err != nil {
		return err
	}

	plain, err := cipher.Decrypt(c.TokenSalt, c.EncryptedToken)
	if err != nil {
		return fmt.Errorf("token decryption failed for connection id=%q", c.ID)
	}

	c.Token = string(plain)
	return nil
}
