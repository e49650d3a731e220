package model

import (
	"errors"

	"gorm.io/gorm"

	"github.com/easeboard/easeboard/pkg/db"
	"github.com/easeboard/easeboard/pkg/vault"
)

// ErrNoCipher is returned by model hooks when the session carries no
// token vault cipher. Connections cannot be written or read without one.
var ErrNoCipher = errors.New("model: no cipher in database session")

func cipherForDb(tx *gorm.DB) (vault.Cipher, error) {
	cipher, ok := tx.Statement.Context.Value(db.CipherKey).(vault.Cipher)
	if !ok || cipher == nil {
		return nil, ErrNoCipher
	}
	return cipher, nil
}
