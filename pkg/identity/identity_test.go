package identity

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_WithRemoteIP(t *testing.T) {
	id := &Identity{
		UserID: uuid.MustParse("6f1c7a2e-9b0d-4a3e-8f21-0123456789ab"),
		Email:  "alice@example.edu",
	}

	ip := net.ParseIP("192.168.1.100")
	id.WithRemoteIP(ip)

	assert.Equal(t, ip, id.RemoteIP)
}

func TestContextGetSet(t *testing.T) {
	ctx := context.Background()

	// Initially no identity
	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)

	expected := &Identity{
		UserID:    uuid.MustParse("6f1c7a2e-9b0d-4a3e-8f21-0123456789ab"),
		Email:     "alice@example.edu",
		Role:      "authenticated",
		IssuedAt:  time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	ctx = Set(ctx, expected)

	id, ok = Get(ctx)
	assert.True(t, ok)
	require.NotNil(t, id)
	assert.Equal(t, expected.UserID, id.UserID)
	assert.Equal(t, expected.Email, id.Email)
	assert.Equal(t, expected.Role, id.Role)
}

func TestContextGetWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), Key, "not an identity")

	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)
}
