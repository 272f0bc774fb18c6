package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 12*time.Hour)

	token, err := svc.Generate("66f0a1b2c3d4e5f601234567", "dhanush")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "66f0a1b2c3d4e5f601234567", userID)
}

func TestTokenExpiry(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate("66f0a1b2c3d4e5f601234567", "dhanush")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 12*time.Hour)
	verifier := NewTokenService("secret-b", 12*time.Hour)

	token, err := issuer.Generate("66f0a1b2c3d4e5f601234567", "dhanush")
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 12*time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
