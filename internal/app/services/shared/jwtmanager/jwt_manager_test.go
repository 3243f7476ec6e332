package jwtmanager

import (
	"testing"
	"time"
	"vasavimart-service/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *JWTManager {
	return NewJWTManager(&config.InternalConfig{
		JWT: config.JWT{
			Secret:                    "test-secret",
			ChallengeExpTimeInMinutes: 10,
			LoginExpTimeInDays:        180,
		},
	})
}

func TestChallengeTokenRoundTrip(t *testing.T) {
	manager := newTestManager()

	token, err := manager.MintChallengeToken(&ChallengeClaims{
		SessionID:   "session-abc",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	claims, err := manager.VerifyChallengeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "session-abc", claims.SessionID)
	assert.Equal(t, "+919876543210", claims.PhoneNumber)
	assert.Equal(t, "ravi", claims.Username)
}

func TestLoginTokenRoundTrip(t *testing.T) {
	manager := newTestManager()

	token, err := manager.MintLoginToken(&LoginClaims{
		UserID:      "user-1",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	claims, err := manager.VerifyLoginToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "+919876543210", claims.PhoneNumber)
	assert.Equal(t, "ravi", claims.Username)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	manager := newTestManager()

	challengeToken, err := manager.MintChallengeToken(&ChallengeClaims{
		SessionID:   "session-abc",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	loginToken, err := manager.MintLoginToken(&LoginClaims{
		UserID:      "user-1",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	_, err = manager.VerifyLoginToken(challengeToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = manager.VerifyChallengeToken(loginToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiredChallengeTokenIsRejected(t *testing.T) {
	manager := newTestManager()

	token, err := manager.MintChallengeToken(&ChallengeClaims{
		SessionID:   "session-abc",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	manager.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	_, err = manager.VerifyChallengeToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestLoginTokenLongExpiry(t *testing.T) {
	manager := newTestManager()

	token, err := manager.MintLoginToken(&LoginClaims{
		UserID:      "user-1",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	// Still valid just short of the retention window, then expired past it.
	manager.now = func() time.Time { return time.Now().Add(179 * 24 * time.Hour) }
	_, err = manager.VerifyLoginToken(token)
	assert.NoError(t, err)

	manager.now = func() time.Time { return time.Now().Add(181 * 24 * time.Hour) }
	_, err = manager.VerifyLoginToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	manager := newTestManager()

	token, err := manager.MintLoginToken(&LoginClaims{
		UserID:      "user-1",
		PhoneNumber: "+919876543210",
		Username:    "ravi",
	})
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = manager.VerifyLoginToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = manager.VerifyLoginToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	otherManager := NewJWTManager(&config.InternalConfig{
		JWT: config.JWT{Secret: "other-secret", ChallengeExpTimeInMinutes: 10, LoginExpTimeInDays: 180},
	})
	_, err = otherManager.VerifyLoginToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
