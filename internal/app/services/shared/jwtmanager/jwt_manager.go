package jwtmanager

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"vasavimart-service/internal/app/config"

	"github.com/golang-jwt/jwt/v4"
)

// ErrTokenInvalid covers tampered, malformed and expired tokens alike.
// Callers only branch on valid/invalid; the cause stays in logs.
var ErrTokenInvalid = errors.New("token is invalid or expired")

const (
	tokenKindChallenge = "otp_challenge"
	tokenKindLogin     = "login"
)

// ChallengeClaims is the full server-side state of an outstanding OTP
// challenge; nothing is persisted.
type ChallengeClaims struct {
	SessionID   string
	PhoneNumber string
	Username    string
}

type LoginClaims struct {
	UserID      string
	PhoneNumber string
	Username    string
}

// JWTManager mints and verifies the two credential kinds with a shared
// HS256 secret. Expiry is checked explicitly on top of signature
// verification so an expired-but-authentic token can never pass.
type JWTManager struct {
	secret       []byte
	challengeTTL time.Duration
	loginTTL     time.Duration
	now          func() time.Time
}

func NewJWTManager(internalConfig *config.InternalConfig) *JWTManager {
	return &JWTManager{
		secret:       []byte(internalConfig.JWT.Secret),
		challengeTTL: time.Duration(internalConfig.JWT.ChallengeExpTimeInMinutes) * time.Minute,
		loginTTL:     time.Duration(internalConfig.JWT.LoginExpTimeInDays) * 24 * time.Hour,
		now:          time.Now,
	}
}

func (j *JWTManager) MintChallengeToken(claims *ChallengeClaims) (string, error) {
	if strings.TrimSpace(claims.SessionID) == "" {
		return "", fmt.Errorf("session id is required")
	}
	now := j.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind":        tokenKindChallenge,
		"sessionId":   claims.SessionID,
		"phoneNumber": claims.PhoneNumber,
		"username":    claims.Username,
		"iat":         now.Unix(),
		"exp":         now.Add(j.challengeTTL).Unix(),
	})
	return token.SignedString(j.secret)
}

func (j *JWTManager) MintLoginToken(claims *LoginClaims) (string, error) {
	now := j.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind":        tokenKindLogin,
		"userId":      claims.UserID,
		"phoneNumber": claims.PhoneNumber,
		"username":    claims.Username,
		"iat":         now.Unix(),
		"exp":         now.Add(j.loginTTL).Unix(),
	})
	return token.SignedString(j.secret)
}

func (j *JWTManager) VerifyChallengeToken(tokenString string) (*ChallengeClaims, error) {
	claims, err := j.verify(tokenString, tokenKindChallenge)
	if err != nil {
		return nil, err
	}
	out := &ChallengeClaims{
		SessionID:   claimString(claims, "sessionId"),
		PhoneNumber: claimString(claims, "phoneNumber"),
		Username:    claimString(claims, "username"),
	}
	if out.SessionID == "" || out.PhoneNumber == "" {
		return nil, ErrTokenInvalid
	}
	return out, nil
}

func (j *JWTManager) VerifyLoginToken(tokenString string) (*LoginClaims, error) {
	claims, err := j.verify(tokenString, tokenKindLogin)
	if err != nil {
		return nil, err
	}
	out := &LoginClaims{
		UserID:      claimString(claims, "userId"),
		PhoneNumber: claimString(claims, "phoneNumber"),
		Username:    claimString(claims, "username"),
	}
	if out.PhoneNumber == "" {
		return nil, ErrTokenInvalid
	}
	return out, nil
}

func (j *JWTManager) verify(tokenString, expectedKind string) (jwt.MapClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrTokenInvalid
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	// Expiry is enforced here regardless of what the parser already did: a
	// missing exp claim is treated as expired.
	exp, ok := claims["exp"].(float64)
	if !ok || j.now().UTC().Unix() >= int64(exp) {
		return nil, ErrTokenInvalid
	}

	if claimString(claims, "kind") != expectedKind {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
