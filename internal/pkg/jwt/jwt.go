package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrWrongTokenType = errors.New("unexpected token type")
	ErrMissingSubject = errors.New("token has no subject")
)

// Kind is the token type tag carried in the "type" claim.
type Kind string

const (
	KindAccess        Kind = "access"
	KindRefresh       Kind = "refresh"
	KindPasswordReset Kind = "password_reset"
)

// Claims represents the signed payload shared by all token kinds.
// Email is only set on password-reset tokens.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType Kind   `json:"type"`
	jwt.RegisteredClaims
}

// IssueAccessToken generates a new access token
func IssueAccessToken(userID uint, secret string, expiryMinutes int) (string, error) {
	return issue(KindAccess, userID, "", secret, time.Duration(expiryMinutes)*time.Minute)
}

// IssueRefreshToken generates a new refresh token
func IssueRefreshToken(userID uint, secret string, expiryDays int) (string, error) {
	return issue(KindRefresh, userID, "", secret, time.Duration(expiryDays)*24*time.Hour)
}

// IssuePasswordResetToken generates a password-reset token carrying the
// user's email alongside the id.
func IssuePasswordResetToken(userID uint, email, secret string, expiryHours int) (string, error) {
	return issue(KindPasswordReset, userID, email, secret, time.Duration(expiryHours)*time.Hour)
}

func issue(kind Kind, userID uint, email, secret string, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "estatehub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify validates a token string and returns its claims. Expiry is
// enforced here, and the "type" claim must match the expected kind —
// the failure reasons stay distinguishable via the sentinels.
func Verify(tokenString string, expected Kind, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.TokenType != expected {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == 0 {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
