// File: /auth/tokens.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ryanneekidev/rline-backend/models"
)

var (
	// ErrNoToken is returned when a request carries no bearer token at all.
	ErrNoToken = errors.New("no access token provided")
	// ErrInvalidToken covers every verification failure: bad signature,
	// malformed token or expiry. Callers never learn which one it was.
	ErrInvalidToken = errors.New("token is invalid or has expired")
)

// Claims is the identity claim set embedded in both access and refresh
// tokens. Both issuance paths share it so the payload shapes cannot drift.
type Claims struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and refresh tokens. The two token
// classes use independent secrets and independent lifetimes, so rotating the
// refresh secret invalidates long-lived sessions without touching access
// tokens already in flight.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func newClaims(user *models.User, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		JoinedAt: user.JoinedAt,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// IssueAccess mints a short-lived access token for the user.
func (tm *TokenManager) IssueAccess(user *models.User) (string, error) {
	return tm.sign(newClaims(user, tm.accessTTL), tm.accessSecret)
}

// IssueRefresh mints a long-lived refresh token for the user.
func (tm *TokenManager) IssueRefresh(user *models.User) (string, error) {
	return tm.sign(newClaims(user, tm.refreshTTL), tm.refreshSecret)
}

// Reissue mints a fresh access token from claims recovered out of a refresh
// token. The credential store is never consulted.
func (tm *TokenManager) Reissue(claims *Claims) (string, error) {
	user := models.User{
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		JoinedAt: claims.JoinedAt,
		Role:     claims.Role,
	}
	return tm.IssueAccess(&user)
}

// ParseAccess verifies a token against the access secret.
func (tm *TokenManager) ParseAccess(token string) (*Claims, error) {
	return tm.parse(token, tm.accessSecret)
}

// ParseRefresh verifies a token against the refresh secret.
func (tm *TokenManager) ParseRefresh(token string) (*Claims, error) {
	return tm.parse(token, tm.refreshSecret)
}

func (tm *TokenManager) sign(claims *Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (tm *TokenManager) parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// FromBearer extracts the token from an Authorization header value. It is a
// pure function so the access guard can be tested without any transport.
func FromBearer(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrNoToken
	}
	return parts[1], nil
}
