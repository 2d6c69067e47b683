// Package session implements the mocked authentication layer: any
// email/password pair logs in, and the signed token only carries identity so
// stateful routes can find the caller's stored record.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"platewise/internal/prefs"
)

// User is the session-scoped account identity.
type User struct {
	ID          string                 `json:"id"`
	Email       string                 `json:"email"`
	Name        string                 `json:"name"`
	Preferences *prefs.UserPreferences `json:"preferences,omitempty"`
}

// userNamespace keys deterministic user ids off email addresses, so logging
// in twice with the same email resolves to the same stored record.
var userNamespace = uuid.MustParse("9f2c1d6e-4a31-4b27-9c55-7d8e12a0f3b4")

// NewUser builds the user record for an email. When name is empty the local
// part of the email is used, matching the login flow.
func NewUser(email, name string) User {
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	return User{
		ID:    uuid.NewSHA1(userNamespace, []byte(strings.ToLower(email))).String(),
		Email: email,
		Name:  name,
	}
}

// Manager mints and verifies session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager signing with the given secret.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the user.
func (m *Manager) Issue(user User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the identity it carries.
func (m *Manager) Verify(tokenString string) (User, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return User{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid || c.Subject == "" {
		return User{}, fmt.Errorf("invalid session token")
	}
	return User{ID: c.Subject, Email: c.Email, Name: c.Name}, nil
}
