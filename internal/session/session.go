/* Signed session tokens: which profile the visitor submitted last */

package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"time"

	"nutriguide/internal/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	issuer = "nutriguide"
	// DefaultTTL is how long a dashboard session stays valid.
	DefaultTTL = 24 * time.Hour
)

var ErrInvalidSession = errors.New("invalid session")

// Session binds a visitor to the profile they submitted.
type Session struct {
	ID        string    `json:"id"`
	ProfileID int64     `json:"profile_id"`
	Name      string    `json:"name"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Claims is the JWT payload; the subject carries the profile id.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens with an HMAC key.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewManager uses secret as the signing key. An empty secret gets a random
// key, so sessions do not survive a restart.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("session.NewManager(): generate key: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue creates a session for p and returns its signed token.
func (m *Manager) Issue(p models.Profile) (string, Session, error) {
	now := m.now().UTC().Truncate(time.Second)
	s := Session{
		ID:        uuid.New().String(),
		ProfileID: p.ID,
		Name:      p.Name,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}
	claims := &Claims{
		Name: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   strconv.FormatInt(p.ID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.key)
	if err != nil {
		return "", Session{}, fmt.Errorf("session.Issue(): sign: %w", err)
	}
	return tokenString, s, nil
}

// Resolve verifies tokenString and returns the session it carries.
func (m *Manager) Resolve(tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, ErrInvalidSession
	}
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid || claims.Issuer != issuer {
		return Session{}, ErrInvalidSession
	}

	profileID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || profileID <= 0 {
		return Session{}, fmt.Errorf("%w: bad subject %q", ErrInvalidSession, claims.Subject)
	}

	s := Session{
		ID:        claims.ID,
		ProfileID: profileID,
		Name:      claims.Name,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return s, nil
}
