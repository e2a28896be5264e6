// Package auth implements the admin gate: a single config-supplied credential
// pair exchanged for a signed, time-bound bearer token, and the middleware
// that enforces the token on admin routes. Stateless — no session store, no
// lockout.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/ghuser/aquacatalog/pkg/config"
)

// Sentinel errors for the auth gate. Use errors.Is() to check these.
var (
	// ErrInvalidCredentials indicates a failed login. Deliberately carries no
	// detail about which part of the credential pair was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid indicates a missing, malformed, expired, or
	// badly-signed bearer token.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Service issues and verifies admin tokens against the configured credential
// pair. Safe for concurrent use.
type Service struct {
	username string
	password string
	secret   []byte
	tokenTTL time.Duration
}

// New returns a Service configured from cfg.
func New(cfg *config.Config) *Service {
	return &Service{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Login checks the credential pair in constant time and returns a signed
// token on success. Returns ErrInvalidCredentials otherwise.
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(username)
}

// Verify parses and validates a bearer token, returning its claims.
// Returns ErrTokenInvalid on any failure.
func (s *Service) Verify(token string) (*Claims, error) {
	return s.validateToken(token)
}
