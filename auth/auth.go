// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrInvalidSession  = errors.New("invalid admin session")
)

const (
	// SessionCookieName is the cookie carrying the signed admin session
	SessionCookieName = "admin_session"
	// SessionTTL is how long an admin stays logged in
	SessionTTL = 7 * 24 * time.Hour

	adminSubject = "admin"
	issuer       = "gift-draw"
)

// AdminAuth checks the admin password and issues signed session tokens
type AdminAuth struct {
	password     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAdminAuth builds an AdminAuth. A non-empty bcrypt passwordHash takes
// precedence over the plain password.
func NewAdminAuth(password, passwordHash, secret string) *AdminAuth {
	a := &AdminAuth{
		password: password,
		secret:   []byte(secret),
		ttl:      SessionTTL,
		now:      time.Now,
	}
	if passwordHash != "" {
		a.passwordHash = []byte(passwordHash)
	}
	return a
}

// CheckPassword validates the admin password
func (a *AdminAuth) CheckPassword(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if a.passwordHash != nil {
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
			return ErrInvalidPassword
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// IssueSession signs a new admin session token and returns its expiry
func (a *AdminAuth) IssueSession() (string, time.Time, error) {
	now := a.now()
	expires := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return token, expires, nil
}

// ValidateSession checks signature, expiry and subject of a session token
func (a *AdminAuth) ValidateSession(token string) error {
	if token == "" {
		return ErrInvalidSession
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(adminSubject),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidSession
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
