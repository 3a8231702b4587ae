// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/models"
)

// SessionValidator validates an admin session token
type SessionValidator interface {
	ValidateSession(token string) error
}

// RequireAdmin rejects requests without a valid admin session cookie
func RequireAdmin(v SessionValidator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookieName)
		if err != nil || v.ValidateSession(cookie.Value) != nil {
			ErrorResponse(w, http.StatusUnauthorized, models.CodeUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}
