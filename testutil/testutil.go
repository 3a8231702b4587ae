// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/db"
	"github.com/danielhkuo/gift-draw/roster"
)

// SetupTestDB opens a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	conn, err := db.Open(context.Background(), db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a SQLStore over a fresh test database. The store
// is closed when the test finishes.
func SetupTestStore(t *testing.T) *roster.SQLStore {
	t.Helper()

	store := roster.NewSQLStore(SetupTestDB(t))
	t.Cleanup(func() { store.Close(context.Background()) })
	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		AdminPassword: "test-admin-password",
		SessionSecret: "test-session-secret",
		LogLevel:      "debug",
		Env:           "dev",
		CORSOrigins:   []string{"http://localhost:5173"},
	}
}

// SeedRoster replaces the roster with the given names, ids 1..N in order
func SeedRoster(t *testing.T, store roster.Store, names ...string) {
	t.Helper()

	if _, err := store.ReplaceAll(context.Background(), names); err != nil {
		t.Fatalf("Failed to seed roster: %v", err)
	}
}

// Names returns n distinct participant names
func Names(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "Participant" + string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	return names
}

// AdminCookie returns a valid admin session cookie for cfg
func AdminCookie(t *testing.T, cfg cliparse.Config) *http.Cookie {
	t.Helper()

	a := auth.NewAdminAuth(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionSecret)
	token, _, err := a.IssueSession()
	if err != nil {
		t.Fatalf("Failed to issue admin session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
