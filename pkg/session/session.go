// Package session stores credentials for remote whiteboard servers.
//
// A [Session] pairs a server URL with the bearer token used for it and an
// expiry. The CLI saves one session per server on login and looks the
// token up again when a command runs with --server:
//
//	st, err := session.NewFileStore("")
//	sess := session.New("https://boards.example.com", token, session.DefaultTTL)
//	err = st.Set(ctx, sess)
//
//	sess, err = st.Get(ctx, session.IDFor("https://boards.example.com"))
//	if sess == nil {
//	    // Not logged in, or the session expired
//	}
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// DefaultTTL is how long a login lasts.
const DefaultTTL = 30 * 24 * time.Hour

// Session is a saved server login.
type Session struct {
	ID        string    `json:"id"`
	Server    string    `json:"server"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get returns the session, or nil, nil if it does not exist or has
	// expired.
	Get(ctx context.Context, id string) (*Session, error)

	Set(ctx context.Context, sess *Session) error

	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

// NormalizeServer trims trailing slashes so equivalent URLs share a session.
func NormalizeServer(server string) string {
	return strings.TrimRight(strings.TrimSpace(server), "/")
}

// IDFor derives the session id of a server URL.
func IDFor(server string) string {
	sum := sha256.Sum256([]byte(NormalizeServer(server)))
	return hex.EncodeToString(sum[:8])
}

// New creates a session for server valid for ttl.
func New(server, token string, ttl time.Duration) *Session {
	now := time.Now()
	server = NormalizeServer(server)
	return &Session{
		ID:        IDFor(server),
		Server:    server,
		Token:     token,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}
