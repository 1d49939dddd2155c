// Package session holds the signed-in identity and the analytics sink for the
// lifetime of one agent run.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("session closed")

// Recorder receives analytics events.
type Recorder interface {
	Record(ctx context.Context, name string, attrs ...slog.Attr)
}

type Credentials struct {
	User  string
	Token string
}

type Session struct {
	log   *slog.Logger
	id    uuid.UUID
	creds Credentials

	mu     sync.Mutex
	closed bool
	events int
}

// Open starts a session. Empty credentials give an anonymous session that
// sends no Authorization header.
func Open(log *slog.Logger, creds Credentials) *Session {
	s := &Session{
		id:    uuid.New(),
		creds: creds,
	}
	s.log = log.With(slog.String("session_id", s.id.String()))

	s.log.Info("session opened", slog.String("user", s.user()))

	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) user() string {
	if s.creds.User == "" {
		return "anonymous"
	}
	return s.creds.User
}

// Token implements backend.TokenSource.
func (s *Session) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrClosed
	}

	return s.creds.Token, nil
}

// Record logs an analytics event. Events after Close are dropped.
func (s *Session) Record(ctx context.Context, name string, attrs ...slog.Attr) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.events++
	s.mu.Unlock()

	s.log.LogAttrs(ctx, slog.LevelInfo, "analytics event", append([]slog.Attr{slog.String("event", name)}, attrs...)...)
}

// Events returns the number of recorded events.
func (s *Session) Events() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.events
}

// Close ends the session. Calling it again is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.log.Info("session closed", slog.Int("events", s.events))

	return nil
}
