// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package session scopes the state of one loading run. Everything that would
// otherwise be process-wide, such as the shared context registry, lives on a
// Session and is dropped when the session is closed.
package session

import (
	"context"
	"time"

	"github.com/specialistvlad/hclspec/internal/ctxlog"
	"github.com/specialistvlad/hclspec/internal/declare"
)

// Session is the state shared by the collector and the loader during a run.
type Session struct {
	started time.Time
	shared  *declare.SharedRegistry
	closed  bool
}

// New creates a session with an empty shared context registry.
func New(ctx context.Context) *Session {
	ctxlog.FromContext(ctx).Debug("Loading session opened.")
	return &Session{
		started: time.Now(),
		shared:  declare.NewSharedRegistry(),
	}
}

// Shared returns the session's shared context registry.
func (s *Session) Shared() *declare.SharedRegistry {
	return s.shared
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Close tears the session down. Registrations do not survive it, so a
// long-lived process can start a fresh run without leaking shared contexts.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Loading session closed.",
		"shared_contexts", s.shared.Len(),
		"duration", time.Since(s.started),
	)
	s.shared.Reset()
	s.closed = true
	return nil
}
