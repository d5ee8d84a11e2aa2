package usecases

import (
	"sync"

	"snippets/internal/domain"
)

// Session holds the two active identities: one timelines are read from and
// one posts are published to. Until a publishing identity is set, writes go
// to the timeline identity.
type Session struct {
	mu            sync.RWMutex
	timeline      domain.Identity
	publishing    domain.Identity
	hasPublishing bool
}

// NewSession creates a session reading from timeline.
func NewSession(timeline domain.Identity) *Session {
	return &Session{timeline: timeline}
}

// Timeline returns the identity reads go to.
func (s *Session) Timeline() domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeline
}

// Publishing returns the identity writes go to.
func (s *Session) Publishing() domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasPublishing {
		return s.timeline
	}
	return s.publishing
}

// SetTimeline replaces the timeline identity.
func (s *Session) SetTimeline(id domain.Identity) {
	s.mu.Lock()
	s.timeline = id
	s.mu.Unlock()
}

// SetPublishing replaces the publishing identity.
func (s *Session) SetPublishing(id domain.Identity) {
	s.mu.Lock()
	s.publishing = id
	s.hasPublishing = true
	s.mu.Unlock()
}

// ResetPublishing makes writes follow the timeline identity again.
func (s *Session) ResetPublishing() {
	s.mu.Lock()
	s.publishing = domain.Identity{}
	s.hasPublishing = false
	s.mu.Unlock()
}

// Identities returns both slots with secrets masked.
func (s *Session) Identities() (timeline, publishing domain.Identity) {
	return s.Timeline().Redacted(), s.Publishing().Redacted()
}
