package session

import (
	"context"
	"time"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
)

// Session is the server-held state of one browser.
type Session struct {
	ID         string        `json:"id"`
	Profile    model.Profile `json:"profile"`
	SavedCrops []string      `json:"saved_crops,omitempty"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Visitor resolves the profile with defaults for handlers.
func (s *Session) Visitor() model.Visitor {
	v := s.Profile.Resolve(model.DefaultVisitor)
	v.SavedCrops = append([]string(nil), s.SavedCrops...)
	return v
}

// SaveCrop remembers a crop once; it reports whether the list changed.
func (s *Session) SaveCrop(name string) bool {
	for _, c := range s.SavedCrops {
		if c == name {
			return false
		}
	}
	s.SavedCrops = append(s.SavedCrops, name)
	return true
}

// Store keeps sessions for a sliding inactivity window.
type Store interface {
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)
	// Save writes the session and restarts its expiry.
	Save(ctx context.Context, s Session) error
	// Touch restarts the expiry without rewriting the session.
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
