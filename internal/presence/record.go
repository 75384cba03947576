package presence

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PresenceRecord is a user's most recent location fix: GPS coordinate,
// network identifiers, or both. A single mutable row per user,
// overwritten on every update; no history and no expiry, staleness
// detection is left to callers.
type PresenceRecord struct {
	UserID      uuid.UUID `json:"userId"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Identifiers []string  `json:"identifiers,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasCoordinates reports whether the fix carries a usable GPS position.
func (p *PresenceRecord) HasCoordinates() bool {
	return p != nil && p.Latitude != nil && p.Longitude != nil
}

type PresenceStore interface {
	// Upsert atomically replaces the user's presence row.
	Upsert(ctx context.Context, record *PresenceRecord) error

	// Get returns the latest fix, ErrPresenceNotFound when the user has
	// never reported one.
	Get(ctx context.Context, userID uuid.UUID) (*PresenceRecord, error)
}
