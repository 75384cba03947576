package models

import (
	"time"

	"github.com/google/uuid"
)

// ReceivedAnnouncement marks that a user has permanently accepted an
// announcement outside its original geofence window (mule delivery or
// peer gossip). Rows are monotonic: created once, never duplicated,
// never deleted by the engine.
type ReceivedAnnouncement struct {
	UserID         uuid.UUID `bun:",pk,type:uuid"`
	AnnouncementID uuid.UUID `bun:",pk,type:uuid"`

	Announcement *Announcement `bun:"rel:belongs-to,join:announcement_id=id"`

	ReceivedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
