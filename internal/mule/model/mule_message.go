package models

import (
	"time"

	announcement "github.com/aleator1o/anunciosloc/internal/announcement/model"
	user "github.com/aleator1o/anunciosloc/internal/user/model"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusExpired   Status = "EXPIRED"
)

// Terminal states are never left.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusExpired
}

func (s Status) Active() bool {
	return s == StatusPending || s == StatusInTransit
}

// MuleMessage is one unit of custody: announcement X, carried by mule
// B, destined for user C. Mutated only through the coordinator's state
// machine; at most one active row may exist per
// (announcement, mule, destination) triple.
type MuleMessage struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	AnnouncementID uuid.UUID                  `bun:",notnull,type:uuid"`
	Announcement   *announcement.Announcement `bun:"rel:belongs-to,join:announcement_id=id"`

	MuleUserID uuid.UUID  `bun:",notnull,type:uuid"`
	MuleUser   *user.User `bun:"rel:belongs-to,join:mule_user_id=id"`

	DestinationUserID uuid.UUID  `bun:",notnull,type:uuid"`
	DestinationUser   *user.User `bun:"rel:belongs-to,join:destination_user_id=id"`

	Status Status `bun:",notnull,default:'PENDING'"`

	CreatedAt   time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	ExpiresAt   time.Time  `bun:",notnull"`
	DeliveredAt *time.Time `bun:",nullzero"`
}

// ExpiredBy reports whether custody has lapsed. Expiry is derived at
// read time; no sweeper rewrites rows in the background.
func (m *MuleMessage) ExpiredBy(now time.Time) bool {
	return now.After(m.ExpiresAt)
}

// EffectiveStatus folds read-time expiry into the stored status.
func (m *MuleMessage) EffectiveStatus(now time.Time) Status {
	if m.Status.Active() && m.ExpiredBy(now) {
		return StatusExpired
	}
	return m.Status
}
