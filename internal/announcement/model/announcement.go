package models

import (
	"time"

	Location "github.com/aleator1o/anunciosloc/internal/location/model"
	"github.com/aleator1o/anunciosloc/internal/policy"
	user "github.com/aleator1o/anunciosloc/internal/user/model"

	"github.com/google/uuid"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

type DeliveryMode string

const (
	DeliveryCentralized   DeliveryMode = "CENTRALIZED"
	DeliveryDecentralized DeliveryMode = "DECENTRALIZED"
)

type Announcement struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	AuthorID uuid.UUID  `bun:",notnull,type:uuid"`
	Author   *user.User `bun:"rel:belongs-to,join:author_id=id"`

	// LocationID gates visibility to users currently inside the fence;
	// nil means the announcement is not geofenced.
	LocationID *uuid.UUID         `bun:",nullzero,type:uuid"`
	Location   *Location.Location `bun:"rel:belongs-to,join:location_id=id"`

	Content      string       `bun:",notnull"`
	Visibility   Visibility   `bun:",notnull,default:'PUBLIC'"`
	DeliveryMode DeliveryMode `bun:",notnull,default:'CENTRALIZED'"`

	PolicyType policy.Type `bun:",notnull,default:'WHITELIST'"`
	// Empty list is valid: no gate, everyone allowed.
	PolicyRestrictions []policy.Restriction `bun:",type:jsonb,default:'[]'"`

	// Inclusive window; nil bound = unbounded on that side.
	StartsAt *time.Time `bun:",nullzero"`
	EndsAt   *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// ActiveAt applies the time-window step of the resolver.
func (a *Announcement) ActiveAt(now time.Time) bool {
	if a.StartsAt != nil && a.StartsAt.After(now) {
		return false
	}
	if a.EndsAt != nil && a.EndsAt.Before(now) {
		return false
	}
	return true
}
