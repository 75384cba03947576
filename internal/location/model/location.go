package models

import (
	"time"

	user "github.com/aleator1o/anunciosloc/internal/user/model"

	"github.com/google/uuid"
)

type Kind string

const (
	KindGeo     Kind = "GEO"
	KindNetwork Kind = "NETWORK"
)

// Location is a named place owned by a user. GEO locations carry a
// circular fence (lat/lon/radius); NETWORK locations carry a set of
// Wi-Fi/BLE identifiers. The matcher treats missing coordinates as
// "cannot be inside".
type Location struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name string `bun:",notnull"`
	Kind Kind   `bun:",notnull,default:'GEO'"`

	Latitude     *float64 `bun:",nullzero"`
	Longitude    *float64 `bun:",nullzero"`
	RadiusMeters *float64 `bun:",nullzero"`

	Identifiers []string `bun:",array"`

	OwnerID uuid.UUID  `bun:",notnull,type:uuid"`
	Owner   *user.User `bun:"rel:belongs-to,join:owner_id=id"`

	// IsPublic lets other users target this place; AllowsAnnouncements
	// lets them attach announcements to it.
	IsPublic            bool `bun:",default:false"`
	AllowsAnnouncements bool `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
