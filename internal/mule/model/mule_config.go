package models

import (
	"time"

	user "github.com/aleator1o/anunciosloc/internal/user/model"

	"github.com/google/uuid"
)

const (
	// DefaultMaxSpaceBytes is applied when a config is lazily created on
	// first read (10 MiB).
	DefaultMaxSpaceBytes int64 = 10 * 1024 * 1024

	// MaxSpaceBytesCeiling bounds what a user may offer (100 MiB).
	MaxSpaceBytesCeiling int64 = 100 * 1024 * 1024
)

// MuleConfig is a user's opt-in to carry announcements for others,
// with the storage they are willing to lend. One row per user.
type MuleConfig struct {
	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	MaxSpaceBytes int64 `bun:",notnull"`
	IsActive      bool  `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
