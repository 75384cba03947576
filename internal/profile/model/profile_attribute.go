package models

import (
	"time"

	user "github.com/aleator1o/anunciosloc/internal/user/model"

	"github.com/google/uuid"
)

// ProfileAttribute is a free-form key/value pair on a user profile
// (e.g. Profissao=Estudante). Policy evaluation compares keys and
// values case-insensitively.
type ProfileAttribute struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserID uuid.UUID  `bun:",notnull,type:uuid,unique:user_attr_key"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Key   string `bun:",notnull,unique:user_attr_key"`
	Value string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
