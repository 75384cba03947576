package profile

import (
	"context"

	Profile "github.com/aleator1o/anunciosloc/internal/profile/model"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// GetProfile returns the user's attributes as a key→value map,
	// keys kept as stored (callers normalise case at comparison time).
	GetProfile(ctx context.Context, userID uuid.UUID) (map[string]string, error)

	UpsertAttribute(ctx context.Context, attr *Profile.ProfileAttribute) error
	DeleteAttribute(ctx context.Context, userID uuid.UUID, key string) error

	// ListAllKnownKeys is a UI hint for restriction builders, not
	// authoritative for policy evaluation.
	ListAllKnownKeys(ctx context.Context) ([]string, error)
}
