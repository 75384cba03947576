package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnnouncementUsecase is the visibility resolver plus the author-side
// write operations the resolver's candidate set is built from.
type AnnouncementUsecase interface {
	Create(ctx context.Context, cmd CreateAnnouncementCommand) (*AnnouncementDTO, error)
	Update(ctx context.Context, cmd UpdateAnnouncementCommand) (*AnnouncementDTO, error)
	Delete(ctx context.Context, announcementID, authorID uuid.UUID) error

	// Available computes the announcements reachable by the user "here
	// and now": time window, geofence (no proximity fallback), policy,
	// plus the permanent received union.
	Available(ctx context.Context, userID uuid.UUID, now time.Time, filter AvailableFilter) ([]*AnnouncementDTO, error)

	// Feed is Available without the geofence step (non-geofenced view).
	Feed(ctx context.Context, userID uuid.UUID, now time.Time) ([]*AnnouncementDTO, error)
}
