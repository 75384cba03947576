package announcement

import (
	"context"

	models "github.com/aleator1o/anunciosloc/internal/announcement/model"

	"github.com/google/uuid"
)

type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	GetAnnouncementByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a *models.Announcement) error
	DeleteAnnouncement(ctx context.Context, id uuid.UUID, authorID uuid.UUID) error

	// ListCandidates loads announcements (location relation included)
	// most-recent-first, optionally scoped by author/location.
	ListCandidates(ctx context.Context, authorID, locationID *uuid.UUID) ([]models.Announcement, error)

	// ListReceived loads the announcements delivered to the user.
	// Received rows are written by the mule repository as part of the
	// delivery transaction.
	ListReceived(ctx context.Context, userID uuid.UUID) ([]models.Announcement, error)
}
