package mule

import (
	"context"
	"time"

	models "github.com/aleator1o/anunciosloc/internal/mule/model"

	"github.com/google/uuid"
)

type MuleRepository interface {
	// EnsureConfig returns the user's config, creating the default
	// (10 MiB, active) on first read.
	EnsureConfig(ctx context.Context, userID uuid.UUID) (*models.MuleConfig, error)
	UpsertConfig(ctx context.Context, cfg *models.MuleConfig) error
	ListActiveConfigs(ctx context.Context, excludeUserID uuid.UUID) ([]models.MuleConfig, error)

	// CreateAssignment inserts a PENDING custody row. The capacity check
	// and the duplicate-triple check run in the same transaction with
	// the mule's config row locked, so concurrent assigns cannot jointly
	// exceed maxSpaceBytes or duplicate a triple.
	CreateAssignment(ctx context.Context, msg *models.MuleMessage, sizeEstimate int64, now time.Time) error

	GetMessage(ctx context.Context, id uuid.UUID) (*models.MuleMessage, error)
	CountActiveMessages(ctx context.Context, muleUserID uuid.UUID, now time.Time) (int, error)
	HasActiveCustody(ctx context.Context, announcementID, muleUserID uuid.UUID, now time.Time) (bool, error)
	ListCarriedMessages(ctx context.Context, muleUserID uuid.UUID, now time.Time) ([]models.MuleMessage, error)

	// CompleteDelivery transitions an active, unexpired row to DELIVERED
	// and records the destination's ReceivedAnnouncement in the same
	// transaction; a failure on either write rolls back both. It refuses
	// terminal or expired rows.
	CompleteDelivery(ctx context.Context, msg *models.MuleMessage, now time.Time) error
	MarkExpired(ctx context.Context, id uuid.UUID) error
}
