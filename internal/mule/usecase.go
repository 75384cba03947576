package mule

import (
	"context"

	"github.com/google/uuid"
)

// MuleUsecase coordinates announcement relay through consenting
// intermediaries: candidate discovery, custody assignment with bounded
// storage, and co-location-gated delivery.
type MuleUsecase interface {
	GetConfig(ctx context.Context, userID uuid.UUID) (*MuleConfigDTO, error)
	SetConfig(ctx context.Context, cmd SetConfigCommand) (*MuleConfigDTO, error)

	// ListAvailableMules returns active carriers co-located with the
	// publisher (announcement location first, 500 m fallback) that have
	// capacity and are not already carrying this announcement.
	ListAvailableMules(ctx context.Context, announcementID, publisherID uuid.UUID) ([]*MuleCandidateDTO, error)

	// Assign creates PENDING custody; author-only.
	Assign(ctx context.Context, cmd AssignCommand) (*MuleMessageDTO, error)

	// Deliver hands custody to the destination; mule-only. Self-delivery
	// (mule == destination) skips the co-location test entirely.
	// A failed co-location check is recoverable and leaves state alone.
	Deliver(ctx context.Context, muleMessageID, callerID uuid.UUID) (*MuleMessageDTO, error)

	// CarriedMessages lists the caller's active custody for the mule UI.
	CarriedMessages(ctx context.Context, muleUserID uuid.UUID) ([]*MuleMessageDTO, error)
}
