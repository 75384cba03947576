package mule

import (
	"time"

	models "github.com/aleator1o/anunciosloc/internal/mule/model"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type SetConfigCommand struct {
	UserID        uuid.UUID
	MaxSpaceBytes int64
	IsActive      bool
}

type AssignCommand struct {
	AnnouncementID    uuid.UUID
	MuleUserID        uuid.UUID
	DestinationUserID uuid.UUID

	// CallerID is the verified requester; only the announcement author
	// may assign.
	CallerID uuid.UUID
}

// Output DTOs
type MuleConfigDTO struct {
	UserID        uuid.UUID `json:"userId"`
	MaxSpaceBytes int64     `json:"maxSpaceBytes"`
	IsActive      bool      `json:"isActive"`
}

// MuleCandidateDTO is one row of ListAvailableMules: an active carrier
// co-located with the publisher, with its remaining capacity.
type MuleCandidateDTO struct {
	MuleUserID          uuid.UUID `json:"muleUserId"`
	AvailableSpaceBytes int64     `json:"availableSpaceBytes"`
	MaxSpaceBytes       int64     `json:"maxSpaceBytes"`
}

type MuleMessageDTO struct {
	ID                uuid.UUID     `json:"id"`
	AnnouncementID    uuid.UUID     `json:"announcementId"`
	MuleUserID        uuid.UUID     `json:"muleUserId"`
	DestinationUserID uuid.UUID     `json:"destinationUserId"`
	Status            models.Status `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	ExpiresAt         time.Time     `json:"expiresAt"`
	DeliveredAt       *time.Time    `json:"deliveredAt,omitempty"`
}

func ToConfigDTO(c *models.MuleConfig) *MuleConfigDTO {
	return &MuleConfigDTO{
		UserID:        c.UserID,
		MaxSpaceBytes: c.MaxSpaceBytes,
		IsActive:      c.IsActive,
	}
}

func ToMessageDTO(m *models.MuleMessage, now time.Time) *MuleMessageDTO {
	return &MuleMessageDTO{
		ID:                m.ID,
		AnnouncementID:    m.AnnouncementID,
		MuleUserID:        m.MuleUserID,
		DestinationUserID: m.DestinationUserID,
		Status:            m.EffectiveStatus(now),
		CreatedAt:         m.CreatedAt,
		ExpiresAt:         m.ExpiresAt,
		DeliveredAt:       m.DeliveredAt,
	}
}
