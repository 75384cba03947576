package announcement

import (
	"time"

	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
	"github.com/aleator1o/anunciosloc/internal/policy"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type CreateAnnouncementCommand struct {
	AuthorID           uuid.UUID
	LocationID         *uuid.UUID
	Content            string
	Visibility         models.Visibility
	DeliveryMode       models.DeliveryMode
	PolicyType         policy.Type
	PolicyRestrictions []policy.Restriction
	StartsAt           *time.Time
	EndsAt             *time.Time
}

// UpdateAnnouncementCommand replaces every mutable field; only the
// author may apply it.
type UpdateAnnouncementCommand struct {
	AnnouncementID uuid.UUID
	AuthorID       uuid.UUID

	LocationID         *uuid.UUID
	Content            string
	Visibility         models.Visibility
	DeliveryMode       models.DeliveryMode
	PolicyType         policy.Type
	PolicyRestrictions []policy.Restriction
	StartsAt           *time.Time
	EndsAt             *time.Time
}

// AvailableFilter optionally scopes the candidate set (the "mine" view).
type AvailableFilter struct {
	AuthorID   *uuid.UUID
	LocationID *uuid.UUID
}

// Output DTOs
type AnnouncementDTO struct {
	ID                 uuid.UUID            `json:"id"`
	AuthorID           uuid.UUID            `json:"authorId"`
	LocationID         *uuid.UUID           `json:"locationId,omitempty"`
	LocationName       string               `json:"locationName,omitempty"`
	Content            string               `json:"content"`
	Visibility         models.Visibility    `json:"visibility"`
	DeliveryMode       models.DeliveryMode  `json:"deliveryMode"`
	PolicyType         policy.Type          `json:"policyType"`
	PolicyRestrictions []policy.Restriction `json:"policyRestrictions"`
	StartsAt           *time.Time           `json:"startsAt,omitempty"`
	EndsAt             *time.Time           `json:"endsAt,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`

	// Received marks rows unioned in from the permanent received set.
	Received bool `json:"received,omitempty"`
}

func ToDTO(a *models.Announcement, received bool) *AnnouncementDTO {
	dto := &AnnouncementDTO{
		ID:                 a.ID,
		AuthorID:           a.AuthorID,
		LocationID:         a.LocationID,
		Content:            a.Content,
		Visibility:         a.Visibility,
		DeliveryMode:       a.DeliveryMode,
		PolicyType:         a.PolicyType,
		PolicyRestrictions: a.PolicyRestrictions,
		StartsAt:           a.StartsAt,
		EndsAt:             a.EndsAt,
		CreatedAt:          a.CreatedAt,
		Received:           received,
	}
	if a.Location != nil {
		dto.LocationName = a.Location.Name
	}
	return dto
}
