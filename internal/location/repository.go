package location

import (
	"context"

	Location "github.com/aleator1o/anunciosloc/internal/location/model"

	"github.com/google/uuid"
)

type LocationRepository interface {
	CreateLocation(ctx context.Context, loc *Location.Location) error
	GetLocationByID(ctx context.Context, id uuid.UUID) (*Location.Location, error)
	ListLocationsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Location.Location, error)
	ListPublicLocations(ctx context.Context) ([]Location.Location, error)
	UpdateLocation(ctx context.Context, loc *Location.Location) error
	DeleteLocation(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
