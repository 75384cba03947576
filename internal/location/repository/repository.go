package repository

import (
	"context"
	"database/sql"

	Location "github.com/aleator1o/anunciosloc/internal/location/model"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type LocationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewLocationRepository(db *bun.DB, logger logger.Logger) *LocationRepository {
	return &LocationRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *LocationRepository) CreateLocation(ctx context.Context, loc *Location.Location) error {

	_, err := r.db.NewInsert().Model(loc).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "locationRepo.CreateLocation.Insert: ")
	}
	return nil
}

func (r *LocationRepository) GetLocationByID(ctx context.Context, id uuid.UUID) (*Location.Location, error) {

	loc := new(Location.Location)
	err := r.db.NewSelect().Model(loc).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrLocationNotFound
		}
		return nil, errors.Wrap(err, "locationRepo.GetLocationByID.Scan: ")
	}
	return loc, nil
}

func (r *LocationRepository) ListLocationsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Location.Location, error) {

	var locs []Location.Location
	err := r.db.NewSelect().Model(&locs).Where("owner_id = ?", ownerID).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "locationRepo.ListLocationsByOwner.Scan: ")
	}
	return locs, nil
}

func (r *LocationRepository) ListPublicLocations(ctx context.Context) ([]Location.Location, error) {

	var locs []Location.Location
	err := r.db.NewSelect().Model(&locs).Where("is_public = ?", true).Order("name ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "locationRepo.ListPublicLocations.Scan: ")
	}
	return locs, nil
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, loc *Location.Location) error {

	res, err := r.db.NewUpdate().
		Model(loc).
		WherePK().
		Where("owner_id = ?", loc.OwnerID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "locationRepo.UpdateLocation.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {

	res, err := r.db.NewDelete().
		Model((*Location.Location)(nil)).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "locationRepo.DeleteLocation.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrLocationNotFound
	}
	return nil
}
