package repository

import (
	"context"

	Profile "github.com/aleator1o/anunciosloc/internal/profile/model"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ProfileRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewProfileRepository(db *bun.DB, logger logger.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (map[string]string, error) {

	var attrs []Profile.ProfileAttribute
	err := r.db.NewSelect().Model(&attrs).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "profileRepo.GetProfile.Scan: ")
	}

	profile := make(map[string]string, len(attrs))
	for _, a := range attrs {
		profile[a.Key] = a.Value
	}
	return profile, nil
}

func (r *ProfileRepository) UpsertAttribute(ctx context.Context, attr *Profile.ProfileAttribute) error {

	_, err := r.db.NewInsert().
		Model(attr).
		On("CONFLICT (user_id, key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.UpsertAttribute.Exec: ")
	}
	return nil
}

func (r *ProfileRepository) DeleteAttribute(ctx context.Context, userID uuid.UUID, key string) error {

	res, err := r.db.NewDelete().
		Model((*Profile.ProfileAttribute)(nil)).
		Where("user_id = ? AND key = ?", userID, key).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.DeleteAttribute.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NotFound("profile attribute not found")
	}
	return nil
}

func (r *ProfileRepository) ListAllKnownKeys(ctx context.Context) ([]string, error) {

	var keys []string
	err := r.db.NewSelect().
		Model((*Profile.ProfileAttribute)(nil)).
		ColumnExpr("DISTINCT key").
		Order("key ASC").
		Scan(ctx, &keys)
	if err != nil {
		return nil, errors.Wrap(err, "profileRepo.ListAllKnownKeys.Scan: ")
	}
	return keys, nil
}
