package repository

import (
	"context"
	"database/sql"
	"time"

	announcementModels "github.com/aleator1o/anunciosloc/internal/announcement/model"
	models "github.com/aleator1o/anunciosloc/internal/mule/model"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var activeStatuses = []models.Status{models.StatusPending, models.StatusInTransit}

type MuleRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMuleRepository(db *bun.DB, logger logger.Logger) *MuleRepository {
	return &MuleRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MuleRepository) EnsureConfig(ctx context.Context, userID uuid.UUID) (*models.MuleConfig, error) {

	defaultCfg := &models.MuleConfig{
		UserID:        userID,
		MaxSpaceBytes: models.DefaultMaxSpaceBytes,
		IsActive:      true,
	}
	_, err := r.db.NewInsert().
		Model(defaultCfg).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "muleRepo.EnsureConfig.Insert: ")
	}

	cfg := new(models.MuleConfig)
	if err := r.db.NewSelect().Model(cfg).Where("user_id = ?", userID).Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "muleRepo.EnsureConfig.Scan: ")
	}
	return cfg, nil
}

func (r *MuleRepository) UpsertConfig(ctx context.Context, cfg *models.MuleConfig) error {

	_, err := r.db.NewInsert().
		Model(cfg).
		On("CONFLICT (user_id) DO UPDATE").
		Set("max_space_bytes = EXCLUDED.max_space_bytes").
		Set("is_active = EXCLUDED.is_active").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "muleRepo.UpsertConfig.Exec: ")
	}
	return nil
}

func (r *MuleRepository) ListActiveConfigs(ctx context.Context, excludeUserID uuid.UUID) ([]models.MuleConfig, error) {

	var configs []models.MuleConfig
	err := r.db.NewSelect().
		Model(&configs).
		Where("is_active = ?", true).
		Where("user_id != ?", excludeUserID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "muleRepo.ListActiveConfigs.Scan: ")
	}
	return configs, nil
}

// CreateAssignment runs the check-then-act capacity test and the insert
// in one transaction. The SELECT ... FOR UPDATE on the config row
// serializes concurrent assigns against the same mule.
func (r *MuleRepository) CreateAssignment(ctx context.Context, msg *models.MuleMessage, sizeEstimate int64, now time.Time) error {

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		cfg := new(models.MuleConfig)
		err := tx.NewSelect().
			Model(cfg).
			Where("user_id = ?", msg.MuleUserID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.ErrMuleInactive
			}
			return errors.Wrap(err, "muleRepo.CreateAssignment.LockConfig: ")
		}
		if !cfg.IsActive {
			return appErrors.ErrMuleInactive
		}

		duplicate, err := tx.NewSelect().
			Model((*models.MuleMessage)(nil)).
			Where("announcement_id = ?", msg.AnnouncementID).
			Where("mule_user_id = ?", msg.MuleUserID).
			Where("destination_user_id = ?", msg.DestinationUserID).
			Where("status IN (?)", bun.In(activeStatuses)).
			Where("expires_at > ?", now).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "muleRepo.CreateAssignment.CheckDuplicate: ")
		}
		if duplicate {
			return appErrors.ErrDuplicateCustody
		}

		count, err := tx.NewSelect().
			Model((*models.MuleMessage)(nil)).
			Where("mule_user_id = ?", msg.MuleUserID).
			Where("status IN (?)", bun.In(activeStatuses)).
			Where("expires_at > ?", now).
			Count(ctx)
		if err != nil {
			return errors.Wrap(err, "muleRepo.CreateAssignment.CountActive: ")
		}

		used := int64(count) * sizeEstimate
		if used+sizeEstimate > cfg.MaxSpaceBytes {
			return appErrors.ErrMuleCapacityExhausted
		}

		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "muleRepo.CreateAssignment.Insert: ")
		}
		return nil
	})
	return err
}

func (r *MuleRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.MuleMessage, error) {

	msg := new(models.MuleMessage)
	err := r.db.NewSelect().
		Model(msg).
		Relation("Announcement").
		Relation("Announcement.Location").
		Where("mule_message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrMuleMessageNotFound
		}
		return nil, errors.Wrap(err, "muleRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *MuleRepository) CountActiveMessages(ctx context.Context, muleUserID uuid.UUID, now time.Time) (int, error) {

	count, err := r.db.NewSelect().
		Model((*models.MuleMessage)(nil)).
		Where("mule_user_id = ?", muleUserID).
		Where("status IN (?)", bun.In(activeStatuses)).
		Where("expires_at > ?", now).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "muleRepo.CountActiveMessages.Count: ")
	}
	return count, nil
}

func (r *MuleRepository) HasActiveCustody(ctx context.Context, announcementID, muleUserID uuid.UUID, now time.Time) (bool, error) {

	exists, err := r.db.NewSelect().
		Model((*models.MuleMessage)(nil)).
		Where("announcement_id = ?", announcementID).
		Where("mule_user_id = ?", muleUserID).
		Where("status IN (?)", bun.In(activeStatuses)).
		Where("expires_at > ?", now).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "muleRepo.HasActiveCustody.Exists: ")
	}
	return exists, nil
}

func (r *MuleRepository) ListCarriedMessages(ctx context.Context, muleUserID uuid.UUID, now time.Time) ([]models.MuleMessage, error) {

	var msgs []models.MuleMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Relation("Announcement").
		Where("mule_user_id = ?", muleUserID).
		Where("mule_message.status IN (?)", bun.In(activeStatuses)).
		Order("mule_message.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "muleRepo.ListCarriedMessages.Scan: ")
	}
	return msgs, nil
}

// CompleteDelivery runs the DELIVERED transition and the destination's
// ReceivedAnnouncement insert in one transaction, so a failed received
// write can never strand a terminally delivered row without its
// received counterpart.
func (r *MuleRepository) CompleteDelivery(ctx context.Context, msg *models.MuleMessage, now time.Time) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.MuleMessage)(nil)).
			Set("status = ?", models.StatusDelivered).
			Set("delivered_at = ?", now).
			Where("id = ?", msg.ID).
			Where("status IN (?)", bun.In(activeStatuses)).
			Where("expires_at > ?", now).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "muleRepo.CompleteDelivery.Update: ")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return appErrors.ErrMuleMessageTerminal
		}

		received := &announcementModels.ReceivedAnnouncement{
			UserID:         msg.DestinationUserID,
			AnnouncementID: msg.AnnouncementID,
		}
		if _, err := tx.NewInsert().
			Model(received).
			On("CONFLICT (user_id, announcement_id) DO NOTHING").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "muleRepo.CompleteDelivery.InsertReceived: ")
		}
		return nil
	})
}

func (r *MuleRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {

	_, err := r.db.NewUpdate().
		Model((*models.MuleMessage)(nil)).
		Set("status = ?", models.StatusExpired).
		Where("id = ?", id).
		Where("status IN (?)", bun.In(activeStatuses)).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "muleRepo.MarkExpired.Exec: ")
	}
	return nil
}
