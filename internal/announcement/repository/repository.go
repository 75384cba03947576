package repository

import (
	"context"
	"database/sql"

	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type AnnouncementRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewAnnouncementRepository(db *bun.DB, logger logger.Logger) *AnnouncementRepository {
	return &AnnouncementRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *AnnouncementRepository) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {

	_, err := r.db.NewInsert().Model(a).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "announcementRepo.CreateAnnouncement.Insert: ")
	}
	return nil
}

func (r *AnnouncementRepository) GetAnnouncementByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {

	a := new(models.Announcement)
	err := r.db.NewSelect().
		Model(a).
		Relation("Location").
		Where("announcement.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrAnnouncementNotFound
		}
		return nil, errors.Wrap(err, "announcementRepo.GetAnnouncementByID.Scan: ")
	}
	return a, nil
}

func (r *AnnouncementRepository) UpdateAnnouncement(ctx context.Context, a *models.Announcement) error {

	res, err := r.db.NewUpdate().
		Model(a).
		WherePK().
		Where("author_id = ?", a.AuthorID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "announcementRepo.UpdateAnnouncement.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrAnnouncementNotFound
	}
	return nil
}

func (r *AnnouncementRepository) DeleteAnnouncement(ctx context.Context, id uuid.UUID, authorID uuid.UUID) error {

	res, err := r.db.NewDelete().
		Model((*models.Announcement)(nil)).
		Where("id = ? AND author_id = ?", id, authorID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "announcementRepo.DeleteAnnouncement.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrAnnouncementNotFound
	}
	return nil
}

func (r *AnnouncementRepository) ListCandidates(ctx context.Context, authorID, locationID *uuid.UUID) ([]models.Announcement, error) {

	var list []models.Announcement
	q := r.db.NewSelect().
		Model(&list).
		Relation("Location").
		Order("announcement.created_at DESC")

	if authorID != nil {
		q = q.Where("author_id = ?", *authorID)
	}
	if locationID != nil {
		q = q.Where("location_id = ?", *locationID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "announcementRepo.ListCandidates.Scan: ")
	}
	return list, nil
}

func (r *AnnouncementRepository) ListReceived(ctx context.Context, userID uuid.UUID) ([]models.Announcement, error) {

	var rows []models.ReceivedAnnouncement
	err := r.db.NewSelect().
		Model(&rows).
		Relation("Announcement").
		Relation("Announcement.Location").
		Where("received_announcement.user_id = ?", userID).
		Order("received_announcement.received_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "announcementRepo.ListReceived.Scan: ")
	}

	list := make([]models.Announcement, 0, len(rows))
	for _, row := range rows {
		if row.Announcement != nil {
			list = append(list, *row.Announcement)
		}
	}
	return list, nil
}
