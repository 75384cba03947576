package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aleator1o/anunciosloc/internal/announcement"
	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
	"github.com/aleator1o/anunciosloc/internal/geofence"
	"github.com/aleator1o/anunciosloc/internal/location"
	"github.com/aleator1o/anunciosloc/internal/policy"
	"github.com/aleator1o/anunciosloc/internal/presence"
	"github.com/aleator1o/anunciosloc/internal/profile"
	"github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
)

const minContentLength = 5

// AnnouncementUsecase resolves which announcements a user can see
// "here and now" and owns the author-side writes.
type AnnouncementUsecase struct {
	repo         announcement.AnnouncementRepository
	locationRepo location.LocationRepository
	profileRepo  profile.ProfileRepository
	presence     presence.PresenceStore
	logger       logger.Logger
}

func NewAnnouncementUsecase(
	repo announcement.AnnouncementRepository,
	locationRepo location.LocationRepository,
	profileRepo profile.ProfileRepository,
	presenceStore presence.PresenceStore,
	logger logger.Logger,
) *AnnouncementUsecase {
	return &AnnouncementUsecase{
		repo:         repo,
		locationRepo: locationRepo,
		profileRepo:  profileRepo,
		presence:     presenceStore,
		logger:       logger,
	}
}

func (uc *AnnouncementUsecase) Create(ctx context.Context, cmd announcement.CreateAnnouncementCommand) (*announcement.AnnouncementDTO, error) {
	if err := uc.validate(ctx, cmd.Content, cmd.LocationID, cmd.PolicyRestrictions, cmd.StartsAt, cmd.EndsAt); err != nil {
		return nil, err
	}

	a := &models.Announcement{
		AuthorID:           cmd.AuthorID,
		LocationID:         cmd.LocationID,
		Content:            cmd.Content,
		Visibility:         defaultVisibility(cmd.Visibility),
		DeliveryMode:       defaultDeliveryMode(cmd.DeliveryMode),
		PolicyType:         defaultPolicyType(cmd.PolicyType),
		PolicyRestrictions: normalizeRestrictions(cmd.PolicyRestrictions),
		StartsAt:           cmd.StartsAt,
		EndsAt:             cmd.EndsAt,
	}
	if err := uc.repo.CreateAnnouncement(ctx, a); err != nil {
		uc.logger.Error("failed to create announcement", "author", cmd.AuthorID, "err", err)
		return nil, errors.Internal("failed to create announcement")
	}
	return announcement.ToDTO(a, false), nil
}

func (uc *AnnouncementUsecase) Update(ctx context.Context, cmd announcement.UpdateAnnouncementCommand) (*announcement.AnnouncementDTO, error) {
	existing, err := uc.repo.GetAnnouncementByID(ctx, cmd.AnnouncementID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != cmd.AuthorID {
		return nil, errors.ErrNotAnnouncementOwner
	}
	if err := uc.validate(ctx, cmd.Content, cmd.LocationID, cmd.PolicyRestrictions, cmd.StartsAt, cmd.EndsAt); err != nil {
		return nil, err
	}

	existing.LocationID = cmd.LocationID
	existing.Content = cmd.Content
	existing.Visibility = defaultVisibility(cmd.Visibility)
	existing.DeliveryMode = defaultDeliveryMode(cmd.DeliveryMode)
	existing.PolicyType = defaultPolicyType(cmd.PolicyType)
	existing.PolicyRestrictions = normalizeRestrictions(cmd.PolicyRestrictions)
	existing.StartsAt = cmd.StartsAt
	existing.EndsAt = cmd.EndsAt
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.repo.UpdateAnnouncement(ctx, existing); err != nil {
		uc.logger.Error("failed to update announcement", "id", cmd.AnnouncementID, "err", err)
		return nil, err
	}
	return announcement.ToDTO(existing, false), nil
}

func (uc *AnnouncementUsecase) Delete(ctx context.Context, announcementID, authorID uuid.UUID) error {
	return uc.repo.DeleteAnnouncement(ctx, announcementID, authorID)
}

// Available runs the full pipeline: time window, geofence (strict, no
// proximity fallback), policy, then unions the permanent received set.
func (uc *AnnouncementUsecase) Available(ctx context.Context, userID uuid.UUID, now time.Time, filter announcement.AvailableFilter) ([]*announcement.AnnouncementDTO, error) {
	return uc.resolve(ctx, userID, now, filter, true)
}

// Feed skips the geofence step but keeps the time window and policy
// gates.
func (uc *AnnouncementUsecase) Feed(ctx context.Context, userID uuid.UUID, now time.Time) ([]*announcement.AnnouncementDTO, error) {
	return uc.resolve(ctx, userID, now, announcement.AvailableFilter{}, false)
}

func (uc *AnnouncementUsecase) resolve(ctx context.Context, userID uuid.UUID, now time.Time, filter announcement.AvailableFilter, geofenced bool) ([]*announcement.AnnouncementDTO, error) {
	candidates, err := uc.repo.ListCandidates(ctx, filter.AuthorID, filter.LocationID)
	if err != nil {
		uc.logger.Error("failed to load candidate announcements", "user", userID, "err", err)
		return nil, errors.ErrAnnouncementLookupFailed(err)
	}

	userProfile, err := uc.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load profile", "user", userID, "err", err)
		return nil, errors.Internal("failed to load profile")
	}

	// Absent presence is not an error here: it only drops geofenced rows.
	fix, err := uc.presence.Get(ctx, userID)
	if err != nil && errors.CodeOf(err) != errors.CodeNotFound {
		uc.logger.Error("failed to load presence", "user", userID, "err", err)
		return nil, errors.Internal("failed to load presence")
	}

	out := make([]*announcement.AnnouncementDTO, 0, len(candidates))
	seen := make(map[uuid.UUID]struct{}, len(candidates))

	for i := range candidates {
		a := &candidates[i]
		if !a.ActiveAt(now) {
			continue
		}
		if a.Visibility == models.VisibilityPrivate && a.AuthorID != userID {
			continue
		}
		if geofenced && a.LocationID != nil {
			if fix == nil || !geofence.IsInside(fix, a.Location) {
				continue
			}
		}
		if a.AuthorID != userID && !policy.Evaluate(a.PolicyType, userProfile, a.PolicyRestrictions) {
			continue
		}
		out = append(out, announcement.ToDTO(a, false))
		seen[a.ID] = struct{}{}
	}

	// Received rows are permanent: once accepted they stay visible no
	// matter what the geofence, window or policy say today.
	received, err := uc.repo.ListReceived(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load received announcements", "user", userID, "err", err)
		return nil, errors.ErrAnnouncementLookupFailed(err)
	}
	for i := range received {
		a := &received[i]
		if _, ok := seen[a.ID]; ok {
			continue
		}
		out = append(out, announcement.ToDTO(a, true))
		seen[a.ID] = struct{}{}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (uc *AnnouncementUsecase) validate(ctx context.Context, content string, locationID *uuid.UUID, restrictions []policy.Restriction, startsAt, endsAt *time.Time) error {
	if len(strings.TrimSpace(content)) < minContentLength {
		return errors.InvalidArg("content must be at least 5 characters")
	}
	if !policy.ValidateRestrictions(restrictions) {
		return errors.ErrInvalidRestriction
	}
	if startsAt != nil && endsAt != nil && startsAt.After(*endsAt) {
		return errors.ErrInvalidTimeWindow
	}
	if locationID != nil {
		if _, err := uc.locationRepo.GetLocationByID(ctx, *locationID); err != nil {
			return err
		}
	}
	return nil
}

func defaultVisibility(v models.Visibility) models.Visibility {
	if v == "" {
		return models.VisibilityPublic
	}
	return v
}

func defaultDeliveryMode(m models.DeliveryMode) models.DeliveryMode {
	if m == "" {
		return models.DeliveryCentralized
	}
	return m
}

func defaultPolicyType(t policy.Type) policy.Type {
	if t == "" {
		return policy.TypeWhitelist
	}
	return t
}

func normalizeRestrictions(restrictions []policy.Restriction) []policy.Restriction {
	if restrictions == nil {
		return []policy.Restriction{}
	}
	return restrictions
}
