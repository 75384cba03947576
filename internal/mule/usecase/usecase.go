package usecase

import (
	"context"
	"time"

	"github.com/aleator1o/anunciosloc/config"
	"github.com/aleator1o/anunciosloc/internal/announcement"
	"github.com/aleator1o/anunciosloc/internal/geofence"
	Location "github.com/aleator1o/anunciosloc/internal/location/model"
	"github.com/aleator1o/anunciosloc/internal/mule"
	models "github.com/aleator1o/anunciosloc/internal/mule/model"
	"github.com/aleator1o/anunciosloc/internal/presence"
	"github.com/aleator1o/anunciosloc/internal/user"
	"github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
)

const (
	defaultSizeEstimateBytes int64 = 1024
	defaultCustodyTTL              = time.Hour
)

// MuleUsecase is the relay coordinator: it matches publishers with
// co-located carriers, bounds each carrier's load, and walks custody
// through PENDING → DELIVERED/EXPIRED.
type MuleUsecase struct {
	repo             mule.MuleRepository
	announcementRepo announcement.AnnouncementRepository
	userRepo         user.UserRepository
	presence         presence.PresenceStore
	logger           logger.Logger

	sizeEstimate int64
	custodyTTL   time.Duration
}

func NewMuleUsecase(
	repo mule.MuleRepository,
	announcementRepo announcement.AnnouncementRepository,
	userRepo user.UserRepository,
	presenceStore presence.PresenceStore,
	logger logger.Logger,
	cfg config.Config,
) *MuleUsecase {
	sizeEstimate := cfg.Mule.MessageSizeEstimateBytes
	if sizeEstimate <= 0 {
		sizeEstimate = defaultSizeEstimateBytes
	}
	ttl := cfg.Mule.CustodyTTL
	if ttl <= 0 {
		ttl = defaultCustodyTTL
	}
	return &MuleUsecase{
		repo:             repo,
		announcementRepo: announcementRepo,
		userRepo:         userRepo,
		presence:         presenceStore,
		logger:           logger,
		sizeEstimate:     sizeEstimate,
		custodyTTL:       ttl,
	}
}

func (uc *MuleUsecase) GetConfig(ctx context.Context, userID uuid.UUID) (*mule.MuleConfigDTO, error) {
	cfg, err := uc.repo.EnsureConfig(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load mule config", "user", userID, "err", err)
		return nil, errors.Internal("failed to load mule config")
	}
	return mule.ToConfigDTO(cfg), nil
}

func (uc *MuleUsecase) SetConfig(ctx context.Context, cmd mule.SetConfigCommand) (*mule.MuleConfigDTO, error) {
	if cmd.MaxSpaceBytes <= 0 || cmd.MaxSpaceBytes > models.MaxSpaceBytesCeiling {
		return nil, errors.ErrInvalidMuleSpace
	}

	cfg := &models.MuleConfig{
		UserID:        cmd.UserID,
		MaxSpaceBytes: cmd.MaxSpaceBytes,
		IsActive:      cmd.IsActive,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := uc.repo.UpsertConfig(ctx, cfg); err != nil {
		uc.logger.Error("failed to save mule config", "user", cmd.UserID, "err", err)
		return nil, errors.Internal("failed to save mule config")
	}
	return mule.ToConfigDTO(cfg), nil
}

func (uc *MuleUsecase) ListAvailableMules(ctx context.Context, announcementID, publisherID uuid.UUID) ([]*mule.MuleCandidateDTO, error) {
	a, err := uc.announcementRepo.GetAnnouncementByID(ctx, announcementID)
	if err != nil {
		return nil, err
	}

	publisherFix, err := uc.presence.Get(ctx, publisherID)
	if err != nil {
		return nil, err
	}

	configs, err := uc.repo.ListActiveConfigs(ctx, publisherID)
	if err != nil {
		uc.logger.Error("failed to list active mules", "err", err)
		return nil, errors.Internal("failed to list active mules")
	}

	now := time.Now().UTC()
	candidates := make([]*mule.MuleCandidateDTO, 0, len(configs))
	for i := range configs {
		cfg := &configs[i]

		muleFix, err := uc.presence.Get(ctx, cfg.UserID)
		if err != nil {
			// A mule with no fix on file simply is not "here"; anything
			// else is a store failure and must not masquerade as absence.
			if err == errors.ErrPresenceNotFound {
				continue
			}
			uc.logger.Error("failed to load mule presence", "mule", cfg.UserID, "err", err)
			return nil, errors.Internal("failed to load mule presence")
		}
		if !coLocated(a.Location, publisherFix, muleFix) {
			continue
		}

		count, err := uc.repo.CountActiveMessages(ctx, cfg.UserID, now)
		if err != nil {
			uc.logger.Error("failed to count mule load", "mule", cfg.UserID, "err", err)
			continue
		}
		available := cfg.MaxSpaceBytes - int64(count)*uc.sizeEstimate
		if available < uc.sizeEstimate {
			continue
		}

		carrying, err := uc.repo.HasActiveCustody(ctx, announcementID, cfg.UserID, now)
		if err != nil || carrying {
			continue
		}

		candidates = append(candidates, &mule.MuleCandidateDTO{
			MuleUserID:          cfg.UserID,
			AvailableSpaceBytes: available,
			MaxSpaceBytes:       cfg.MaxSpaceBytes,
		})
	}
	return candidates, nil
}

func (uc *MuleUsecase) Assign(ctx context.Context, cmd mule.AssignCommand) (*mule.MuleMessageDTO, error) {
	a, err := uc.announcementRepo.GetAnnouncementByID(ctx, cmd.AnnouncementID)
	if err != nil {
		return nil, err
	}
	if a.AuthorID != cmd.CallerID {
		return nil, errors.ErrNotAuthor
	}
	if _, err := uc.userRepo.GetUserByID(ctx, cmd.DestinationUserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	msg := &models.MuleMessage{
		AnnouncementID:    cmd.AnnouncementID,
		MuleUserID:        cmd.MuleUserID,
		DestinationUserID: cmd.DestinationUserID,
		Status:            models.StatusPending,
		ExpiresAt:         now.Add(uc.custodyTTL),
	}
	if err := uc.repo.CreateAssignment(ctx, msg, uc.sizeEstimate, now); err != nil {
		return nil, err
	}
	return mule.ToMessageDTO(msg, now), nil
}

func (uc *MuleUsecase) Deliver(ctx context.Context, muleMessageID, callerID uuid.UUID) (*mule.MuleMessageDTO, error) {
	msg, err := uc.repo.GetMessage(ctx, muleMessageID)
	if err != nil {
		return nil, err
	}
	if msg.MuleUserID != callerID {
		return nil, errors.ErrNotMuleCarrier
	}
	if msg.Status.Terminal() {
		return nil, errors.ErrMuleMessageTerminal
	}

	now := time.Now().UTC()
	if msg.ExpiredBy(now) {
		// Read-time enforcement: lapsed custody is expired, never delivered.
		if err := uc.repo.MarkExpired(ctx, msg.ID); err != nil {
			uc.logger.Error("failed to mark custody expired", "id", msg.ID, "err", err)
		}
		return nil, errors.ErrMuleMessageExpired
	}

	// Self-delivery: the mule is the final recipient, no co-location
	// test makes sense against oneself.
	if msg.MuleUserID != msg.DestinationUserID {
		muleFix, err := uc.presence.Get(ctx, msg.MuleUserID)
		if err != nil {
			return nil, err
		}
		destFix, err := uc.presence.Get(ctx, msg.DestinationUserID)
		if err != nil {
			return nil, err
		}

		var loc *Location.Location
		if msg.Announcement != nil {
			loc = msg.Announcement.Location
		}
		if !coLocated(loc, muleFix, destFix) {
			// Recoverable: the caller retries after moving.
			return nil, errors.ErrNotCoLocated
		}
	}

	// The DELIVERED flip and the received row commit together; a failed
	// delivery leaves the custody retryable.
	if err := uc.repo.CompleteDelivery(ctx, msg, now); err != nil {
		if err == errors.ErrMuleMessageTerminal {
			return nil, err
		}
		uc.logger.Error("failed to deliver mule message", "id", msg.ID, "err", err)
		return nil, errors.ErrDeliverFailed(err)
	}

	msg.Status = models.StatusDelivered
	msg.DeliveredAt = &now
	return mule.ToMessageDTO(msg, now), nil
}

func (uc *MuleUsecase) CarriedMessages(ctx context.Context, muleUserID uuid.UUID) ([]*mule.MuleMessageDTO, error) {
	now := time.Now().UTC()
	msgs, err := uc.repo.ListCarriedMessages(ctx, muleUserID, now)
	if err != nil {
		uc.logger.Error("failed to list carried messages", "mule", muleUserID, "err", err)
		return nil, errors.Internal("failed to list carried messages")
	}

	out := make([]*mule.MuleMessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, mule.ToMessageDTO(&msgs[i], now))
	}
	return out, nil
}

// coLocated applies the two-tier test: both parties inside the named
// location first, then the 500 m direct-proximity fallback between the
// two fixes. The fallback keeps relay working when the named test
// cannot decide (missing coordinates) or both parties stand just
// outside the fence together.
func coLocated(loc *Location.Location, a, b *presence.PresenceRecord) bool {
	if loc != nil && geofence.IsInside(a, loc) && geofence.IsInside(b, loc) {
		return true
	}
	return geofence.NearbyFixes(a, b)
}
