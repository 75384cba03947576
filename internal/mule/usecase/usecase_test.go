package usecase

import (
	"context"
	"testing"
	"time"

	announcementMocks "github.com/aleator1o/anunciosloc/internal/announcement/mocks"
	announcementModels "github.com/aleator1o/anunciosloc/internal/announcement/model"
	Location "github.com/aleator1o/anunciosloc/internal/location/model"
	"github.com/aleator1o/anunciosloc/internal/mule"
	muleMocks "github.com/aleator1o/anunciosloc/internal/mule/mocks"
	models "github.com/aleator1o/anunciosloc/internal/mule/model"
	"github.com/aleator1o/anunciosloc/internal/presence"
	presenceMocks "github.com/aleator1o/anunciosloc/internal/presence/mocks"
	userMocks "github.com/aleator1o/anunciosloc/internal/user/mocks"
	userModels "github.com/aleator1o/anunciosloc/internal/user/model"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinatorMocks struct {
	repo         *muleMocks.MockMuleRepository
	announcement *announcementMocks.MockAnnouncementRepository
	user         *userMocks.MockUserRepository
	presence     *presenceMocks.MockPresenceStore
}

func newCoordinator(t *testing.T) (*MuleUsecase, coordinatorMocks) {
	ctrl := gomock.NewController(t)
	m := coordinatorMocks{
		repo:         muleMocks.NewMockMuleRepository(ctrl),
		announcement: announcementMocks.NewMockAnnouncementRepository(ctrl),
		user:         userMocks.NewMockUserRepository(ctrl),
		presence:     presenceMocks.NewMockPresenceStore(ctrl),
	}
	uc := &MuleUsecase{
		repo:             m.repo,
		announcementRepo: m.announcement,
		userRepo:         m.user,
		presence:         m.presence,
		sizeEstimate:     1024,
		custodyTTL:       time.Hour,
	}
	return uc, m
}

func ptr[T any](v T) *T { return &v }

func luandaFence() *Location.Location {
	return &Location.Location{
		ID:           uuid.New(),
		Name:         "Mercado do Kifica",
		Kind:         Location.KindGeo,
		Latitude:     ptr(-8.8139),
		Longitude:    ptr(13.2319),
		RadiusMeters: ptr(50.0),
	}
}

func fixAt(userID uuid.UUID, lat, lon float64) *presence.PresenceRecord {
	return &presence.PresenceRecord{
		UserID:    userID,
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
		UpdatedAt: time.Now(),
	}
}

func TestGetConfig(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the lazily created default", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.repo.EXPECT().EnsureConfig(gomock.Any(), userID).Return(&models.MuleConfig{
			UserID:        userID,
			MaxSpaceBytes: models.DefaultMaxSpaceBytes,
			IsActive:      true,
		}, nil)

		dto, err := uc.GetConfig(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultMaxSpaceBytes, dto.MaxSpaceBytes)
		assert.True(t, dto.IsActive)
	})
}

func TestSetConfig(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.repo.EXPECT().UpsertConfig(gomock.Any(), gomock.Any()).Return(nil)

		dto, err := uc.SetConfig(context.Background(), mule.SetConfigCommand{
			UserID:        userID,
			MaxSpaceBytes: 2048,
			IsActive:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2048), dto.MaxSpaceBytes)
	})

	t.Run("sad path - zero space", func(t *testing.T) {
		uc, _ := newCoordinator(t)

		_, err := uc.SetConfig(context.Background(), mule.SetConfigCommand{UserID: userID, MaxSpaceBytes: 0})
		assert.Equal(t, appErrors.ErrInvalidMuleSpace, err)
	})

	t.Run("sad path - above the ceiling", func(t *testing.T) {
		uc, _ := newCoordinator(t)

		_, err := uc.SetConfig(context.Background(), mule.SetConfigCommand{
			UserID:        userID,
			MaxSpaceBytes: models.MaxSpaceBytesCeiling + 1,
		})
		assert.Equal(t, appErrors.ErrInvalidMuleSpace, err)
	})
}

func TestListAvailableMules(t *testing.T) {
	publisherID := uuid.New()
	muleID := uuid.New()
	fence := luandaFence()

	a := &announcementModels.Announcement{
		ID:         uuid.New(),
		AuthorID:   publisherID,
		LocationID: &fence.ID,
		Location:   fence,
		Content:    "fresh fish at the market",
	}

	t.Run("co-located mule with capacity is a candidate", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().CountActiveMessages(gomock.Any(), muleID, gomock.Any()).Return(0, nil)
		m.repo.EXPECT().HasActiveCustody(gomock.Any(), a.ID, muleID, gomock.Any()).Return(false, nil)

		candidates, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, muleID, candidates[0].MuleUserID)
		assert.Equal(t, int64(2048), candidates[0].AvailableSpaceBytes)
	})

	t.Run("full mule is skipped", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8139, 13.2319), nil)
		// Two active custodies at 1024 bytes each leave no room.
		m.repo.EXPECT().CountActiveMessages(gomock.Any(), muleID, gomock.Any()).Return(2, nil)

		candidates, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("far-away mule is skipped", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		// ~5.5 km away: outside the fence and beyond the 500 m fallback.
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8639, 13.2319), nil)

		candidates, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("mule without a fix is skipped", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(nil, appErrors.ErrPresenceNotFound)

		candidates, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("presence store failure surfaces instead of hiding mules", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(nil, appErrors.Internal("presence store unreachable"))

		_, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})

	t.Run("mule already carrying this announcement is skipped", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().CountActiveMessages(gomock.Any(), muleID, gomock.Any()).Return(0, nil)
		m.repo.EXPECT().HasActiveCustody(gomock.Any(), a.ID, muleID, gomock.Any()).Return(true, nil)

		candidates, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("proximity fallback rescues parties just outside the fence", func(t *testing.T) {
		uc, m := newCoordinator(t)

		// Both ~150 m from the fence center, ~0 m apart.
		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.presence.EXPECT().Get(gomock.Any(), publisherID).Return(fixAt(publisherID, -8.8152, 13.2319), nil)
		m.repo.EXPECT().ListActiveConfigs(gomock.Any(), publisherID).Return([]models.MuleConfig{
			{UserID: muleID, MaxSpaceBytes: 2048, IsActive: true},
		}, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8152, 13.2319), nil)
		m.repo.EXPECT().CountActiveMessages(gomock.Any(), muleID, gomock.Any()).Return(0, nil)
		m.repo.EXPECT().HasActiveCustody(gomock.Any(), a.ID, muleID, gomock.Any()).Return(false, nil)

		candidates, err := uc.ListAvailableMules(context.Background(), a.ID, publisherID)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
	})
}

func TestAssign(t *testing.T) {
	authorID := uuid.New()
	muleID := uuid.New()
	destinationID := uuid.New()

	a := &announcementModels.Announcement{
		ID:       uuid.New(),
		AuthorID: authorID,
		Content:  "fresh fish at the market",
	}

	cmd := mule.AssignCommand{
		AnnouncementID:    a.ID,
		MuleUserID:        muleID,
		DestinationUserID: destinationID,
		CallerID:          authorID,
	}

	t.Run("happy path - custody created with TTL", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.user.EXPECT().GetUserByID(gomock.Any(), destinationID).Return(&userModels.User{ID: destinationID}, nil)
		m.repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any(), int64(1024), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.MuleMessage, _ int64, now time.Time) error {
				assert.Equal(t, models.StatusPending, msg.Status)
				assert.WithinDuration(t, now.Add(time.Hour), msg.ExpiresAt, time.Second)
				return nil
			})

		dto, err := uc.Assign(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, dto.Status)
	})

	t.Run("sad path - caller is not the author", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)

		stranger := cmd
		stranger.CallerID = uuid.New()
		_, err := uc.Assign(context.Background(), stranger)
		assert.Equal(t, appErrors.ErrNotAuthor, err)
	})

	t.Run("sad path - unknown destination", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.user.EXPECT().GetUserByID(gomock.Any(), destinationID).Return(nil, appErrors.ErrUserNotFound)

		_, err := uc.Assign(context.Background(), cmd)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})

	t.Run("sad path - capacity exhausted surfaces unchanged", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.announcement.EXPECT().GetAnnouncementByID(gomock.Any(), a.ID).Return(a, nil)
		m.user.EXPECT().GetUserByID(gomock.Any(), destinationID).Return(&userModels.User{ID: destinationID}, nil)
		m.repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any(), int64(1024), gomock.Any()).
			Return(appErrors.ErrMuleCapacityExhausted)

		_, err := uc.Assign(context.Background(), cmd)
		assert.Equal(t, appErrors.ErrMuleCapacityExhausted, err)
	})
}

func TestDeliver(t *testing.T) {
	muleID := uuid.New()
	destinationID := uuid.New()
	fence := luandaFence()

	a := &announcementModels.Announcement{
		ID:         uuid.New(),
		AuthorID:   uuid.New(),
		LocationID: &fence.ID,
		Location:   fence,
		Content:    "fresh fish at the market",
	}

	activeMsg := func() *models.MuleMessage {
		return &models.MuleMessage{
			ID:                uuid.New(),
			AnnouncementID:    a.ID,
			Announcement:      a,
			MuleUserID:        muleID,
			DestinationUserID: destinationID,
			Status:            models.StatusPending,
			ExpiresAt:         time.Now().UTC().Add(time.Hour),
		}
	}

	t.Run("happy path - co-located delivery", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8139, 13.2319), nil)
		m.presence.EXPECT().Get(gomock.Any(), destinationID).Return(fixAt(destinationID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().CompleteDelivery(gomock.Any(), msg, gomock.Any()).Return(nil)

		dto, err := uc.Deliver(context.Background(), msg.ID, muleID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, dto.Status)
		assert.NotNil(t, dto.DeliveredAt)
	})

	t.Run("self-delivery skips the co-location test", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()
		msg.DestinationUserID = muleID

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
		m.repo.EXPECT().CompleteDelivery(gomock.Any(), msg, gomock.Any()).Return(nil)

		dto, err := uc.Deliver(context.Background(), msg.ID, muleID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, dto.Status)
	})

	t.Run("sad path - failed delivery transaction leaves custody pending", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8139, 13.2319), nil)
		m.presence.EXPECT().Get(gomock.Any(), destinationID).Return(fixAt(destinationID, -8.8139, 13.2319), nil)
		m.repo.EXPECT().CompleteDelivery(gomock.Any(), msg, gomock.Any()).
			Return(appErrors.Internal("received insert failed"))

		_, err := uc.Deliver(context.Background(), msg.ID, muleID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
		assert.Equal(t, models.StatusPending, msg.Status)
	})

	t.Run("sad path - caller is not the carrier", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)

		_, err := uc.Deliver(context.Background(), msg.ID, uuid.New())
		assert.Equal(t, appErrors.ErrNotMuleCarrier, err)
	})

	t.Run("sad path - already delivered", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()
		msg.Status = models.StatusDelivered

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)

		_, err := uc.Deliver(context.Background(), msg.ID, muleID)
		assert.Equal(t, appErrors.ErrMuleMessageTerminal, err)
	})

	t.Run("sad path - expired custody is flipped and refused", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()
		msg.ExpiresAt = time.Now().UTC().Add(-time.Minute)

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
		m.repo.EXPECT().MarkExpired(gomock.Any(), msg.ID).Return(nil)

		_, err := uc.Deliver(context.Background(), msg.ID, muleID)
		assert.Equal(t, appErrors.ErrMuleMessageExpired, err)
	})

	t.Run("sad path - not co-located leaves state untouched", func(t *testing.T) {
		uc, m := newCoordinator(t)
		msg := activeMsg()

		m.repo.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
		m.presence.EXPECT().Get(gomock.Any(), muleID).Return(fixAt(muleID, -8.8139, 13.2319), nil)
		// Destination ~5.5 km away.
		m.presence.EXPECT().Get(gomock.Any(), destinationID).Return(fixAt(destinationID, -8.8639, 13.2319), nil)

		_, err := uc.Deliver(context.Background(), msg.ID, muleID)
		assert.Equal(t, appErrors.ErrNotCoLocated, err)
		assert.Equal(t, models.StatusPending, msg.Status)
	})
}

func TestCarriedMessages(t *testing.T) {
	muleID := uuid.New()

	t.Run("lists active custody with derived status", func(t *testing.T) {
		uc, m := newCoordinator(t)

		m.repo.EXPECT().ListCarriedMessages(gomock.Any(), muleID, gomock.Any()).Return([]models.MuleMessage{
			{
				ID:         uuid.New(),
				MuleUserID: muleID,
				Status:     models.StatusPending,
				ExpiresAt:  time.Now().UTC().Add(time.Hour),
			},
		}, nil)

		out, err := uc.CarriedMessages(context.Background(), muleID)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, models.StatusPending, out[0].Status)
	})
}
