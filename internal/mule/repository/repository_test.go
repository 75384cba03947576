package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	announcementModels "github.com/aleator1o/anunciosloc/internal/announcement/model"
	locationModels "github.com/aleator1o/anunciosloc/internal/location/model"
	models "github.com/aleator1o/anunciosloc/internal/mule/model"
	userModels "github.com/aleator1o/anunciosloc/internal/user/model"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("anunciosloc"),
		postgres.WithUsername("anunciosloc"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*userModels.User)(nil),
		(*locationModels.Location)(nil),
		(*announcementModels.Announcement)(nil),
		(*announcementModels.ReceivedAnnouncement)(nil),
		(*models.MuleConfig)(nil),
		(*models.MuleMessage)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE mule_messages, mule_configs, received_announcements, announcements, locations, users CASCADE`)
		require.NoError(t, err)
	})
}

func seedUser(t *testing.T) *userModels.User {
	u := &userModels.User{Username: "user-" + uuid.NewString()[:8]}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func seedAnnouncement(t *testing.T, authorID uuid.UUID) *announcementModels.Announcement {
	a := &announcementModels.Announcement{AuthorID: authorID, Content: "relayed announcement"}
	_, err := testDB.NewInsert().Model(a).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return a
}

func seedConfig(t *testing.T, userID uuid.UUID, maxSpace int64, active bool) {
	cfg := &models.MuleConfig{UserID: userID, MaxSpaceBytes: maxSpace, IsActive: active}
	_, err := testDB.NewInsert().Model(cfg).Exec(context.Background())
	require.NoError(t, err)
}

func pendingMessage(announcementID, muleID, destinationID uuid.UUID, expiresAt time.Time) *models.MuleMessage {
	return &models.MuleMessage{
		AnnouncementID:    announcementID,
		MuleUserID:        muleID,
		DestinationUserID: destinationID,
		Status:            models.StatusPending,
		ExpiresAt:         expiresAt,
	}
}

func Test_EnsureConfig(t *testing.T) {
	truncateAll(t)
	repo := NewMuleRepository(testDB, logger.Logger{})
	user := seedUser(t)

	cfg, err := repo.EnsureConfig(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMaxSpaceBytes, cfg.MaxSpaceBytes)
	assert.True(t, cfg.IsActive)

	// A second call returns the same row, it does not reset it.
	cfg.MaxSpaceBytes = 2048
	require.NoError(t, repo.UpsertConfig(context.Background(), cfg))

	again, err := repo.EnsureConfig(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), again.MaxSpaceBytes)
}

func Test_ListActiveConfigs(t *testing.T) {
	truncateAll(t)
	repo := NewMuleRepository(testDB, logger.Logger{})

	publisher := seedUser(t)
	active := seedUser(t)
	inactive := seedUser(t)
	seedConfig(t, publisher.ID, 2048, true)
	seedConfig(t, active.ID, 2048, true)
	seedConfig(t, inactive.ID, 2048, false)

	configs, err := repo.ListActiveConfigs(context.Background(), publisher.ID)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, active.ID, configs[0].UserID)
}

func Test_CreateAssignment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("capacity bound: 2048-byte mule takes two and refuses the third", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		seedConfig(t, muleUser.ID, 2048, true)

		expires := now.Add(time.Hour)
		for i := 0; i < 2; i++ {
			dest := seedUser(t)
			a := seedAnnouncement(t, author.ID)
			msg := pendingMessage(a.ID, muleUser.ID, dest.ID, expires)
			require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))
		}

		dest := seedUser(t)
		a := seedAnnouncement(t, author.ID)
		third := pendingMessage(a.ID, muleUser.ID, dest.ID, expires)
		err := repo.CreateAssignment(context.Background(), third, 1024, now)
		assert.Equal(t, appErrors.ErrMuleCapacityExhausted, err)
	})

	t.Run("duplicate active triple is refused", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
		a := seedAnnouncement(t, author.ID)

		expires := now.Add(time.Hour)
		require.NoError(t, repo.CreateAssignment(context.Background(),
			pendingMessage(a.ID, muleUser.ID, dest.ID, expires), 1024, now))

		err := repo.CreateAssignment(context.Background(),
			pendingMessage(a.ID, muleUser.ID, dest.ID, expires), 1024, now)
		assert.Equal(t, appErrors.ErrDuplicateCustody, err)
	})

	t.Run("expired custody frees its space", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		seedConfig(t, muleUser.ID, 1024, true)
		a := seedAnnouncement(t, author.ID)

		// An already-lapsed custody occupies no space at read time.
		lapsed := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(-time.Minute))
		_, err := testDB.NewInsert().Model(lapsed).Exec(context.Background())
		require.NoError(t, err)

		fresh := seedAnnouncement(t, author.ID)
		msg := pendingMessage(fresh.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
		require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))
	})

	t.Run("concurrent assigns never jointly exceed capacity", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		seedConfig(t, muleUser.ID, 2048, true)

		type target struct {
			announcementID uuid.UUID
			destID         uuid.UUID
		}
		targets := make([]target, 8)
		for i := range targets {
			targets[i] = target{
				announcementID: seedAnnouncement(t, author.ID).ID,
				destID:         seedUser(t).ID,
			}
		}

		var wg sync.WaitGroup
		errs := make([]error, len(targets))
		for i, tg := range targets {
			wg.Add(1)
			go func(i int, tg target) {
				defer wg.Done()
				msg := pendingMessage(tg.announcementID, muleUser.ID, tg.destID, now.Add(time.Hour))
				errs[i] = repo.CreateAssignment(context.Background(), msg, 1024, now)
			}(i, tg)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.Equal(t, appErrors.ErrMuleCapacityExhausted, err)
		}
		assert.Equal(t, 2, succeeded)

		count, err := repo.CountActiveMessages(context.Background(), muleUser.ID, now)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("concurrent assigns of one triple create exactly one custody", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
		a := seedAnnouncement(t, author.ID)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				msg := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
				errs[i] = repo.CreateAssignment(context.Background(), msg, 1024, now)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.Equal(t, appErrors.ErrDuplicateCustody, err)
		}
		assert.Equal(t, 1, succeeded)

		count, err := repo.CountActiveMessages(context.Background(), muleUser.ID, now)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("inactive mule is refused", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		seedConfig(t, muleUser.ID, 2048, false)
		a := seedAnnouncement(t, author.ID)

		err := repo.CreateAssignment(context.Background(),
			pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour)), 1024, now)
		assert.Equal(t, appErrors.ErrMuleInactive, err)
	})

	t.Run("missing config is refused", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		a := seedAnnouncement(t, author.ID)

		err := repo.CreateAssignment(context.Background(),
			pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour)), 1024, now)
		assert.Equal(t, appErrors.ErrMuleInactive, err)
	})
}

func receivedCount(t *testing.T, userID, announcementID uuid.UUID) int {
	t.Helper()
	count, err := testDB.NewSelect().
		Model((*announcementModels.ReceivedAnnouncement)(nil)).
		Where("user_id = ?", userID).
		Where("announcement_id = ?", announcementID).
		Count(context.Background())
	require.NoError(t, err)
	return count
}

func Test_CompleteDelivery(t *testing.T) {
	now := time.Now().UTC()

	t.Run("happy path: delivery and received row commit together", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
		a := seedAnnouncement(t, author.ID)

		msg := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
		require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))
		require.NoError(t, repo.CompleteDelivery(context.Background(), msg, now))

		fetched, err := repo.GetMessage(context.Background(), msg.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, fetched.Status)
		assert.NotNil(t, fetched.DeliveredAt)
		assert.Equal(t, 1, receivedCount(t, dest.ID, a.ID))
	})

	t.Run("refuses a second delivery", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
		a := seedAnnouncement(t, author.ID)

		msg := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
		require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))
		require.NoError(t, repo.CompleteDelivery(context.Background(), msg, now))

		err := repo.CompleteDelivery(context.Background(), msg, now)
		assert.Equal(t, appErrors.ErrMuleMessageTerminal, err)
	})

	t.Run("refuses an expired row", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		muleUser := seedUser(t)
		dest := seedUser(t)
		a := seedAnnouncement(t, author.ID)

		lapsed := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(-time.Minute))
		_, err := testDB.NewInsert().Model(lapsed).Returning("*").Exec(context.Background())
		require.NoError(t, err)

		err = repo.CompleteDelivery(context.Background(), lapsed, now)
		assert.Equal(t, appErrors.ErrMuleMessageTerminal, err)
		assert.Equal(t, 0, receivedCount(t, dest.ID, a.ID))
	})

	t.Run("two carriers delivering the same announcement keep one received row", func(t *testing.T) {
		truncateAll(t)
		repo := NewMuleRepository(testDB, logger.Logger{})

		author := seedUser(t)
		dest := seedUser(t)
		a := seedAnnouncement(t, author.ID)

		for i := 0; i < 2; i++ {
			muleUser := seedUser(t)
			seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
			msg := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
			require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))
			require.NoError(t, repo.CompleteDelivery(context.Background(), msg, now))
		}

		assert.Equal(t, 1, receivedCount(t, dest.ID, a.ID))
	})
}

func Test_MarkExpired(t *testing.T) {
	truncateAll(t)
	repo := NewMuleRepository(testDB, logger.Logger{})
	now := time.Now().UTC()

	author := seedUser(t)
	muleUser := seedUser(t)
	dest := seedUser(t)
	seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
	a := seedAnnouncement(t, author.ID)

	msg := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
	require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))
	require.NoError(t, repo.MarkExpired(context.Background(), msg.ID))

	fetched, err := repo.GetMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, fetched.Status)
}

func Test_CountAndCustodyQueries(t *testing.T) {
	truncateAll(t)
	repo := NewMuleRepository(testDB, logger.Logger{})
	now := time.Now().UTC()

	author := seedUser(t)
	muleUser := seedUser(t)
	dest := seedUser(t)
	seedConfig(t, muleUser.ID, models.DefaultMaxSpaceBytes, true)
	a := seedAnnouncement(t, author.ID)

	msg := pendingMessage(a.ID, muleUser.ID, dest.ID, now.Add(time.Hour))
	require.NoError(t, repo.CreateAssignment(context.Background(), msg, 1024, now))

	count, err := repo.CountActiveMessages(context.Background(), muleUser.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	carrying, err := repo.HasActiveCustody(context.Background(), a.ID, muleUser.ID, now)
	require.NoError(t, err)
	assert.True(t, carrying)

	carried, err := repo.ListCarriedMessages(context.Background(), muleUser.ID, now)
	require.NoError(t, err)
	require.Len(t, carried, 1)
	require.NotNil(t, carried[0].Announcement)
	assert.Equal(t, a.ID, carried[0].Announcement.ID)

	// Delivery removes the row from every active view.
	require.NoError(t, repo.CompleteDelivery(context.Background(), msg, now))

	count, err = repo.CountActiveMessages(context.Background(), muleUser.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	carrying, err = repo.HasActiveCustody(context.Background(), a.ID, muleUser.ID, now)
	require.NoError(t, err)
	assert.False(t, carrying)
}
