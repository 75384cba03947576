package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleator1o/anunciosloc/config"
	announcementRepository "github.com/aleator1o/anunciosloc/internal/announcement/repository"
	announcementUsecase "github.com/aleator1o/anunciosloc/internal/announcement/usecase"
	locationRepository "github.com/aleator1o/anunciosloc/internal/location/repository"
	muleRepository "github.com/aleator1o/anunciosloc/internal/mule/repository"
	muleUsecase "github.com/aleator1o/anunciosloc/internal/mule/usecase"
	"github.com/aleator1o/anunciosloc/internal/peer"
	presenceStore "github.com/aleator1o/anunciosloc/internal/presence/store"
	profileRepository "github.com/aleator1o/anunciosloc/internal/profile/repository"
	"github.com/aleator1o/anunciosloc/internal/server"
	userRepository "github.com/aleator1o/anunciosloc/internal/user/repository"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	configName string
	peerUserID string
)

var rootCmd = &cobra.Command{
	Use:   "anunciosloc",
	Short: "Location-gated announcement delivery engine",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the announcement service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&configName, "config", "c", "config", "config file name (without extension)")
	serveCmd.Flags().StringVar(&peerUserID, "peer-user", "", "user identity for peer propagation (uuid, random when empty)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve() error {
	v, err := config.LoadConfig(configName)
	if err != nil {
		return err
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	redisClient, err := presenceStore.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	userRepo := userRepository.NewUserRepository(db, *log)
	locationRepo := locationRepository.NewLocationRepository(db, *log)
	profileRepo := profileRepository.NewProfileRepository(db, *log)
	announcementRepo := announcementRepository.NewAnnouncementRepository(db, *log)
	muleRepo := muleRepository.NewMuleRepository(db, *log)
	presence := presenceStore.NewRedisPresenceStore(redisClient, *log)

	announcements := announcementUsecase.NewAnnouncementUsecase(announcementRepo, locationRepo, profileRepo, presence, *log)
	mules := muleUsecase.NewMuleUsecase(muleRepo, announcementRepo, userRepo, presence, *log, *cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	peerID, err := resolvePeerUserID()
	if err != nil {
		return err
	}
	transport := peer.NewLANTransport(peerID.String(), cfg.Peer.ListenPort, *log)
	if err := transport.Start(ctx); err != nil {
		return err
	}
	peerService := peer.NewService(peerID, transport, profileRepo, *log, cfg.Peer)
	if err := peerService.Start(ctx); err != nil {
		return err
	}
	defer peerService.Stop()

	srv := server.NewServer(announcements, mules, presence, peerService, server.HeaderAuthenticator{}, *log)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func resolvePeerUserID() (uuid.UUID, error) {
	if peerUserID == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(peerUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --peer-user: %w", err)
	}
	return id, nil
}
