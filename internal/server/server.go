package server

import (
	"net/http"

	"github.com/aleator1o/anunciosloc/internal/announcement"
	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
	"github.com/aleator1o/anunciosloc/internal/mule"
	"github.com/aleator1o/anunciosloc/internal/presence"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// PeerFeed is the slice of the propagation service the HTTP surface
// needs: the announcements accepted from nearby peers.
type PeerFeed interface {
	ReceivedAnnouncements() []*models.Announcement
}

type Server struct {
	announcements announcement.AnnouncementUsecase
	mules         mule.MuleUsecase
	presence      presence.PresenceStore
	peers         PeerFeed
	auth          Authenticator
	logger        logger.Logger
}

func NewServer(
	announcements announcement.AnnouncementUsecase,
	mules mule.MuleUsecase,
	presenceStore presence.PresenceStore,
	peers PeerFeed,
	auth Authenticator,
	logger logger.Logger,
) *Server {
	return &Server{
		announcements: announcements,
		mules:         mules,
		presence:      presenceStore,
		peers:         peers,
		auth:          auth,
		logger:        logger,
	}
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID"},
	}))
	r.Use(requestLogger(s.logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.withAuth)

		r.Post("/api/presence/location", s.handleUpdatePresence)

		r.Post("/api/announcements", s.handleCreateAnnouncement)
		r.Put("/api/announcements/{id}", s.handleUpdateAnnouncement)
		r.Delete("/api/announcements/{id}", s.handleDeleteAnnouncement)
		r.Get("/api/announcements/available", s.handleAvailableAnnouncements)
		r.Get("/api/announcements/feed", s.handleAnnouncementFeed)

		r.Get("/api/mules/config", s.handleGetMuleConfig)
		r.Post("/api/mules/config", s.handleSetMuleConfig)
		r.Get("/api/mules/available", s.handleAvailableMules)
		r.Post("/api/mules/send", s.handleMuleSend)
		r.Get("/api/mules/messages", s.handleMuleMessages)
		r.Post("/api/mules/deliver", s.handleMuleDeliver)

		r.Get("/api/peers/received", s.handlePeerReceived)
	})

	return r
}
