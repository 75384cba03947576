package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aleator1o/anunciosloc/internal/announcement"
	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
	"github.com/aleator1o/anunciosloc/internal/mule"
	"github.com/aleator1o/anunciosloc/internal/policy"
	"github.com/aleator1o/anunciosloc/internal/presence"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type updatePresenceRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Identifiers []string `json:"identifiers"`
}

func (s *Server) handleUpdatePresence(w http.ResponseWriter, r *http.Request) {
	var req updatePresenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, appErrors.InvalidArg("malformed request body"))
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		respondError(w, appErrors.ErrInvalidCoordinates)
		return
	}
	if req.Latitude != nil {
		if *req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
			respondError(w, appErrors.ErrInvalidCoordinates)
			return
		}
	}
	if req.Latitude == nil && len(req.Identifiers) == 0 {
		respondError(w, appErrors.InvalidArg("a fix needs coordinates or network identifiers"))
		return
	}

	record := &presence.PresenceRecord{
		UserID:      userIDFrom(r.Context()),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Identifiers: req.Identifiers,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.presence.Upsert(r.Context(), record); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

type announcementRequest struct {
	LocationID         *uuid.UUID           `json:"locationId"`
	Content            string               `json:"content"`
	Visibility         models.Visibility    `json:"visibility"`
	DeliveryMode       models.DeliveryMode  `json:"deliveryMode"`
	PolicyType         policy.Type          `json:"policyType"`
	PolicyRestrictions []policy.Restriction `json:"policyRestrictions"`
	StartsAt           *time.Time           `json:"startsAt"`
	EndsAt             *time.Time           `json:"endsAt"`
}

func (s *Server) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, appErrors.InvalidArg("malformed request body"))
		return
	}

	dto, err := s.announcements.Create(r.Context(), announcement.CreateAnnouncementCommand{
		AuthorID:           userIDFrom(r.Context()),
		LocationID:         req.LocationID,
		Content:            req.Content,
		Visibility:         req.Visibility,
		DeliveryMode:       req.DeliveryMode,
		PolicyType:         req.PolicyType,
		PolicyRestrictions: req.PolicyRestrictions,
		StartsAt:           req.StartsAt,
		EndsAt:             req.EndsAt,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto)
}

func (s *Server) handleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, appErrors.InvalidArg("malformed announcement id"))
		return
	}
	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, appErrors.InvalidArg("malformed request body"))
		return
	}

	dto, err := s.announcements.Update(r.Context(), announcement.UpdateAnnouncementCommand{
		AnnouncementID:     id,
		AuthorID:           userIDFrom(r.Context()),
		LocationID:         req.LocationID,
		Content:            req.Content,
		Visibility:         req.Visibility,
		DeliveryMode:       req.DeliveryMode,
		PolicyType:         req.PolicyType,
		PolicyRestrictions: req.PolicyRestrictions,
		StartsAt:           req.StartsAt,
		EndsAt:             req.EndsAt,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

func (s *Server) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, appErrors.InvalidArg("malformed announcement id"))
		return
	}
	if err := s.announcements.Delete(r.Context(), id, userIDFrom(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleAvailableAnnouncements(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAvailableFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}

	dtos, err := s.announcements.Available(r.Context(), userIDFrom(r.Context()), time.Now().UTC(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleAnnouncementFeed(w http.ResponseWriter, r *http.Request) {
	dtos, err := s.announcements.Feed(r.Context(), userIDFrom(r.Context()), time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dtos)
}

func parseAvailableFilter(r *http.Request) (announcement.AvailableFilter, error) {
	var filter announcement.AvailableFilter
	if raw := r.URL.Query().Get("authorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, appErrors.InvalidArg("malformed authorId filter")
		}
		filter.AuthorID = &id
	}
	if raw := r.URL.Query().Get("locationId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, appErrors.InvalidArg("malformed locationId filter")
		}
		filter.LocationID = &id
	}
	return filter, nil
}

func (s *Server) handleGetMuleConfig(w http.ResponseWriter, r *http.Request) {
	dto, err := s.mules.GetConfig(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

type setMuleConfigRequest struct {
	MaxSpaceBytes int64 `json:"maxSpaceBytes"`
	IsActive      bool  `json:"isActive"`
}

func (s *Server) handleSetMuleConfig(w http.ResponseWriter, r *http.Request) {
	var req setMuleConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, appErrors.InvalidArg("malformed request body"))
		return
	}

	dto, err := s.mules.SetConfig(r.Context(), mule.SetConfigCommand{
		UserID:        userIDFrom(r.Context()),
		MaxSpaceBytes: req.MaxSpaceBytes,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

func (s *Server) handleAvailableMules(w http.ResponseWriter, r *http.Request) {
	announcementID, err := uuid.Parse(r.URL.Query().Get("announcementId"))
	if err != nil {
		respondError(w, appErrors.InvalidArg("malformed announcementId"))
		return
	}

	candidates, err := s.mules.ListAvailableMules(r.Context(), announcementID, userIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, candidates)
}

type muleSendRequest struct {
	AnnouncementID    uuid.UUID `json:"announcementId"`
	MuleUserID        uuid.UUID `json:"muleUserId"`
	DestinationUserID uuid.UUID `json:"destinationUserId"`
}

func (s *Server) handleMuleSend(w http.ResponseWriter, r *http.Request) {
	var req muleSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, appErrors.InvalidArg("malformed request body"))
		return
	}

	dto, err := s.mules.Assign(r.Context(), mule.AssignCommand{
		AnnouncementID:    req.AnnouncementID,
		MuleUserID:        req.MuleUserID,
		DestinationUserID: req.DestinationUserID,
		CallerID:          userIDFrom(r.Context()),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto)
}

func (s *Server) handleMuleMessages(w http.ResponseWriter, r *http.Request) {
	dtos, err := s.mules.CarriedMessages(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dtos)
}

type muleDeliverRequest struct {
	MuleMessageID uuid.UUID `json:"muleMessageId"`
}

func (s *Server) handleMuleDeliver(w http.ResponseWriter, r *http.Request) {
	var req muleDeliverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, appErrors.InvalidArg("malformed request body"))
		return
	}

	dto, err := s.mules.Deliver(r.Context(), req.MuleMessageID, userIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

func (s *Server) handlePeerReceived(w http.ResponseWriter, r *http.Request) {
	if s.peers == nil {
		respondError(w, appErrors.Unavailable("peer propagation is not running"))
		return
	}

	received := s.peers.ReceivedAnnouncements()
	dtos := make([]*announcement.AnnouncementDTO, 0, len(received))
	for _, a := range received {
		dtos = append(dtos, announcement.ToDTO(a, true))
	}
	respondJSON(w, http.StatusOK, dtos)
}
