package peer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aleator1o/anunciosloc/config"
	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
	"github.com/aleator1o/anunciosloc/internal/policy"
	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
)

// ProfileSource resolves the local user's profile attributes. Inbound
// announcements are filtered against it before they are accepted.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (map[string]string, error)
}

// Service is the decentralized propagation engine. It periodically
// discovers nearby peers, learns their profiles through a
// request/response handshake, pushes local DECENTRALIZED announcements
// to the peers whose profiles pass the announcement policy, and filters
// inbound announcements against the local profile. All peer state is
// ephemeral and lives only for the lifetime of the process.
type Service struct {
	userID    uuid.UUID
	transport Transport
	profiles  ProfileSource
	logger    logger.Logger
	cfg       config.PeerConfig

	mu       sync.Mutex
	peers    map[string]*DiscoveredPeer
	local    map[uuid.UUID]*models.Announcement
	received map[uuid.UUID]*models.Announcement
	seen     map[string]struct{}
	sent     map[string]map[uuid.UUID]struct{}
	lastSent int64
	running  bool

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// now is swapped out by tests to drive staleness.
	now func() time.Time
}

func NewService(
	userID uuid.UUID,
	transport Transport,
	profiles ProfileSource,
	logger logger.Logger,
	cfg config.PeerConfig,
) *Service {
	if cfg.DiscoveryInterval <= 0 {
		cfg.DiscoveryInterval = 10 * time.Second
	}
	if cfg.AdvertiseInterval <= 0 {
		cfg.AdvertiseInterval = 15 * time.Second
	}
	if cfg.PeerStaleAfter <= 0 {
		cfg.PeerStaleAfter = 30 * time.Second
	}
	return &Service{
		userID:    userID,
		transport: transport,
		profiles:  profiles,
		logger:    logger,
		cfg:       cfg,
		peers:     make(map[string]*DiscoveredPeer),
		local:     make(map[uuid.UUID]*models.Announcement),
		received:  make(map[uuid.UUID]*models.Announcement),
		seen:      make(map[string]struct{}),
		sent:      make(map[string]map[uuid.UUID]struct{}),
		now:       time.Now,
	}
}

// Start registers the inbound handler and launches the discovery and
// advertisement tickers. It returns immediately.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.transport.OnReceive(func(peerID string, payload []byte) {
		s.handleEnvelope(runCtx, peerID, payload)
	})

	s.wg.Add(2)
	go s.discoveryLoop(runCtx)
	go s.advertiseLoop(runCtx)

	s.logger.Info("peer propagation started", "user", s.userID)
	return nil
}

// Stop cancels the sweep loops and closes the transport. Safe to call
// more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	if err := s.transport.Close(); err != nil {
		s.logger.Warn("failed to close peer transport", "err", err)
	}
	s.logger.Info("peer propagation stopped", "user", s.userID)
}

func (s *Service) discoveryLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.DiscoveryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RefreshPeers(ctx)
		}
	}
}

func (s *Service) advertiseLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.AdvertiseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepAdvertisements(ctx)
		}
	}
}

// RefreshPeers merges the transport's current view into the peer table
// and drops peers not seen within the staleness window.
func (s *Service) RefreshPeers(ctx context.Context) {
	ids, err := s.transport.DiscoverPeers(ctx)
	if err != nil {
		s.logger.Warn("peer discovery failed", "err", err)
		return
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if p, ok := s.peers[id]; ok {
			p.LastSeen = now
			continue
		}
		s.peers[id] = &DiscoveredPeer{ID: id, LastSeen: now}
	}
	for id, p := range s.peers {
		if now.Sub(p.LastSeen) > s.cfg.PeerStaleAfter {
			delete(s.peers, id)
			delete(s.sent, id)
		}
	}
}

// peerView is an unlocked snapshot of one peer. The profile map is
// safe to read because handleProfileResponse only ever replaces the
// whole map, never mutates one in place.
type peerView struct {
	id      string
	profile map[string]string
}

// SweepAdvertisements walks every known peer once. Peers with an
// unknown profile get a single PROFILE_REQUEST and are skipped until
// the response arrives; the rest receive every local announcement whose
// policy their profile passes. Per-peer failures are logged and never
// abort the sweep.
func (s *Service) SweepAdvertisements(ctx context.Context) {
	s.mu.Lock()
	views := make([]peerView, 0, len(s.peers))
	for _, p := range s.peers {
		views = append(views, peerView{id: p.ID, profile: p.Profile})
	}
	local := make([]*models.Announcement, 0, len(s.local))
	for _, a := range s.local {
		local = append(local, a)
	}
	s.mu.Unlock()

	for _, pv := range views {
		if pv.profile == nil {
			s.requestProfile(ctx, pv.id)
			continue
		}
		for _, a := range local {
			if s.alreadySent(pv.id, a.ID) {
				continue
			}
			if !policy.Evaluate(a.PolicyType, pv.profile, a.PolicyRestrictions) {
				continue
			}
			if err := s.send(ctx, pv.id, Envelope{
				Type:         TypeAnnouncement,
				Announcement: a,
			}); err != nil {
				s.logger.Warn("failed to advertise to peer", "peer", pv.id, "announcement", a.ID, "err", err)
				continue
			}
			s.markSent(pv.id, a.ID)
		}
	}
}

func (s *Service) requestProfile(ctx context.Context, peerID string) {
	s.mu.Lock()
	p, ok := s.peers[peerID]
	if !ok || p.profileRequested {
		s.mu.Unlock()
		return
	}
	p.profileRequested = true
	s.mu.Unlock()

	if err := s.send(ctx, peerID, Envelope{Type: TypeProfileRequest}); err != nil {
		s.logger.Warn("failed to request peer profile", "peer", peerID, "err", err)
		s.mu.Lock()
		if p, ok := s.peers[peerID]; ok {
			p.profileRequested = false
		}
		s.mu.Unlock()
	}
}

func (s *Service) handleEnvelope(ctx context.Context, peerID string, payload []byte) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		s.logger.Warn("dropping malformed envelope", "peer", peerID)
		return
	}

	key := fmt.Sprintf("%s_%d", env.SenderID, env.Timestamp)
	s.mu.Lock()
	if _, dup := s.seen[key]; dup {
		s.mu.Unlock()
		return
	}
	s.seen[key] = struct{}{}
	s.mu.Unlock()

	switch env.Type {
	case TypeAnnouncement:
		s.handleAnnouncement(ctx, peerID, env.Announcement)
	case TypeProfileRequest:
		s.handleProfileRequest(ctx, peerID)
	case TypeProfileResponse:
		s.handleProfileResponse(peerID, env.Profile)
	default:
		s.logger.Warn("dropping envelope of unknown type", "peer", peerID, "type", env.Type)
	}
}

func (s *Service) handleAnnouncement(ctx context.Context, peerID string, a *models.Announcement) {
	if a == nil {
		return
	}

	profile, err := s.profiles.GetProfile(ctx, s.userID)
	if err != nil {
		s.logger.Error("failed to load own profile", "err", err)
		return
	}
	if !policy.Evaluate(a.PolicyType, profile, a.PolicyRestrictions) {
		return
	}

	s.mu.Lock()
	_, dup := s.received[a.ID]
	if !dup {
		s.received[a.ID] = a
	}
	s.mu.Unlock()
	if !dup {
		s.logger.Info("received announcement from peer", "peer", peerID, "announcement", a.ID)
	}
}

func (s *Service) handleProfileRequest(ctx context.Context, peerID string) {
	profile, err := s.profiles.GetProfile(ctx, s.userID)
	if err != nil {
		s.logger.Error("failed to load own profile", "err", err)
		return
	}
	if err := s.send(ctx, peerID, Envelope{
		Type:    TypeProfileResponse,
		Profile: profile,
	}); err != nil {
		s.logger.Warn("failed to answer profile request", "peer", peerID, "err", err)
	}
}

func (s *Service) handleProfileResponse(peerID string, profile map[string]string) {
	if profile == nil {
		profile = map[string]string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.peers[peerID]
	if !ok {
		p = &DiscoveredPeer{ID: peerID, LastSeen: s.now()}
		s.peers[peerID] = p
	}
	p.Profile = profile
}

// AddLocalAnnouncement registers an announcement for gossip. Only
// DECENTRALIZED announcements travel peer to peer.
func (s *Service) AddLocalAnnouncement(a *models.Announcement) error {
	if a.DeliveryMode != models.DeliveryDecentralized {
		return appErrors.ErrNotDecentralized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.local[a.ID] = a
	return nil
}

// RemoveLocalAnnouncement stops gossiping an announcement. Copies
// already accepted by peers stay with them.
func (s *Service) RemoveLocalAnnouncement(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.local, id)
	for _, sent := range s.sent {
		delete(sent, id)
	}
}

// ReceivedAnnouncements returns the announcements accepted from peers
// so far, newest first.
func (s *Service) ReceivedAnnouncements() []*models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Announcement, 0, len(s.received))
	for _, a := range s.received {
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Peers returns a snapshot of the current peer table.
func (s *Service) Peers() []DiscoveredPeer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DiscoveredPeer, 0, len(s.peers))
	for _, p := range s.peers {
		out = append(out, *p)
	}
	return out
}

func (s *Service) send(ctx context.Context, peerID string, env Envelope) error {
	env.SenderID = s.userID.String()
	env.Timestamp = s.nextTimestamp()

	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.transport.Send(ctx, peerID, payload)
}

// nextTimestamp returns strictly increasing wall-clock milliseconds, so
// (senderID, timestamp) identifies exactly one envelope even when
// several are sent within the same millisecond.
func (s *Service) nextTimestamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now().UnixMilli()
	if ts <= s.lastSent {
		ts = s.lastSent + 1
	}
	s.lastSent = ts
	return ts
}

func (s *Service) alreadySent(peerID string, announcementID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sent, ok := s.sent[peerID]
	if !ok {
		return false
	}
	_, done := sent[announcementID]
	return done
}

func (s *Service) markSent(peerID string, announcementID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sent[peerID] == nil {
		s.sent[peerID] = make(map[uuid.UUID]struct{})
	}
	s.sent[peerID][announcementID] = struct{}{}
}
