package peer

import (
	"time"

	models "github.com/aleator1o/anunciosloc/internal/announcement/model"
)

type MessageType string

const (
	TypeAnnouncement    MessageType = "ANNOUNCEMENT"
	TypeProfileRequest  MessageType = "PROFILE_REQUEST"
	TypeProfileResponse MessageType = "PROFILE_RESPONSE"
)

// Envelope is the gossip wire unit. (SenderID, Timestamp) doubles as
// the de-duplication key that suppresses re-processing loops; senders
// stamp strictly increasing millisecond timestamps so the pair is
// unique per envelope.
type Envelope struct {
	Type         MessageType          `json:"type"`
	Announcement *models.Announcement `json:"announcement,omitempty"`
	Profile      map[string]string    `json:"profile,omitempty"`
	SenderID     string               `json:"senderId"`
	Timestamp    int64                `json:"timestamp"`
}

// DiscoveredPeer is ephemeral per-device state, never persisted. The
// profile is filled in lazily by the request/response handshake.
type DiscoveredPeer struct {
	ID       string
	LastSeen time.Time

	// Profile is nil until a PROFILE_RESPONSE arrives; an empty map is a
	// known-empty profile.
	Profile map[string]string

	profileRequested bool
}
