package peer

import "context"

// Transport is the abstract peer discovery + send/receive capability.
// The radio layer behind it (Wi-Fi Direct pairing and friends) is a
// collaborator, not part of this engine; one concrete implementation is
// selected at startup.
type Transport interface {
	// DiscoverPeers returns the ids of currently reachable peers.
	DiscoverPeers(ctx context.Context) ([]string, error)

	// Send delivers one payload to one peer. Errors are per-peer: the
	// caller logs and moves on to the next peer.
	Send(ctx context.Context, peerID string, payload []byte) error

	// OnReceive registers the single inbound handler. Must be called
	// before the first payload can arrive.
	OnReceive(handler func(peerID string, payload []byte))

	Close() error
}
