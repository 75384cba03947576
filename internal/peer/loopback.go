package peer

import (
	"context"
	"sync"

	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
)

// LoopbackNetwork wires LoopbackTransport endpoints together in
// memory. It serves two jobs: the startup stub when no radio layer is
// present, and the transport double for tests.
type LoopbackNetwork struct {
	mu        sync.RWMutex
	endpoints map[string]*LoopbackTransport
}

func NewLoopbackNetwork() *LoopbackNetwork {
	return &LoopbackNetwork{endpoints: make(map[string]*LoopbackTransport)}
}

// Join creates an endpoint visible to every other endpoint on the
// network.
func (n *LoopbackNetwork) Join(id string) *LoopbackTransport {
	n.mu.Lock()
	defer n.mu.Unlock()

	t := &LoopbackTransport{id: id, network: n}
	n.endpoints[id] = t
	return t
}

func (n *LoopbackNetwork) leave(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.endpoints, id)
}

func (n *LoopbackNetwork) lookup(id string) *LoopbackTransport {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.endpoints[id]
}

func (n *LoopbackNetwork) ids(exclude string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, 0, len(n.endpoints))
	for id := range n.endpoints {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out
}

type LoopbackTransport struct {
	id      string
	network *LoopbackNetwork

	mu      sync.Mutex
	handler func(peerID string, payload []byte)
	closed  bool
}

func (t *LoopbackTransport) DiscoverPeers(_ context.Context) ([]string, error) {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return nil, appErrors.ErrTransportClosed
	}
	return t.network.ids(t.id), nil
}

func (t *LoopbackTransport) Send(_ context.Context, peerID string, payload []byte) error {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return appErrors.ErrTransportClosed
	}

	target := t.network.lookup(peerID)
	if target == nil {
		return appErrors.ErrUnknownPeer
	}

	target.mu.Lock()
	handler := target.handler
	targetClosed := target.closed
	target.mu.Unlock()

	if targetClosed || handler == nil {
		return appErrors.ErrTransportClosed
	}

	// Copy: the receiver must never observe later mutations.
	buf := make([]byte, len(payload))
	copy(buf, payload)
	handler(t.id, buf)
	return nil
}

func (t *LoopbackTransport) OnReceive(handler func(peerID string, payload []byte)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

func (t *LoopbackTransport) Close() error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.network.leave(t.id)
	return nil
}
