package peer

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"
)

const (
	heartbeatInterval = 1 * time.Second
	maxFrameBytes     = 10 * 1024 * 1024
)

type heartbeatPacket struct {
	ID   string `json:"id"`
	Port int    `json:"port"`
	TS   int64  `json:"ts"`
}

type lanFrame struct {
	From    string `json:"from"`
	Payload []byte `json:"payload"`
}

type lanPeer struct {
	addr     string
	lastSeen time.Time
}

// LANTransport discovers peers over UDP broadcast heartbeats and moves
// envelopes over length-framed TCP, the same shape a Wi-Fi Direct
// bridge would expose. It is the concrete Transport picked at startup
// when gossip over the local network is wanted.
type LANTransport struct {
	nodeID string
	port   int
	logger logger.Logger

	mu      sync.Mutex
	peers   map[string]lanPeer
	handler func(peerID string, payload []byte)
	closed  bool

	listener net.Listener
	udpConn  *net.UDPConn
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewLANTransport(nodeID string, port int, logger logger.Logger) *LANTransport {
	return &LANTransport{
		nodeID: nodeID,
		port:   port,
		logger: logger,
		peers:  make(map[string]lanPeer),
	}
}

// Start binds the TCP listener and the UDP discovery socket and begins
// broadcasting heartbeats.
func (t *LANTransport) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		return fmt.Errorf("failed to listen on tcp %d: %w", t.port, err)
	}
	t.listener = listener

	udpAddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		listener.Close()
		return fmt.Errorf("failed to resolve udp addr: %w", err)
	}
	udpConn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		listener.Close()
		return fmt.Errorf("failed to listen on udp %d: %w", t.port, err)
	}
	t.udpConn = udpConn

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(3)
	go t.acceptLoop()
	go t.heartbeatLoop(runCtx)
	go t.discoveryLoop()

	return nil
}

func (t *LANTransport) DiscoverPeers(_ context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, appErrors.ErrTransportClosed
	}

	ids := make([]string, 0, len(t.peers))
	for id := range t.peers {
		ids = append(ids, id)
	}
	return ids, nil
}

func (t *LANTransport) Send(ctx context.Context, peerID string, payload []byte) error {
	t.mu.Lock()
	p, ok := t.peers[peerID]
	closed := t.closed
	t.mu.Unlock()

	if closed {
		return appErrors.ErrTransportClosed
	}
	if !ok {
		return appErrors.ErrUnknownPeer
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", p.addr)
	if err != nil {
		return fmt.Errorf("failed to dial peer %s: %w", peerID, err)
	}
	defer conn.Close()

	frame, err := json.Marshal(lanFrame{From: t.nodeID, Payload: payload})
	if err != nil {
		return err
	}
	return writeFrame(conn, frame)
}

func (t *LANTransport) OnReceive(handler func(peerID string, payload []byte)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

func (t *LANTransport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	if t.listener != nil {
		t.listener.Close()
	}
	if t.udpConn != nil {
		t.udpConn.Close()
	}
	t.wg.Wait()
	return nil
}

func (t *LANTransport) acceptLoop() {
	defer t.wg.Done()
	for {
		conn, err := t.listener.Accept()
		if err != nil {
			return
		}
		go t.handleConn(conn)
	}
}

func (t *LANTransport) handleConn(conn net.Conn) {
	defer conn.Close()
	for {
		data, err := readFrame(conn)
		if err != nil {
			return
		}
		var frame lanFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			t.logger.Warn("dropping malformed frame", "remote", conn.RemoteAddr().String())
			continue
		}

		t.mu.Lock()
		handler := t.handler
		t.mu.Unlock()
		if handler != nil {
			handler(frame.From, frame.Payload)
		}
	}
}

func (t *LANTransport) heartbeatLoop(ctx context.Context) {
	defer t.wg.Done()

	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("255.255.255.255:%d", t.port))
	if err != nil {
		t.logger.Error("heartbeat broadcast unavailable", "err", err)
		return
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		t.logger.Error("heartbeat broadcast unavailable", "err", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			packet := heartbeatPacket{ID: t.nodeID, Port: t.port, TS: now.Unix()}
			data, err := json.Marshal(packet)
			if err != nil {
				continue
			}
			_, _ = conn.Write(data)
		}
	}
}

func (t *LANTransport) discoveryLoop() {
	defer t.wg.Done()

	buf := make([]byte, 2048)
	for {
		n, remote, err := t.udpConn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		var packet heartbeatPacket
		if err := json.Unmarshal(buf[:n], &packet); err != nil {
			continue
		}
		if packet.ID == "" || packet.ID == t.nodeID {
			continue
		}

		t.mu.Lock()
		t.peers[packet.ID] = lanPeer{
			addr:     fmt.Sprintf("%s:%d", remote.IP.String(), packet.Port),
			lastSeen: time.Now(),
		}
		t.mu.Unlock()
	}
}

func writeFrame(conn net.Conn, data []byte) error {
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(data)))
	if _, err := conn.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

func readFrame(conn net.Conn) ([]byte, error) {
	header := make([]byte, 4)
	if _, err := io.ReadFull(conn, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	length := binary.BigEndian.Uint32(header)
	if length > maxFrameBytes {
		return nil, fmt.Errorf("frame too large: %d bytes", length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(conn, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}
