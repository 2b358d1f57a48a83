package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/lazertag/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

var ErrNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("ClientState(%d)", int(s))
}

// JoinOptions is what the client presents in its JoinRequest.
type JoinOptions struct {
	Version        string
	PlayerName     string
	ReconnectToken string
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	networkID      esync.NetworkId
	participantID  string
	reconnectToken string
	serverName     string
	tickRate       int
	arena          string
	conn           *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	shotCh    chan messages.ShotEvent
	hitCh     chan messages.HitEvent
	deathCh   chan messages.DeathEvent
	despawnCh chan messages.DespawnEvent
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		shotCh:     make(chan messages.ShotEvent, 16),
		hitCh:      make(chan messages.HitEvent, 16),
		deathCh:    make(chan messages.DeathEvent, 8),
		despawnCh:  make(chan messages.DespawnEvent, 8),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address string, join JoinOptions) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.SendMessage(messages.JoinRequest{
			Version:        join.Version,
			PlayerName:     join.PlayerName,
			ReconnectToken: join.ReconnectToken,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.handleJoinAccepted(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.ShotEvent) {
		offer(c.shotCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.HitEvent) {
		offer(c.hitCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.DeathEvent) {
		offer(c.deathCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.DespawnEvent) {
		offer(c.despawnCh, evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) handleJoinAccepted(msg messages.JoinAccepted) {
	log.Printf("[client] join accepted: networkID=%d server=%s arena=%s tickRate=%d",
		msg.NetworkID, msg.ServerName, msg.Arena, msg.TickRate)
	c.mu.Lock()
	c.networkID = msg.NetworkID
	c.participantID = msg.ParticipantID
	c.reconnectToken = msg.ReconnectToken
	c.serverName = msg.ServerName
	c.tickRate = msg.TickRate
	c.arena = msg.Arena
	c.state = StateJoinedGame
	c.mu.Unlock()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) ParticipantID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.participantID
}

// ReconnectToken returns the token to present when rejoining after a drop.
func (c *Client) ReconnectToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reconnectToken
}

func (c *Client) Arena() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.arena
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainShotEvents returns all pending shot events, non-blocking.
func (c *Client) DrainShotEvents() []messages.ShotEvent {
	return drainChan(c.shotCh)
}

// DrainHitEvents returns all pending hit events, non-blocking.
func (c *Client) DrainHitEvents() []messages.HitEvent {
	return drainChan(c.hitCh)
}

// DrainDeathEvents returns all pending death events, non-blocking.
func (c *Client) DrainDeathEvents() []messages.DeathEvent {
	return drainChan(c.deathCh)
}

func (c *Client) DrainDespawnEvents() []messages.DespawnEvent {
	return drainChan(c.despawnCh)
}

// offer drops evt when the consumer has fallen behind.
func offer[T any](ch chan T, evt T) {
	select {
	case ch <- evt:
	default:
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
