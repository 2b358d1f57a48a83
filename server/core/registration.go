package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const defaultHeartbeat = 30 * time.Second

// PlayerCounter reports the current number of joined players.
type PlayerCounter interface {
	PlayerCount() int
}

// RegistrationInfo is what the master lists for this server.
type RegistrationInfo struct {
	Name       string
	Address    string
	Arena      string
	Version    string
	Region     string
	MaxPlayers int
}

// Registration handles registering and heartbeating with the master server.
type Registration struct {
	masterURL string
	info      RegistrationInfo
	players   PlayerCounter
	client    *http.Client
	interval  time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once

	mu       sync.Mutex
	serverID string
}

type regRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Arena      string `json:"arena"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
	Region     string `json:"region"`
}

type regResponse struct {
	ID string `json:"id"`
}

type heartbeatRequest struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
}

func NewRegistration(masterURL string, info RegistrationInfo, players PlayerCounter) *Registration {
	return &Registration{
		masterURL: masterURL,
		info:      info,
		players:   players,
		client:    &http.Client{Timeout: 5 * time.Second},
		interval:  defaultHeartbeat,
		stopCh:    make(chan struct{}),
	}
}

func (r *Registration) Start() {
	if err := r.register(); err != nil {
		log.Printf("[registration] initial registration failed: %v", err)
	}
	go r.heartbeatLoop()
}

func (r *Registration) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

// ServerID is the id the master assigned, empty until registered.
func (r *Registration) ServerID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.serverID
}

func (r *Registration) register() error {
	body, err := json.Marshal(regRequest{
		Name:       r.info.Name,
		Address:    r.info.Address,
		Arena:      r.info.Arena,
		Players:    r.players.PlayerCount(),
		MaxPlayers: r.info.MaxPlayers,
		Version:    r.info.Version,
		Region:     r.info.Region,
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := r.client.Post(r.masterURL+"/servers/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result regResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	r.mu.Lock()
	r.serverID = result.ID
	r.mu.Unlock()
	log.Printf("[registration] registered with master (id=%s)", result.ID)
	return nil
}

func (r *Registration) heartbeatLoop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			if err := r.sendHeartbeat(); err != nil {
				log.Printf("[registration] heartbeat failed: %v", err)
			}
		}
	}
}

func (r *Registration) sendHeartbeat() error {
	id := r.ServerID()
	if id == "" {
		return r.register()
	}

	body, err := json.Marshal(heartbeatRequest{
		ID:      id,
		Players: r.players.PlayerCount(),
	})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	resp, err := r.client.Post(r.masterURL+"/servers/heartbeat", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Println("[registration] master lost our registration, re-registering")
		return r.register()
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return nil
}
