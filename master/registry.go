package main

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ServerInfo describes a game server visible to clients.
type ServerInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Arena      string `json:"arena"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
	Region     string `json:"region"`
}

type serverRecord struct {
	ServerInfo
	LastSeen time.Time
}

// Registry is an in-memory store of active game servers with TTL-based expiry.
type Registry struct {
	mu      sync.RWMutex
	servers map[string]*serverRecord
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		servers: make(map[string]*serverRecord),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
}

// Start runs expiry in the background until Stop.
func (r *Registry) Start(interval time.Duration) {
	go r.cleanupLoop(interval)
}

func (r *Registry) Stop() {
	close(r.stopCh)
}

func (r *Registry) Register(info ServerInfo) string {
	info.ID = uuid.NewString()

	r.mu.Lock()
	r.servers[info.ID] = &serverRecord{
		ServerInfo: info,
		LastSeen:   r.now(),
	}
	r.mu.Unlock()

	return info.ID
}

func (r *Registry) Heartbeat(id string, players int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.servers[id]
	if !ok {
		return false
	}
	rec.LastSeen = r.now()
	rec.Players = players
	return true
}

// List returns live servers ordered by name.
func (r *Registry) List() []ServerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ServerInfo, 0, len(r.servers))
	for _, rec := range r.servers {
		result = append(result, rec.ServerInfo)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Expire drops every server not seen within the TTL and returns how many.
func (r *Registry) Expire() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for id, rec := range r.servers {
		if now.Sub(rec.LastSeen) >= r.ttl {
			log.Printf("[master] expired server %q (id=%s, last seen %s ago)",
				rec.Name, id, now.Sub(rec.LastSeen).Round(time.Second))
			delete(r.servers, id)
			n++
		}
	}
	return n
}

func (r *Registry) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.Expire()
		}
	}
}
