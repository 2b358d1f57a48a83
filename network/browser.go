package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrNoServers = errors.New("no joinable servers")

// ServerEntry is one game server as listed by the master.
type ServerEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Arena      string `json:"arena"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
	Region     string `json:"region"`
}

// Browser queries the master server list.
type Browser struct {
	masterURL  string
	httpClient *http.Client
}

func NewBrowser(masterURL string) *Browser {
	return &Browser{
		masterURL:  masterURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (b *Browser) Servers(ctx context.Context) ([]ServerEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.masterURL+"/servers", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("master server query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("master server returned status %d", resp.StatusCode)
	}

	var servers []ServerEntry
	if err := json.NewDecoder(resp.Body).Decode(&servers); err != nil {
		return nil, fmt.Errorf("decode server list: %w", err)
	}
	return servers, nil
}

// PickServer returns the fullest server that still has room and accepts
// version. An empty server version accepts any client.
func PickServer(servers []ServerEntry, version string) (ServerEntry, error) {
	best, found := ServerEntry{}, false
	for _, s := range servers {
		if s.Version != "" && s.Version != version {
			continue
		}
		if s.MaxPlayers > 0 && s.Players >= s.MaxPlayers {
			continue
		}
		if !found || s.Players > best.Players {
			best, found = s, true
		}
	}
	if !found {
		return ServerEntry{}, ErrNoServers
	}
	return best, nil
}
