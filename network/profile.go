package network

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const profileKey = "profile"

// Profile is what a bot remembers between runs.
type Profile struct {
	Name           string `json:"name"`
	ReconnectToken string `json:"reconnectToken"`
	ParticipantID  string `json:"participantId"`
}

// ItemStore is the subset of *gdata.Manager the profile needs.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenProfileStore opens the per-user data directory for appName.
func OpenProfileStore(appName string) (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	return m, nil
}

// LoadProfile returns the stored profile, or nil when none has been saved.
func LoadProfile(store ItemStore) (*Profile, error) {
	data, err := store.LoadItem(profileKey)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

func SaveProfile(store ItemStore, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}
	if err := store.SaveItem(profileKey, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	log.Printf("[client] saved profile for %s", p.Name)
	return nil
}
