package network

import (
	"errors"
	"testing"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type brokenStore struct{}

var errDisk = errors.New("disk")

func (brokenStore) LoadItem(string) ([]byte, error) { return nil, errDisk }
func (brokenStore) SaveItem(string, []byte) error   { return errDisk }

func TestProfileRoundTrip(t *testing.T) {
	store := memStore{}

	p, err := LoadProfile(store)
	if err != nil || p != nil {
		t.Fatalf("empty store: profile=%v err=%v", p, err)
	}

	want := &Profile{Name: "bot-1", ReconnectToken: "tok", ParticipantID: "pid"}
	if err := SaveProfile(store, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadProfile(store)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Fatalf("profile = %+v, want %+v", got, want)
	}
}

func TestProfileErrorsAreWrapped(t *testing.T) {
	if _, err := LoadProfile(brokenStore{}); !errors.Is(err, errDisk) {
		t.Fatalf("load err = %v", err)
	}
	if err := SaveProfile(brokenStore{}, &Profile{}); !errors.Is(err, errDisk) {
		t.Fatalf("save err = %v", err)
	}

	if _, err := LoadProfile(memStore{profileKey: []byte("{")}); err == nil {
		t.Fatal("corrupt profile should fail to parse")
	}
}
