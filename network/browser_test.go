package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBrowserServers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/servers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"1","name":"alpha","address":"a:7373","players":2,"maxPlayers":8,"version":"v"}]`))
	}))
	defer srv.Close()

	servers, err := NewBrowser(srv.URL).Servers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(servers) != 1 || servers[0].Address != "a:7373" || servers[0].Players != 2 {
		t.Fatalf("servers = %+v", servers)
	}
}

func TestBrowserBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewBrowser(srv.URL).Servers(context.Background()); err == nil {
		t.Fatal("expected an error for a failing master")
	}
}

func TestPickServer(t *testing.T) {
	servers := []ServerEntry{
		{Name: "full", Players: 4, MaxPlayers: 4, Version: "v1"},
		{Name: "old", Players: 3, MaxPlayers: 8, Version: "v0"},
		{Name: "quiet", Players: 1, MaxPlayers: 8, Version: "v1"},
		{Name: "busy", Players: 3, MaxPlayers: 8},
	}
	got, err := PickServer(servers, "v1")
	if err != nil || got.Name != "busy" {
		t.Fatalf("picked %+v (%v), want busy", got, err)
	}

	if _, err := PickServer(servers[:2], "v1"); !errors.Is(err, ErrNoServers) {
		t.Fatalf("err = %v, want ErrNoServers", err)
	}
}
