package core

import (
	"errors"
	"testing"

	"github.com/automoto/lazertag/shared/leveldata"
)

const levelsFixture = "../../shared/leveldata/testdata"

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(levelsFixture, "")
	if err != nil {
		t.Fatal(err)
	}
	if arena.Name != "box" || len(arena.SpawnPoints) == 0 {
		t.Fatalf("arena = %+v", arena)
	}

	if _, err := LoadArena(levelsFixture, "missing"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if _, err := LoadArena(t.TempDir(), ""); !errors.Is(err, leveldata.ErrNoLevels) {
		t.Fatalf("err = %v, want ErrNoLevels", err)
	}
}

func TestServerUsesGivenArena(t *testing.T) {
	arena, err := LoadArena(levelsFixture, "box")
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewServer(Options{Arena: arena, Replicator: &fakeReplicator{}})
	if err != nil {
		t.Fatal(err)
	}
	if s.ArenaName() != "box" {
		t.Fatalf("arena = %s", s.ArenaName())
	}
}
