package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsMatchOriginalTuning(t *testing.T) {
	d := Defaults()
	if d.Player.MoveSpeed != 5 || d.Player.LookSpeed != 2 {
		t.Fatalf("move/look speed = %v/%v, want 5/2", d.Player.MoveSpeed, d.Player.LookSpeed)
	}
	if d.Physics.Gravity != -9.81 || d.Physics.GroundedVelocity != -2 {
		t.Fatalf("gravity/grounded = %v/%v, want -9.81/-2", d.Physics.Gravity, d.Physics.GroundedVelocity)
	}
	if d.Combat.Damage != 20 || d.Combat.MaxRange != 50 {
		t.Fatalf("damage/range = %d/%v, want 20/50", d.Combat.Damage, d.Combat.MaxRange)
	}
	if d.Player.Health != 100 {
		t.Fatalf("health = %d, want 100", d.Player.Health)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestParseOverridesOnlyListedKeys(t *testing.T) {
	doc := []byte(`
player:
  move_speed: 7.5
combat:
  damage: 25
`)
	got, err := Parse(doc, Defaults())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Player.MoveSpeed != 7.5 {
		t.Fatalf("move_speed = %v, want 7.5", got.Player.MoveSpeed)
	}
	if got.Combat.Damage != 25 {
		t.Fatalf("damage = %d, want 25", got.Combat.Damage)
	}
	if got.Combat.MaxRange != 50 {
		t.Fatalf("max_range = %v, want untouched 50", got.Combat.MaxRange)
	}
	if got.Player.LookSpeed != 2 {
		t.Fatalf("look_speed = %v, want untouched 2", got.Player.LookSpeed)
	}
}

func TestParseRejectsInvalidTuning(t *testing.T) {
	base := Defaults()
	got, err := Parse([]byte("physics:\n  min_pitch: 90\n"), base)
	if err == nil {
		t.Fatal("expected validation error for min_pitch above max_pitch")
	}
	if got != base {
		t.Fatal("invalid document must return the base tuning unchanged")
	}

	if _, err := Parse([]byte("player: [oops"), base); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestLoadWithoutPath(t *testing.T) {
	if _, err := Load("", Defaults()); !errors.Is(err, ErrNoConfigPath) {
		t.Fatalf("err = %v, want ErrNoConfigPath", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("server:\n  tick_rate: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, Defaults())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Server.TickRate != 60 {
		t.Fatalf("tick_rate = %d, want 60", got.Server.TickRate)
	}
}

func TestApplyAndCurrentRoundTrip(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	tuning := Defaults()
	tuning.Combat.Damage = 35
	Apply(tuning)

	if Combat.Damage != 35 {
		t.Fatalf("Combat.Damage = %d, want 35", Combat.Damage)
	}
	if Current() != tuning {
		t.Fatal("Current() does not reflect the applied tuning")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("combat:\n  damage: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("combat:\n  damage: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tuning.yaml" {
			t.Fatalf("event for %s, want tuning.yaml", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestWatcherReportsAfterBurstSettles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("combat:\n  damage: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	// Truncate, then write the real content shortly after.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("combat:\n"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(watchDebounce / 4)
	if _, err := f.WriteString("  damage: 45\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	tuning, err := Load(path, Defaults())
	if err != nil {
		t.Fatalf("load after event: %v", err)
	}
	if tuning.Combat.Damage != 45 {
		t.Fatalf("damage = %d, want the final write of 45", tuning.Combat.Damage)
	}

	select {
	case <-w.Events:
		t.Fatal("burst produced more than one event")
	case <-time.After(3 * watchDebounce):
	}
}
