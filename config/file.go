package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoConfigPath is returned when a load is attempted without a file path.
var ErrNoConfigPath = errors.New("config: no path given")

// Load reads a YAML tuning document. Keys missing from the file keep the value
// they have in base, so a file only needs to list what it overrides.
func Load(path string, base Tuning) (Tuning, error) {
	if path == "" {
		return base, ErrNoConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, base)
}

// Parse decodes a YAML tuning document on top of base and validates the result.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Player.MoveSpeed < 0:
		return fmt.Errorf("config: player.move_speed must not be negative, got %v", t.Player.MoveSpeed)
	case t.Player.Health <= 0:
		return fmt.Errorf("config: player.health must be positive, got %d", t.Player.Health)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("config: player dimensions must be positive, got %vx%v", t.Player.Width, t.Player.Height)
	case t.Combat.MaxRange <= 0:
		return fmt.Errorf("config: combat.max_range must be positive, got %v", t.Combat.MaxRange)
	case t.Physics.MinPitch > t.Physics.MaxPitch:
		return fmt.Errorf("config: physics.min_pitch %v is above max_pitch %v", t.Physics.MinPitch, t.Physics.MaxPitch)
	case t.Tracer.Duration <= 0:
		return fmt.Errorf("config: tracer.duration must be positive, got %v", t.Tracer.Duration)
	case t.Physics.CellSize <= 0:
		return fmt.Errorf("config: physics.cell_size must be positive, got %d", t.Physics.CellSize)
	case t.Arena.Width <= 0 || t.Arena.Depth <= 0:
		return fmt.Errorf("config: arena size must be positive, got %dx%d", t.Arena.Width, t.Arena.Depth)
	case t.Arena.PixelsPerUnit <= 0:
		return fmt.Errorf("config: arena.pixels_per_unit must be positive, got %v", t.Arena.PixelsPerUnit)
	case t.Server.TickRate <= 0:
		return fmt.Errorf("config: server.tick_rate must be positive, got %d", t.Server.TickRate)
	}
	return nil
}
