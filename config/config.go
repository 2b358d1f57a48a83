package config

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed  float64 `yaml:"move_speed"`  // units per second at full stick
	LookSpeed  float64 `yaml:"look_speed"`  // degrees per second per unit of look input
	JumpHeight float64 `yaml:"jump_height"` // apex height of a jump

	// Combat
	Health int `yaml:"health"`

	// Dimensions
	Width     float64 `yaml:"width"`      // square footprint edge
	Height    float64 `yaml:"height"`     // feet to top of head
	EyeHeight float64 `yaml:"eye_height"` // feet to camera
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Damage       int     `yaml:"damage"`        // fixed damage per hit
	MaxRange     float64 `yaml:"max_range"`     // hitscan length
	MuzzleOffset float64 `yaml:"muzzle_offset"` // distance in front of the eye the ray starts from
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	GroundedVelocity float64 `yaml:"grounded_velocity"` // vertical speed held while standing
	Floor            float64 `yaml:"floor"`
	MinPitch         float64 `yaml:"min_pitch"`
	MaxPitch         float64 `yaml:"max_pitch"`
	CellSize         int     `yaml:"cell_size"` // broad phase cell edge in world units
}

// TracerConfig contains laser trace effect configuration
type TracerConfig struct {
	Duration float64 `yaml:"duration"` // seconds for the trace head to reach the endpoint
}

// ArenaConfig describes the playfield used when no TMX level is loaded and how
// TMX pixel coordinates map to world units.
type ArenaConfig struct {
	Width         int     `yaml:"width"`
	Depth         int     `yaml:"depth"`
	WallThickness float64 `yaml:"wall_thickness"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// ServerConfig contains dedicated server defaults
type ServerConfig struct {
	TickRate   int `yaml:"tick_rate"`
	MaxPlayers int `yaml:"max_players"`
}

// Tuning groups every section so it can be loaded and applied as one document.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Physics PhysicsConfig `yaml:"physics"`
	Tracer  TracerConfig  `yaml:"tracer"`
	Arena   ArenaConfig   `yaml:"arena"`
	Server  ServerConfig  `yaml:"server"`
}

// Global configuration instances
var Player PlayerConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Tracer TracerConfig
var Arena ArenaConfig
var Server ServerConfig

// Defaults returns the built-in tuning.
func Defaults() Tuning {
	return Tuning{
		Player: PlayerConfig{
			MoveSpeed:  5.0,
			LookSpeed:  2.0,
			JumpHeight: 1.5,

			Health: 100,

			Width:     0.8,
			Height:    2.0,
			EyeHeight: 1.6,
		},
		Combat: CombatConfig{
			Damage:       20,
			MaxRange:     50.0,
			MuzzleOffset: 0.5,
		},
		Physics: PhysicsConfig{
			Gravity:          -9.81,
			GroundedVelocity: -2.0,
			Floor:            0,
			MinPitch:         -80,
			MaxPitch:         80,
			CellSize:         2,
		},
		Tracer: TracerConfig{
			Duration: 0.1,
		},
		Arena: ArenaConfig{
			Width:         64,
			Depth:         64,
			WallThickness: 1,
			PixelsPerUnit: 16,
		},
		Server: ServerConfig{
			TickRate:   30,
			MaxPlayers: 16,
		},
	}
}

// Current snapshots the global instances.
func Current() Tuning {
	return Tuning{
		Player:  Player,
		Combat:  Combat,
		Physics: Physics,
		Tracer:  Tracer,
		Arena:   Arena,
		Server:  Server,
	}
}

// Apply replaces the global instances. It is not synchronised; callers apply
// tuning from the goroutine that runs the simulation.
func Apply(t Tuning) {
	Player = t.Player
	Combat = t.Combat
	Physics = t.Physics
	Tracer = t.Tracer
	Arena = t.Arena
	Server = t.Server
}

func init() {
	Apply(Defaults())
}
