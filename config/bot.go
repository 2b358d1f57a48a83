package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between a trigger pull and the next
	AttackRange      float64 // Distance to start shooting
	ChaseRange       float64 // Distance to start chasing
	AimTolerance     float64 // Degrees off target still considered on aim
	TurnRate         float64 // Degrees per second the bot can turn
	RetreatThreshold float64 // Health % to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	NavCellSize  float64 // edge of one pathfinding cell in world units
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		NavCellSize: 1,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 1 second at 30 ticks
				AttackRange:      20.0,
				ChaseRange:       40.0,
				AimTolerance:     8,
				TurnRate:         90,
				RetreatThreshold: 0.2, // Retreat at 20% health
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				AttackRange:      35.0,
				ChaseRange:       50.0,
				AimTolerance:     4,
				TurnRate:         180,
				RetreatThreshold: 0.3, // Retreat at 30% health
			},
			BotDifficultyHard: {
				ReactionDelay:    6,
				AttackRange:      50.0,
				ChaseRange:       64.0,
				AimTolerance:     2,
				TurnRate:         360,
				RetreatThreshold: 0.15, // Retreat at 15% health
			},
		},
	}
}

// ParseBotDifficulty maps a flag value to a difficulty, defaulting to normal.
func ParseBotDifficulty(s string) BotDifficulty {
	switch s {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}
