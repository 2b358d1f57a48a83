package network

import (
	"math"

	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/controller"
	"github.com/automoto/lazertag/shared/gamemath"
	"github.com/automoto/lazertag/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
)

// Brain picks a bot's input each tick from what the last snapshot showed.
type Brain struct {
	difficulty cfg.BotDifficultyConfig
	cooldown   int
	wanderDir  float64
	nav        *systems.NavGrid
}

func NewBrain(difficulty cfg.BotDifficulty) *Brain {
	d, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		d = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return &Brain{difficulty: d, wanderDir: 1}
}

// SetNavGrid lets the bot chase along A* paths instead of walking straight
// at its target.
func (b *Brain) SetNavGrid(nav *systems.NavGrid) {
	b.nav = nav
}

// Decide aims at the nearest live opponent within chase range and pulls
// the trigger once the aim settles. Without a target it strafes in place.
func (b *Brain) Decide(self controller.State, selfID esync.NetworkId, health, maxHealth int, players []PlayerView, dt float64) controller.InputFrame {
	if b.cooldown > 0 {
		b.cooldown--
	}

	target, dist, ok := nearest(self.Position, selfID, players)
	if !ok || dist > b.difficulty.ChaseRange {
		return controller.InputFrame{Move: mgl64.Vec2{b.wanderDir, 0}}
	}

	frame := controller.InputFrame{}

	diff := gamemath.AngleDiff(self.Yaw, gamemath.YawTo(self.Position, target))
	if turn := b.difficulty.TurnRate * dt; dt > 0 && cfg.Player.LookSpeed > 0 {
		frame.Look = mgl64.Vec2{mgl64.Clamp(diff, -turn, turn) / (cfg.Player.LookSpeed * dt), 0}
	}

	if maxHealth > 0 && float64(health)/float64(maxHealth) <= b.difficulty.RetreatThreshold {
		frame.Move = mgl64.Vec2{0, -1}
	} else if dist > b.difficulty.AttackRange {
		frame.Move = b.chase(self, target)
	}

	if dist <= b.difficulty.AttackRange && math.Abs(diff) <= b.difficulty.AimTolerance && b.cooldown == 0 {
		frame.Fire = true
		b.cooldown = b.difficulty.ReactionDelay
	}
	return frame
}

// chase returns the stick input that walks toward target, following the
// nav grid when one is set.
func (b *Brain) chase(self controller.State, target mgl64.Vec3) mgl64.Vec2 {
	if b.nav == nil {
		return mgl64.Vec2{0, 1}
	}
	path := b.nav.FindPath(self.Position, target)
	if len(path) > 1 {
		// path[0] is the cell the bot already stands in.
		path = path[1:]
	}
	next := target
	for _, p := range path {
		if flatDistance(self.Position, p) > waypointReached {
			next = p
			break
		}
	}
	return stickToward(self.Yaw, self.Position, next)
}

// waypointReached is how close the bot must get before steering to the next cell.
const waypointReached = 0.3

// stickToward converts a world direction into move axes relative to yaw.
func stickToward(yaw float64, from, to mgl64.Vec3) mgl64.Vec2 {
	dir := mgl64.Vec3{to.X() - from.X(), 0, to.Z() - from.Z()}
	if dir.Len() == 0 {
		return mgl64.Vec2{}
	}
	dir = dir.Normalize()
	return mgl64.Vec2{dir.Dot(gamemath.Right(yaw)), dir.Dot(gamemath.Forward(yaw))}
}

func flatDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// Bumped flips the wander direction, used when the bot stops making progress.
func (b *Brain) Bumped() {
	b.wanderDir = -b.wanderDir
}

func nearest(from mgl64.Vec3, selfID esync.NetworkId, players []PlayerView) (mgl64.Vec3, float64, bool) {
	best, bestDist, found := mgl64.Vec3{}, math.Inf(1), false
	for _, p := range players {
		if p.ID == selfID || p.State.Defeated {
			continue
		}
		pos := p.Transform.Position()
		if d := pos.Sub(from).Len(); d < bestDist {
			best, bestDist, found = pos, d, true
		}
	}
	return best, bestDist, found
}
