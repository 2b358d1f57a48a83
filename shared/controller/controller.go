// Package controller turns per-tick input into a new pose for one player.
package controller

//go:generate go tool mockgen -destination=./mocks/mover_mock.go -package=mocks . Mover

import (
	"github.com/automoto/lazertag/shared/gamemath"
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// InputFrame is the input sampled for one tick. Fire and Jump are edges.
type InputFrame struct {
	Move mgl64.Vec2
	Look mgl64.Vec2
	Fire bool
	Jump bool
}

// State is the pose of an entity between ticks.
type State struct {
	Position         mgl64.Vec3
	Yaw              float64
	Pitch            float64
	VerticalVelocity float64
	Grounded         bool
}

// Mover applies a desired displacement through the collision world and
// reports what was actually achieved.
type Mover interface {
	Move(delta mgl64.Vec3) (actual mgl64.Vec3, grounded bool)
}

// Settings are the tuning values a Controller reads every tick.
type Settings struct {
	MoveSpeed        float64
	LookSpeed        float64
	JumpHeight       float64
	Gravity          float64
	GroundedVelocity float64
	MinPitch         float64
	MaxPitch         float64
	Floor            float64
}

// Controller drives one entity. Only a Controller built with
// netconfig.AuthorityLocal changes anything; replicas are passengers.
type Controller struct {
	authority netconfig.Authority
	settings  Settings
}

func New(authority netconfig.Authority, settings Settings) *Controller {
	return &Controller{authority: authority, settings: settings}
}

func (c *Controller) Authority() netconfig.Authority {
	return c.authority
}

func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSettings swaps tuning, e.g. after a config reload.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

// Tick advances st by dt seconds. Movement uses the facing the entity had
// at the start of the tick; this tick's look input only affects the next
// one. mover may be nil, in which case the displacement is applied directly
// above a flat floor.
func (c *Controller) Tick(dt float64, in InputFrame, st State, mover Mover) State {
	if c.authority != netconfig.AuthorityLocal {
		return st
	}
	if dt < 0 {
		dt = 0
	}
	s := c.settings

	horizontal := gamemath.MoveVector(st.Yaw, in.Move, s.MoveSpeed)

	st.Yaw += in.Look.X() * s.LookSpeed * dt
	st.Pitch = gamemath.ClampPitch(st.Pitch-in.Look.Y()*s.LookSpeed*dt, s.MinPitch, s.MaxPitch)

	v := gamemath.SettleVertical(st.VerticalVelocity, st.Grounded, s.GroundedVelocity)
	if in.Jump && st.Grounded {
		v = gamemath.JumpVelocity(s.JumpHeight, s.Gravity)
	}
	v = gamemath.ApplyGravity(v, s.Gravity, dt)
	st.VerticalVelocity = v

	delta := horizontal.Add(mgl64.Vec3{0, v, 0}).Mul(dt)

	if mover != nil {
		actual, grounded := mover.Move(delta)
		st.Position = st.Position.Add(actual)
		st.Grounded = grounded
		return st
	}

	st.Position = st.Position.Add(delta)
	st.Grounded = false
	if st.Position.Y() <= s.Floor && v <= 0 {
		st.Position[1] = s.Floor
		st.Grounded = true
	}
	return st
}
