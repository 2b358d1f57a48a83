// Package combat resolves hitscan shots against the collision world.
package combat

//go:generate go tool mockgen -destination=./mocks/combat_mock.go -package=mocks . Raycaster,Capabilities,TracerSink

import (
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
)

// RayHit is the first thing a ray struck. Object is whatever the raycaster
// uses to identify it and may be nil for static geometry.
type RayHit struct {
	Point    mgl64.Vec3
	Distance float64
	Object   any
}

type Raycaster interface {
	// Raycast returns the nearest hit within maxDistance, skipping ignore.
	Raycast(origin, direction mgl64.Vec3, maxDistance float64, ignore any) (RayHit, bool)
}

// Capabilities answers whether a struck object can take damage.
type Capabilities interface {
	HasHealthPool(obj any) bool
	Damage(obj any, amount int)
}

// TracerSink receives the cosmetic beam of every shot.
type TracerSink interface {
	SpawnTracer(origin, end mgl64.Vec3)
}

// Shooter describes who is firing.
type Shooter struct {
	Authority netconfig.Authority
	Defeated  bool
	// Ignore is passed to the raycaster so the shooter cannot hit itself.
	Ignore any
}

// Shot is the outcome of one Fire. Point is the beam endpoint for hits and
// misses alike.
type Shot struct {
	Hit      bool
	Point    mgl64.Vec3
	Distance float64
	Target   any
	Damaged  bool
}

type Settings struct {
	Damage   int
	MaxRange float64
}

type Resolver struct {
	settings Settings
	world    Raycaster
	caps     Capabilities
	tracers  TracerSink
}

func NewResolver(settings Settings, world Raycaster, caps Capabilities, tracers TracerSink) *Resolver {
	return &Resolver{settings: settings, world: world, caps: caps, tracers: tracers}
}

func (r *Resolver) Settings() Settings {
	return r.settings
}

func (r *Resolver) SetSettings(s Settings) {
	r.settings = s
}

// Fire casts one ray from origin. It returns false without side effects
// when the shooter may not fire.
func (r *Resolver) Fire(shooter Shooter, origin, direction mgl64.Vec3) (Shot, bool) {
	if shooter.Authority != netconfig.AuthorityLocal || shooter.Defeated {
		return Shot{}, false
	}

	shot := r.resolve(shooter, origin, direction)

	if r.tracers != nil {
		r.tracers.SpawnTracer(origin, shot.Point)
	}
	return shot, true
}

func (r *Resolver) resolve(shooter Shooter, origin, direction mgl64.Vec3) Shot {
	if direction.Len() == 0 {
		return Shot{Point: origin}
	}
	dir := direction.Normalize()

	hit, ok := r.world.Raycast(origin, dir, r.settings.MaxRange, shooter.Ignore)
	if !ok || hit.Distance > r.settings.MaxRange {
		return Shot{
			Point:    origin.Add(dir.Mul(r.settings.MaxRange)),
			Distance: r.settings.MaxRange,
		}
	}

	shot := Shot{Hit: true, Point: hit.Point, Distance: hit.Distance}
	if hit.Object != nil && r.caps != nil && r.caps.HasHealthPool(hit.Object) {
		r.caps.Damage(hit.Object, r.settings.Damage)
		shot.Target = hit.Object
		shot.Damaged = true
	}
	return shot
}
