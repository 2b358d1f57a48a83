package systems

import (
	"log"

	"github.com/automoto/lazertag/components"
	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/combat"
	"github.com/automoto/lazertag/shared/gamemath"
	"github.com/automoto/lazertag/shared/physics"
	"github.com/automoto/lazertag/systems/factory"
	"github.com/automoto/lazertag/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFiring resolves latched trigger presses.
func UpdateFiring(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		ctl := components.Control.Get(entry)
		if !ctl.FirePending {
			return
		}
		ctl.FirePending = false
		Fire(e, entry)
	})
}

// Muzzle returns the ray origin and aim direction for a player pose.
func Muzzle(tr *components.TransformData) (mgl64.Vec3, mgl64.Vec3) {
	dir := gamemath.AimDirection(tr.Yaw, tr.Pitch)
	eye := tr.Position.Add(mgl64.Vec3{0, cfg.Player.EyeHeight, 0})
	return eye.Add(dir.Mul(cfg.Combat.MuzzleOffset)), dir
}

// Fire shoots once from the player's muzzle. It returns false when the
// player may not fire (replica or defeated).
func Fire(e *ecs.ECS, entry *donburi.Entry) (combat.Shot, bool) {
	world := e.World
	space := factory.SpaceWorld(world)
	if space == nil {
		return combat.Shot{}, false
	}

	ctl := components.Control.Get(entry)
	hp := components.Health.Get(entry)

	shooter := combat.Shooter{
		Authority: ctl.Controller.Authority(),
		Defeated:  hp.Pool.Defeated() || entry.HasComponent(tags.Defeated),
	}
	if entry.HasComponent(components.Body) {
		shooter.Ignore = components.Body.Get(entry).Body
	}

	resolver := combat.NewResolver(
		factory.CombatSettings(),
		raycaster{world: space},
		capabilities{world: world, attacker: entry.Entity()},
		tracerSpawner{ecs: e},
	)

	origin, dir := Muzzle(components.Transform.Get(entry))
	shot, ok := resolver.Fire(shooter, origin, dir)
	if !ok {
		return shot, false
	}

	weapon := components.Weapon.Get(entry)
	weapon.Shots++
	if shot.Damaged {
		weapon.Hits++
	}

	components.ShotFiredEvent.Publish(world, components.ShotFired{
		Shooter: entry.Entity(),
		Origin:  origin,
		End:     shot.Point,
		Hit:     shot.Hit,
	})
	return shot, true
}

// raycaster maps physics hits to combat hits. Player bodies carry their
// entity as payload; walls and the floor carry nothing.
type raycaster struct {
	world *physics.World
}

func (r raycaster) Raycast(origin, dir mgl64.Vec3, maxDistance float64, ignore any) (combat.RayHit, bool) {
	skip, _ := ignore.(*physics.Body)
	hit, ok := r.world.Raycast(origin, dir, maxDistance, skip)
	if !ok {
		return combat.RayHit{}, false
	}
	var obj any
	if hit.Body != nil {
		obj = hit.Body.Payload
	}
	return combat.RayHit{Point: hit.Point, Distance: hit.Distance, Object: obj}, true
}

// capabilities answers health queries against the donburi world.
type capabilities struct {
	world    donburi.World
	attacker donburi.Entity
}

func (c capabilities) entry(obj any) (*donburi.Entry, bool) {
	entity, ok := obj.(donburi.Entity)
	if !ok || !c.world.Valid(entity) {
		return nil, false
	}
	entry := c.world.Entry(entity)
	if !entry.HasComponent(components.Health) {
		return nil, false
	}
	return entry, true
}

func (c capabilities) HasHealthPool(obj any) bool {
	_, ok := c.entry(obj)
	return ok
}

func (c capabilities) Damage(obj any, amount int) {
	entry, ok := c.entry(obj)
	if !ok {
		return
	}
	hp := components.Health.Get(entry)
	if hp.Pool.Defeated() {
		return
	}
	hp.LastAttacker = c.attacker
	hp.Pool.ApplyDamage(amount)

	log.Printf("[combat] %s hit for %d, health %d", hp.Pool.ID(), amount, hp.Pool.Current())
	components.PlayerHitEvent.Publish(c.world, components.PlayerHit{
		Attacker: c.attacker,
		Target:   entry.Entity(),
		Damage:   amount,
		Health:   hp.Pool.Current(),
	})
}

type tracerSpawner struct {
	ecs *ecs.ECS
}

func (t tracerSpawner) SpawnTracer(origin, end mgl64.Vec3) {
	factory.CreateTracer(t.ecs, origin, end)
}
