package factory

import (
	"github.com/automoto/lazertag/archetypes"
	"github.com/automoto/lazertag/components"
	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/controller"
	"github.com/automoto/lazertag/shared/health"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerOptions describes a player at construction time. Authority is fixed
// for the lifetime of the entity.
type PlayerOptions struct {
	Owner     string
	Name      string
	Authority netconfig.Authority
	Spawn     leveldata.SpawnPoint
}

// CreatePlayer spawns a player standing on the floor at the spawn point.
// Extra components (e.g. replicated ones) are added to the same entity.
func CreatePlayer(ecs *ecs.ECS, opts PlayerOptions, cs ...donburi.IComponentType) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs, cs...)
	world := ecs.World
	entity := player.Entity()

	pos := mgl64.Vec3{opts.Spawn.X, cfg.Physics.Floor, opts.Spawn.Z}
	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Yaw:      opts.Spawn.Yaw,
	})
	components.Motion.SetValue(player, components.MotionData{Grounded: true})
	components.Control.SetValue(player, components.ControlData{
		Controller: controller.New(opts.Authority, ControllerSettings()),
		Owner:      opts.Owner,
		Name:       opts.Name,
	})

	pool := health.NewPool(opts.Owner, cfg.Player.Health,
		health.WithPublisher(HealthPublisher(world, entity)),
		health.WithOnDefeated(func(string) { onDefeated(world, entity) }),
	)
	components.Health.SetValue(player, components.HealthData{Pool: pool})

	if space := SpaceWorld(world); space != nil {
		body := space.AddBody(pos, cfg.Player.Width, cfg.Player.Height, entity)
		components.Body.SetValue(player, components.BodyData{Body: body})
	}

	if player.HasComponent(netcomponents.NetPlayerState) {
		netcomponents.NetPlayerState.SetValue(player, netcomponents.NetPlayerStateData{
			Name:      opts.Name,
			Health:    pool.Current(),
			MaxHealth: pool.Max(),
			Grounded:  true,
		})
	}

	return player
}

// HealthPublisher pushes pool changes into the entity's replicated state.
// Entities without replicated state ignore them.
func HealthPublisher(world donburi.World, entity donburi.Entity) health.PublisherFunc {
	return func(_ string, field string, value any) {
		if !world.Valid(entity) {
			return
		}
		entry := world.Entry(entity)
		if !entry.HasComponent(netcomponents.NetPlayerState) {
			return
		}
		state := netcomponents.NetPlayerState.Get(entry)
		switch field {
		case health.FieldHealth:
			state.Health = value.(int)
		case health.FieldDefeated:
			state.Defeated = value.(bool)
		}
	}
}

func onDefeated(world donburi.World, victim donburi.Entity) {
	if !world.Valid(victim) {
		return
	}
	killer := components.Health.Get(world.Entry(victim)).LastAttacker

	if killer != donburi.Null && world.Valid(killer) {
		if entry := world.Entry(killer); entry.HasComponent(components.Weapon) {
			components.Weapon.Get(entry).Tags++
		}
	}

	components.PlayerDefeatedEvent.Publish(world, components.PlayerDefeated{
		Victim: victim,
		Killer: killer,
	})
}
