package combat_test

import (
	"math"
	"testing"

	"github.com/automoto/lazertag/shared/combat"
	"github.com/automoto/lazertag/shared/combat/mocks"
	"github.com/automoto/lazertag/shared/health"
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/mock/gomock"
)

var defaults = combat.Settings{Damage: 20, MaxRange: 50}

var owner = combat.Shooter{Authority: netconfig.AuthorityLocal, Ignore: "self"}

// plane is a raycaster with a single obstruction at a fixed distance.
type plane struct {
	distance float64
	object   any
}

func (p plane) Raycast(origin, dir mgl64.Vec3, maxDistance float64, ignore any) (combat.RayHit, bool) {
	if p.distance > maxDistance {
		return combat.RayHit{}, false
	}
	return combat.RayHit{
		Point:    origin.Add(dir.Mul(p.distance)),
		Distance: p.distance,
		Object:   p.object,
	}, true
}

// pools exposes health pools keyed by object.
type pools map[any]*health.Pool

func (p pools) HasHealthPool(obj any) bool {
	_, ok := p[obj]
	return ok
}

func (p pools) Damage(obj any, amount int) {
	p[obj].ApplyDamage(amount)
}

func TestFireRangeAgainstObstruction(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		wantHit  bool
		wantDist float64
	}{
		{"beyond range misses", 60, false, 50},
		{"within range hits", 30, true, 30},
		{"at range hits", 50, true, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := combat.NewResolver(defaults, plane{distance: tc.distance}, pools{}, nil)
			origin := mgl64.Vec3{1, 2, 3}

			shot, ok := r.Fire(owner, origin, mgl64.Vec3{0, 0, 1})
			if !ok {
				t.Fatal("owner fire was rejected")
			}
			if shot.Hit != tc.wantHit {
				t.Fatalf("hit = %v, want %v", shot.Hit, tc.wantHit)
			}
			if math.Abs(shot.Distance-tc.wantDist) > 1e-9 {
				t.Fatalf("distance = %v, want %v", shot.Distance, tc.wantDist)
			}
			if got := shot.Point.Sub(origin).Len(); math.Abs(got-tc.wantDist) > 1e-9 {
				t.Fatalf("endpoint is %v from origin, want %v", got, tc.wantDist)
			}
		})
	}
}

func TestFireDamagesTargetWithHealthPool(t *testing.T) {
	target := health.NewPool("target", 100)
	r := combat.NewResolver(defaults, plane{distance: 10, object: "target"}, pools{"target": target}, nil)

	shot, ok := r.Fire(owner, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
	if !ok || !shot.Hit || !shot.Damaged {
		t.Fatalf("shot = %+v ok=%v, want damaging hit", shot, ok)
	}
	if shot.Target != "target" {
		t.Fatalf("target = %v", shot.Target)
	}
	if target.Current() != 80 {
		t.Fatalf("health = %d, want 80", target.Current())
	}
}

func TestFireCosmeticHitWithoutHealthPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caps := mocks.NewMockCapabilities(ctrl)
	caps.EXPECT().HasHealthPool("crate").Return(false)

	r := combat.NewResolver(defaults, plane{distance: 10, object: "crate"}, caps, nil)
	shot, ok := r.Fire(owner, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
	if !ok || !shot.Hit {
		t.Fatalf("shot = %+v, want hit", shot)
	}
	if shot.Damaged || shot.Target != nil {
		t.Fatal("object without health must not be damaged")
	}
}

func TestFireSpawnsTracerToEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ray := mocks.NewMockRaycaster(ctrl)
	tracers := mocks.NewMockTracerSink(ctrl)
	origin := mgl64.Vec3{0, 1.6, 0}

	// Direction is normalised before it reaches the raycaster.
	ray.EXPECT().Raycast(origin, mgl64.Vec3{1, 0, 0}, 50.0, "self").Return(combat.RayHit{}, false)
	tracers.EXPECT().SpawnTracer(origin, mgl64.Vec3{50, 1.6, 0})

	r := combat.NewResolver(defaults, ray, nil, tracers)
	shot, ok := r.Fire(owner, origin, mgl64.Vec3{3, 0, 0})
	if !ok || shot.Hit {
		t.Fatalf("shot = %+v ok=%v, want miss", shot, ok)
	}
}

func TestFireByNonOwnerIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any collaborator call fails the test.
	ray := mocks.NewMockRaycaster(ctrl)
	caps := mocks.NewMockCapabilities(ctrl)
	tracers := mocks.NewMockTracerSink(ctrl)
	r := combat.NewResolver(defaults, ray, caps, tracers)

	for _, s := range []combat.Shooter{
		{Authority: netconfig.AuthorityReplica},
		{Authority: netconfig.AuthorityLocal, Defeated: true},
	} {
		if shot, ok := r.Fire(s, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}); ok || shot != (combat.Shot{}) {
			t.Fatalf("shooter %+v fired: %+v", s, shot)
		}
	}
}

func TestFireNonOwnerNeverTouchesPools(t *testing.T) {
	target := health.NewPool("target", 100)
	r := combat.NewResolver(defaults, plane{distance: 5, object: "target"}, pools{"target": target}, nil)

	for i := 0; i < 10; i++ {
		r.Fire(combat.Shooter{Authority: netconfig.AuthorityReplica}, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
	}
	if target.Current() != 100 {
		t.Fatalf("health = %d, want 100", target.Current())
	}
}

func TestFireZeroDirectionMissesAtOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ray := mocks.NewMockRaycaster(ctrl)
	tracers := mocks.NewMockTracerSink(ctrl)
	origin := mgl64.Vec3{4, 5, 6}
	tracers.EXPECT().SpawnTracer(origin, origin)

	r := combat.NewResolver(defaults, ray, nil, tracers)
	shot, ok := r.Fire(owner, origin, mgl64.Vec3{})
	if !ok || shot.Hit || shot.Point != origin {
		t.Fatalf("shot = %+v ok=%v, want miss at origin", shot, ok)
	}
}
