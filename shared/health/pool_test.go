package health_test

import (
	"testing"

	"github.com/automoto/lazertag/shared/health"
	"github.com/automoto/lazertag/shared/health/mocks"
	"github.com/automoto/lazertag/shared/netconfig"
	"go.uber.org/mock/gomock"
)

func TestFiveHitsDefeatOnFifth(t *testing.T) {
	defeats := 0
	p := health.NewPool("p1", 100, health.WithOnDefeated(func(id string) {
		if id != "p1" {
			t.Fatalf("defeated id = %q, want p1", id)
		}
		defeats++
	}))

	for i := 1; i <= 4; i++ {
		p.ApplyDamage(20)
		if p.Defeated() || defeats != 0 {
			t.Fatalf("defeated after %d hits, want alive until the 5th", i)
		}
	}

	p.ApplyDamage(20)
	if p.Current() != 0 {
		t.Fatalf("current = %d, want 0", p.Current())
	}
	if !p.Defeated() || p.State() != netconfig.Defeated {
		t.Fatal("expected defeated after 5th hit")
	}
	if defeats != 1 {
		t.Fatalf("OnDefeated fired %d times, want 1", defeats)
	}
}

func TestDamageAfterDefeatIsNoop(t *testing.T) {
	defeats := 0
	p := health.NewPool("p1", 100, health.WithOnDefeated(func(string) { defeats++ }))

	p.ApplyDamage(100)
	p.ApplyDamage(20)
	p.ApplyDamage(500)

	if defeats != 1 {
		t.Fatalf("OnDefeated fired %d times, want 1", defeats)
	}
	if p.Current() != 0 {
		t.Fatalf("current = %d, want 0 unchanged after defeat", p.Current())
	}
}

func TestOverkillIsNotClamped(t *testing.T) {
	p := health.NewPool("p1", 30)
	p.ApplyDamage(20)
	p.ApplyDamage(20)
	if p.Current() != -10 {
		t.Fatalf("current = %d, want -10", p.Current())
	}
	if p.Max() != 30 {
		t.Fatalf("max = %d, want 30", p.Max())
	}
}

func TestPublishesEveryChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := mocks.NewMockPublisher(ctrl)
	gomock.InOrder(
		pub.EXPECT().Publish("p1", health.FieldHealth, 20),
		pub.EXPECT().Publish("p1", health.FieldHealth, 0),
		pub.EXPECT().Publish("p1", health.FieldDefeated, true),
	)

	p := health.NewPool("p1", 40, health.WithPublisher(pub))
	p.ApplyDamage(20)
	p.ApplyDamage(20)
	// Defeated: no further publishes expected.
	p.ApplyDamage(20)
}

func TestPublisherFunc(t *testing.T) {
	var got []string
	p := health.NewPool("p1", 10, health.WithPublisher(health.PublisherFunc(func(id, field string, value any) {
		got = append(got, field)
	})))
	p.ApplyDamage(5)
	if len(got) != 1 || got[0] != health.FieldHealth {
		t.Fatalf("published %v, want [health]", got)
	}
}
