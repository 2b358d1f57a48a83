// Package health holds the authoritative hit points of one player.
package health

//go:generate go tool mockgen -destination=./mocks/publisher_mock.go -package=mocks . Publisher

import "github.com/automoto/lazertag/shared/netconfig"

// Published field names.
const (
	FieldHealth   = "health"
	FieldDefeated = "defeated"
)

// Publisher pushes authoritative values to observers.
type Publisher interface {
	Publish(id string, field string, value any)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(id string, field string, value any)

func (f PublisherFunc) Publish(id string, field string, value any) {
	f(id, field, value)
}

// Pool is mutated only by the authoritative process. Damage is not clamped,
// so Current can go below zero on the killing blow.
type Pool struct {
	id         string
	current    int
	max        int
	state      netconfig.LifeState
	publisher  Publisher
	onDefeated func(id string)
}

type Option func(*Pool)

// WithPublisher sets where changes are pushed.
func WithPublisher(p Publisher) Option {
	return func(pool *Pool) { pool.publisher = p }
}

// WithOnDefeated registers the terminal transition callback.
func WithOnDefeated(fn func(id string)) Option {
	return func(pool *Pool) { pool.onDefeated = fn }
}

// NewPool returns a full pool of max points.
func NewPool(id string, max int, opts ...Option) *Pool {
	p := &Pool{id: id, current: max, max: max, state: netconfig.Alive}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ApplyDamage subtracts amount. The first time Current drops to zero or
// below the pool becomes Defeated; after that further damage does nothing.
func (p *Pool) ApplyDamage(amount int) {
	if p.state == netconfig.Defeated {
		return
	}

	p.current -= amount
	p.publish(FieldHealth, p.current)

	if p.current > 0 {
		return
	}

	p.state = netconfig.Defeated
	p.publish(FieldDefeated, true)
	if p.onDefeated != nil {
		p.onDefeated(p.id)
	}
}

func (p *Pool) publish(field string, value any) {
	if p.publisher != nil {
		p.publisher.Publish(p.id, field, value)
	}
}

func (p *Pool) ID() string                 { return p.id }
func (p *Pool) Current() int               { return p.current }
func (p *Pool) Max() int                   { return p.max }
func (p *Pool) State() netconfig.LifeState { return p.state }
func (p *Pool) Defeated() bool             { return p.state == netconfig.Defeated }
