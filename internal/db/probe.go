package db

import "context"

// Pinger is the pool surface the health probe needs; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe reports database reachability for the health endpoint.
type Probe struct {
	pool Pinger
}

// NewProbe creates a database health probe over the given pool.
func NewProbe(pool Pinger) *Probe {
	return &Probe{pool: pool}
}

// Name identifies the probe in health responses.
func (p *Probe) Name() string { return "database" }

// Check pings the pool.
func (p *Probe) Check(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
