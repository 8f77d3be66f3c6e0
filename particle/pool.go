package particle

const (
	// DefaultPoolSize bounds retained particles when no size is configured
	DefaultPoolSize = 500
	// poolPrealloc caps the up-front free-list allocation; larger pools grow on demand
	poolPrealloc = 4096
)

// Pool is a bounded free-list of retired particles
// Not safe for concurrent use; owned by a single system
type Pool struct {
	free []*Particle
	max  int
}

// NewPool creates a pool retaining at most max particles
func NewPool(max int) *Pool {
	if max < 0 {
		max = DefaultPoolSize
	}
	return &Pool{
		free: make([]*Particle, 0, min(max, poolPrealloc)),
		max:  max,
	}
}

// Get pops a retired particle, nil when empty
// The caller must Reset it before use
func (pl *Pool) Get() *Particle {
	n := len(pl.free)
	if n == 0 {
		return nil
	}
	p := pl.free[n-1]
	pl.free[n-1] = nil
	pl.free = pl.free[:n-1]
	p.holder = heldNone
	return p
}

// Put retains p for reuse, returns false if p was discarded
// Live or already pooled particles are refused
func (pl *Pool) Put(p *Particle) bool {
	if p == nil || p.holder != heldNone || len(pl.free) >= pl.max {
		return false
	}
	// Drop path data while idle
	p.Path = nil
	p.holder = heldPool
	pl.free = append(pl.free, p)
	return true
}

func (pl *Pool) Len() int {
	return len(pl.free)
}

func (pl *Pool) Cap() int {
	return pl.max
}

// Clear drops every retained particle
func (pl *Pool) Clear() {
	for i, p := range pl.free {
		p.holder = heldNone
		pl.free[i] = nil
	}
	pl.free = pl.free[:0]
}
