package plan

import (
	"math/rand"
	"time"
)

// DefaultMessages is the fixed pool of commit message phrases used when
// no override is configured.
var DefaultMessages = []string{
	"Update config",
	"Fix typo",
	"Refactor module",
	"Add tests",
	"Docs",
	"Bump version",
	"Cleanup",
	"Optimize",
	"WIP",
	"Minor fix",
}

// Picker selects commit messages from a pool using a locally scoped,
// seeded random source. Two pickers built with the same pool and seed
// produce identical message sequences.
type Picker struct {
	pool []string
	rng  *rand.Rand
}

// NewPicker creates a Picker over the given pool, falling back to
// DefaultMessages when pool is empty.
func NewPicker(pool []string, seed int64) *Picker {
	if len(pool) == 0 {
		pool = DefaultMessages
	}
	return &Picker{
		pool: pool,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Pick returns the commit message for a commit at the given time:
// a pool phrase followed by the minute-resolution timestamp.
func (p *Picker) Pick(at time.Time) string {
	return p.pool[p.rng.Intn(len(p.pool))] + at.Format(" (2006-01-02 15:04)")
}
