package activity

import (
	"context"
	"math/rand/v2"

	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
)

// DefaultMax is the highest count Seeded emits when Max is unset.
const DefaultMax = 4

// Seeded generates a reproducible mock series. The same Seed and year always
// yield the same counts.
type Seeded struct {
	Seed uint64
	Max  int
}

func (p Seeded) Series(ctx context.Context, year int) (Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hi := p.Max
	if hi <= 0 {
		hi = DefaultMax
	}

	// Mix the year in so neighbouring years differ under one seed.
	seed := p.Seed ^ uint64(year)*0x9e3779b97f4a7c15
	rng := rand.New(rand.NewPCG(seed, seed^0x517cc1b727220a95))

	s := make(Series, calendar.DaysInYear(year))
	for i := range s {
		s[i] = rng.IntN(hi + 1)
	}
	return s, nil
}
