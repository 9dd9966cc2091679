package game

import (
	"math/rand/v2"
)

// Guard counter shared by every rejection-sampling loop. Bounds the retries
// so a sparse dataset stalls a round instead of hanging the session.
const (
	sampleGuard = 40
	outerGuard  = 80
)

// PickRandom draws uniformly from pool. With a non-zero excludeID it redraws
// up to the guard count to avoid that creature, then keeps whatever was drawn
// last; a slightly unfair pick beats an unbounded loop. Returns nil only for
// an empty pool.
func PickRandom(rng *rand.Rand, pool Catalog, excludeID int) *Creature {
	if len(pool) == 0 {
		return nil
	}

	picked := &pool[rng.IntN(len(pool))]
	if excludeID == 0 {
		return picked
	}

	for range sampleGuard {
		if picked.ID != excludeID {
			break
		}
		picked = &pool[rng.IntN(len(pool))]
	}

	return picked
}

// SampleWhere draws from pool until pred accepts a value or attempts run out.
// The second return reports whether a satisfying value was found.
func SampleWhere[T any](rng *rand.Rand, pool []T, attempts int, pred func(T) bool) (T, bool) {
	var last T
	if len(pool) == 0 {
		return last, false
	}

	for range attempts {
		last = pool[rng.IntN(len(pool))]
		if pred(last) {
			return last, true
		}
	}

	return last, false
}
