package game

import (
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

// Mode is one of the four quiz modes.
type Mode string

const (
	ModeStatDuel  Mode = "stat-duel"
	ModeMoveMatch Mode = "move-match"
	ModeTrueFalse Mode = "true-false"
	ModeDexGuess  Mode = "dex-guess"
)

var Modes = [4]Mode{ModeStatDuel, ModeMoveMatch, ModeTrueFalse, ModeDexGuess}

func (m Mode) Title() string {
	switch m {
	case ModeStatDuel:
		return "Stat Duel"
	case ModeMoveMatch:
		return "Move Match"
	case ModeTrueFalse:
		return "Move True/False"
	case ModeDexGuess:
		return "Dex Guess"
	}

	return string(m)
}

// ErrNoRound is returned when a generator runs out of retries before finding
// a round that satisfies its constraints. The session stays in ready with no
// question; callers decide whether to redraw.
var ErrNoRound = errors.New("no valid round found within retry budget")

// Round is a fully-specified question. Which fields are set depends on Mode:
// stat duel uses Left/Right/Stat, move match Left/Right/Move, true/false
// Focus/Move, dex guess Focus/Answer. Whether a true/false statement is true
// is derived from set membership at validation time, never stored.
type Round struct {
	Mode Mode

	Left  *Creature
	Right *Creature
	Stat  string

	Move string

	Focus  *Creature
	Answer string
}

// Generator produces rounds against a fixed catalog and move pool. Not safe
// for concurrent use; the session owns one and drives it from the single
// control goroutine.
type Generator struct {
	Catalog Catalog
	Pool    MovePool

	rng *rand.Rand
}

func NewGenerator(catalog Catalog, pool MovePool, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Generator{
		Catalog: catalog,
		Pool:    pool,
		rng:     rand.New(src),
	}
}

// Next generates a round for the given mode. carry is the creature kept from
// the previous won stat-duel round (nil for a fresh pair) and prevLeft /
// prevRight are the previous round's pair ids, used to avoid showing the
// same matchup twice in a row.
func (g *Generator) Next(mode Mode, carry *Creature, prevLeft, prevRight int) (*Round, error) {
	switch mode {
	case ModeStatDuel:
		return g.statDuel(carry, prevLeft, prevRight)
	case ModeMoveMatch:
		return g.moveMatch()
	case ModeTrueFalse:
		return g.trueFalse()
	case ModeDexGuess:
		return g.dexGuess()
	}

	return nil, ErrNoRound
}

func (g *Generator) statDuel(carry *Creature, prevLeft, prevRight int) (*Round, error) {
	left := carry
	if left == nil {
		left = PickRandom(g.rng, g.Catalog, 0)
	}
	if left == nil {
		return nil, ErrNoRound
	}

	for range sampleGuard {
		right := PickRandom(g.rng, g.Catalog, left.ID)
		if right == nil || right.ID == left.ID {
			continue
		}

		// never the same matchup twice in a row
		if samePair(left.ID, right.ID, prevLeft, prevRight) {
			continue
		}

		stat := StatKeys[g.rng.IntN(len(StatKeys))]
		if left.Stat(stat) == right.Stat(stat) {
			continue
		}

		return &Round{Mode: ModeStatDuel, Left: left, Right: right, Stat: stat}, nil
	}

	log.Debug().Int("left", left.ID).Msg("stat duel generator gave up")
	return nil, ErrNoRound
}

func (g *Generator) moveMatch() (*Round, error) {
	for range outerGuard {
		left := PickRandom(g.rng, g.Catalog, 0)
		if left == nil {
			return nil, ErrNoRound
		}

		moves := g.Pool.FilterMoves(left)
		if len(moves) == 0 {
			continue
		}
		move := moves[g.rng.IntN(len(moves))]

		candidate, ok := SampleWhere(g.rng, g.Catalog, sampleGuard, func(c Creature) bool {
			return c.ID != left.ID && !c.Knows(move)
		})
		if !ok {
			continue
		}

		return &Round{
			Mode:  ModeMoveMatch,
			Left:  left,
			Right: g.Catalog.GetByID(candidate.ID),
			Move:  move,
		}, nil
	}

	log.Debug().Msg("move match generator gave up")
	return nil, ErrNoRound
}

func (g *Generator) trueFalse() (*Round, error) {
	for range outerGuard {
		focus := PickRandom(g.rng, g.Catalog, 0)
		if focus == nil {
			return nil, ErrNoRound
		}

		moves := g.Pool.FilterMoves(focus)
		if len(moves) == 0 {
			continue
		}

		if g.rng.IntN(2) == 0 {
			// true statement
			return &Round{
				Mode:  ModeTrueFalse,
				Focus: focus,
				Move:  moves[g.rng.IntN(len(moves))],
			}, nil
		}

		// false statement: some other creature's move that focus doesn't know
		for range sampleGuard {
			other := PickRandom(g.rng, g.Catalog, focus.ID)
			if other == nil || other.ID == focus.ID {
				continue
			}

			otherMoves := g.Pool.FilterMoves(other)
			if len(otherMoves) == 0 {
				continue
			}

			move := otherMoves[g.rng.IntN(len(otherMoves))]
			if !focus.Knows(move) {
				return &Round{Mode: ModeTrueFalse, Focus: focus, Move: move}, nil
			}
		}
	}

	log.Debug().Msg("true/false generator gave up")
	return nil, ErrNoRound
}

func (g *Generator) dexGuess() (*Round, error) {
	// creatures without flavor text are skipped by redraw, not filtered up
	// front, so a flavorless dataset exhausts the guard and stalls
	focus, ok := SampleWhere(g.rng, g.Catalog, sampleGuard, func(c Creature) bool {
		return c.Flavor != ""
	})
	if !ok {
		log.Debug().Msg("dex guess generator gave up")
		return nil, ErrNoRound
	}

	full := g.Catalog.GetByID(focus.ID)
	return &Round{Mode: ModeDexGuess, Focus: full, Answer: full.Name}, nil
}

func samePair(a1, a2, b1, b2 int) bool {
	if b1 == 0 && b2 == 0 {
		return false
	}

	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}
