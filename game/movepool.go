package game

import (
	"encoding/json"
	"io"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// PoolFilter names a curated subset of moves used by the move-based modes.
type PoolFilter string

const (
	PoolPopular PoolFilter = "popular"
	PoolSmogon  PoolFilter = "smogon"
	PoolVGC     PoolFilter = "vgc"
	PoolAll     PoolFilter = "all"
)

var PoolFilters = [4]PoolFilter{PoolPopular, PoolSmogon, PoolVGC, PoolAll}

// CuratedMoves mirrors the curated-moves document supplied alongside the
// dataset. Any of the lists may be empty.
type CuratedMoves struct {
	Moves struct {
		Smogon   []string `json:"smogon"`
		VGC      []string `json:"vgc"`
		Combined []string `json:"combined"`
	} `json:"moves"`
}

// LoadCuratedMoves reads the curated move document. Unlike the creature
// dataset this collaborator is optional: a missing or malformed file is
// absorbed and every filter degrades to "all".
func LoadCuratedMoves(files fs.FS, path string) *CuratedMoves {
	file, err := files.Open(path)
	if err != nil {
		log.Warn().Err(err).Msg("no curated move list, move filters disabled")
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Warn().Err(err).Msg("couldn't read curated move list, move filters disabled")
		return nil
	}

	curated := new(CuratedMoves)
	if err := json.Unmarshal(data, curated); err != nil {
		log.Warn().Err(err).Msg("malformed curated move list, move filters disabled")
		return nil
	}

	return curated
}

// MovePool is the resolved set of allowed move identifiers. A nil MovePool
// means no filtering.
type MovePool map[string]struct{}

// ResolvePool turns a named filter into a concrete move set. With no curated
// data every filter resolves to nil ("all").
func ResolvePool(filter PoolFilter, curated *CuratedMoves) MovePool {
	if curated == nil || filter == PoolAll {
		return nil
	}

	var names []string
	switch filter {
	case PoolPopular:
		names = curated.Moves.Combined
	case PoolSmogon:
		names = curated.Moves.Smogon
	case PoolVGC:
		names = curated.Moves.VGC
	}

	if len(names) == 0 {
		return nil
	}

	pool := make(MovePool, len(names))
	for _, name := range names {
		pool[name] = struct{}{}
	}

	return pool
}

// FilterMoves returns the creature's moves that fall inside the pool.
func (p MovePool) FilterMoves(c *Creature) []string {
	if p == nil {
		return c.Moves
	}

	return lo.Filter(c.Moves, func(move string, _ int) bool {
		_, ok := p[move]
		return ok
	})
}
