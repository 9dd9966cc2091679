package game

import "fmt"

// attackCatalog builds creatures that differ only in attack, so the stat
// duel generator can only ever draw the attack stat.
func attackCatalog(attacks ...int) Catalog {
	catalog := make(Catalog, 0, len(attacks))
	for i, attack := range attacks {
		catalog = append(catalog, Creature{
			ID:   i + 1,
			Name: fmt.Sprintf("creature-%d", i+1),
			Stats: map[string]int{
				STAT_HP: 50, STAT_ATTACK: attack, STAT_DEFENSE: 50,
				STAT_SPATTACK: 50, STAT_SPDEFENSE: 50, STAT_SPEED: 50,
			},
		})
	}

	return catalog
}

// Four creatures with pairwise-distinct stats on every key and fully
// disjoint move sets, so every mode can always build a round.
func testCatalog() Catalog {
	build := func(id int, name string, base int, moves []string) Creature {
		stats := make(map[string]int, len(StatKeys))
		for i, key := range StatKeys {
			stats[key] = base + i
		}

		return Creature{
			ID:     id,
			Name:   name,
			Stats:  stats,
			Moves:  moves,
			Flavor: "flavor for " + name,
		}
	}

	return Catalog{
		build(1, "aron", 10, []string{"tackle", "ember"}),
		build(2, "breloom", 20, []string{"surf", "thunderbolt"}),
		build(3, "cubone", 30, []string{"vine-whip", "psychic"}),
		build(4, "duskull", 40, []string{"dig", "slash"}),
	}
}
