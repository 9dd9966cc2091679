package game

// The six stat keys every creature carries. Dataset rows always have all six.
const (
	STAT_HP        = "hp"
	STAT_ATTACK    = "attack"
	STAT_DEFENSE   = "defense"
	STAT_SPATTACK  = "special-attack"
	STAT_SPDEFENSE = "special-defense"
	STAT_SPEED     = "speed"
)

var StatKeys = [6]string{
	STAT_HP,
	STAT_ATTACK,
	STAT_DEFENSE,
	STAT_SPATTACK,
	STAT_SPDEFENSE,
	STAT_SPEED,
}

// Short labels for display, keyed the same as Creature.Stats
var StatLabels = map[string]string{
	STAT_HP:        "HP",
	STAT_ATTACK:    "Atk",
	STAT_DEFENSE:   "Def",
	STAT_SPATTACK:  "SpA",
	STAT_SPDEFENSE: "SpD",
	STAT_SPEED:     "Spe",
}

// Creature is one dataset entry. Loaded once by the catalog and shared
// read-only by every generator; never mutated after load.
type Creature struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Artwork string         `json:"artwork"`
	Stats   map[string]int `json:"stats"`
	Moves   []string       `json:"moves"`
	Flavor  string         `json:"flavor"`
}

func (c *Creature) Stat(key string) int {
	return c.Stats[key]
}

func (c *Creature) Knows(move string) bool {
	for _, m := range c.Moves {
		if m == move {
			return true
		}
	}

	return false
}
