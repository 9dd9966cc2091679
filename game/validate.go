package game

import (
	"strings"
)

// Sides of a two-creature round.
const (
	SideLeft  = 0
	SideRight = 1
)

// Guess is the player's answer for the current round. Which field matters
// depends on the round's mode: Side for the two-creature modes, Claim for
// true/false, Text for dex guess.
type Guess struct {
	Side  int
	Claim bool
	Text  string
}

// Check decides whether a guess answers the round correctly. Pure; the
// construction rules in the generators guarantee the answer is unambiguous
// (no equal stats, exactly one side knows the move).
func Check(r *Round, g Guess) bool {
	switch r.Mode {
	case ModeStatDuel:
		chosen, other := r.Left, r.Right
		if g.Side == SideRight {
			chosen, other = r.Right, r.Left
		}
		return chosen.Stat(r.Stat) > other.Stat(r.Stat)

	case ModeMoveMatch:
		chosen := r.Left
		if g.Side == SideRight {
			chosen = r.Right
		}
		return chosen.Knows(r.Move)

	case ModeTrueFalse:
		return g.Claim == r.Focus.Knows(r.Move)

	case ModeDexGuess:
		return Normalize(g.Text) == Normalize(r.Answer)
	}

	return false
}

// Winner returns the side holding the correct answer for a two-creature
// round, for reveal display.
func Winner(r *Round) int {
	switch r.Mode {
	case ModeStatDuel:
		if r.Left.Stat(r.Stat) > r.Right.Stat(r.Stat) {
			return SideLeft
		}
		return SideRight
	case ModeMoveMatch:
		if r.Left.Knows(r.Move) {
			return SideLeft
		}
		return SideRight
	}

	return SideLeft
}

// Normalize lower-cases a string and strips everything outside [a-z0-9], so
// "Mr. Mime", "mr-mime" and "MRMIME" all compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

const maxCompletions = 8

// Autocomplete returns up to 8 catalog names whose normalized form starts
// with the normalized partial guess. Display-only; it has no bearing on
// answer correctness.
func Autocomplete(catalog Catalog, partial string) []string {
	prefix := Normalize(partial)
	if prefix == "" {
		return nil
	}

	matches := make([]string, 0, maxCompletions)
	for i := range catalog {
		if strings.HasPrefix(Normalize(catalog[i].Name), prefix) {
			matches = append(matches, catalog[i].Name)
			if len(matches) == maxCompletions {
				break
			}
		}
	}

	return matches
}
