package game

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mr. Mime", "mrmime"},
		{"mr-mime", "mrmime"},
		{"MRMIME", "mrmime"},
		{"Farfetch'd", "farfetchd"},
		{"  Porygon2  ", "porygon2"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Mr. Mime", "mr-mime", "Nidoran♀", "x Y-z 123", ""}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCheckStatDuel(t *testing.T) {
	left := &Creature{ID: 1, Name: "a", Stats: map[string]int{STAT_ATTACK: 50}}
	right := &Creature{ID: 2, Name: "b", Stats: map[string]int{STAT_ATTACK: 80}}
	round := &Round{Mode: ModeStatDuel, Left: left, Right: right, Stat: STAT_ATTACK}

	if Check(round, Guess{Side: SideLeft}) {
		t.Fatal("picking the lower stat side should be wrong")
	}
	if !Check(round, Guess{Side: SideRight}) {
		t.Fatal("picking the higher stat side should be correct")
	}
	if Winner(round) != SideRight {
		t.Fatalf("wrong winner side: %d", Winner(round))
	}
}

func TestCheckMoveMatch(t *testing.T) {
	left := &Creature{ID: 1, Name: "a", Moves: []string{"surf"}}
	right := &Creature{ID: 2, Name: "b", Moves: []string{"ember"}}
	round := &Round{Mode: ModeMoveMatch, Left: left, Right: right, Move: "ember"}

	if Check(round, Guess{Side: SideLeft}) {
		t.Fatal("left doesn't know the move")
	}
	if !Check(round, Guess{Side: SideRight}) {
		t.Fatal("right knows the move")
	}
}

func TestCheckTrueFalse(t *testing.T) {
	focus := &Creature{ID: 1, Name: "a", Moves: []string{"surf"}}

	known := &Round{Mode: ModeTrueFalse, Focus: focus, Move: "surf"}
	if !Check(known, Guess{Claim: true}) || Check(known, Guess{Claim: false}) {
		t.Fatal("true statement validated wrong")
	}

	unknown := &Round{Mode: ModeTrueFalse, Focus: focus, Move: "ember"}
	if !Check(unknown, Guess{Claim: false}) || Check(unknown, Guess{Claim: true}) {
		t.Fatal("false statement validated wrong")
	}
}

func TestCheckDexGuess(t *testing.T) {
	round := &Round{Mode: ModeDexGuess, Focus: &Creature{ID: 122}, Answer: "Mr. Mime"}

	for _, guess := range []string{"mr mime", "MR-MIME", "mrmime"} {
		if !Check(round, Guess{Text: guess}) {
			t.Fatalf("%q should validate as correct", guess)
		}
	}

	if Check(round, Guess{Text: "mr mimee"}) {
		t.Fatal(`"mr mimee" should not validate`)
	}
}

func TestAutocomplete(t *testing.T) {
	catalog := Catalog{
		{ID: 1, Name: "mr. mime"},
		{ID: 2, Name: "mankey"},
		{ID: 3, Name: "machop"},
		{ID: 4, Name: "meowth"},
	}

	got := Autocomplete(catalog, "Ma")
	want := []string{"mankey", "machop"}
	if !slices.Equal(got, want) {
		t.Fatalf("Autocomplete = %+v, want %+v", got, want)
	}

	if got := Autocomplete(catalog, "mr m"); !slices.Equal(got, []string{"mr. mime"}) {
		t.Fatalf("punctuation should be ignored, got %+v", got)
	}

	if got := Autocomplete(catalog, ""); got != nil {
		t.Fatalf("empty partial should return nothing, got %+v", got)
	}
}

func TestAutocompleteLimit(t *testing.T) {
	catalog := make(Catalog, 0, 12)
	for i := range 12 {
		catalog = append(catalog, Creature{ID: i + 1, Name: "mon"})
	}

	if got := Autocomplete(catalog, "mo"); len(got) != maxCompletions {
		t.Fatalf("expected %d completions, got %d", maxCompletions, len(got))
	}
}
