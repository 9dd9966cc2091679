package game

import (
	"testing"
	"testing/fstest"
)

const datasetJson = `[
	{
		"id": 1,
		"name": "bulbasaur",
		"artwork": "artwork/1.png",
		"stats": { "hp": 45, "attack": 49, "defense": 49, "special-attack": 65, "special-defense": 65, "speed": 45 },
		"moves": ["tackle", "vine-whip"],
		"flavor": "A strange seed was planted on its back at birth."
	},
	{
		"id": 122,
		"name": "mr. mime",
		"artwork": "artwork/122.png",
		"stats": { "hp": 40, "attack": 45, "defense": 65, "special-attack": 100, "special-defense": 120, "speed": 90 },
		"moves": ["confusion", "barrier"],
		"flavor": ""
	}
]`

func TestLoadCatalog(t *testing.T) {
	files := fstest.MapFS{
		"data/creatures.json": &fstest.MapFile{Data: []byte(datasetJson)},
	}

	catalog, err := LoadCatalog(files, "data/creatures.json")
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}

	if len(catalog) != 2 {
		t.Fatalf("expected 2 creatures, got %d", len(catalog))
	}

	mime := catalog.GetByName("Mr. Mime")
	if mime == nil {
		t.Fatal("case-insensitive name lookup failed")
	}
	if mime.Stat(STAT_SPDEFENSE) != 120 {
		t.Fatalf("wrong stat value: %d", mime.Stat(STAT_SPDEFENSE))
	}
	if !mime.Knows("barrier") || mime.Knows("tackle") {
		t.Fatalf("move set loaded wrong: %+v", mime.Moves)
	}

	if got := catalog.GetByID(1); got == nil || got.Name != "bulbasaur" {
		t.Fatalf("id lookup failed: %+v", got)
	}
	if got := catalog.GetByID(999); got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	if _, err := LoadCatalog(fstest.MapFS{}, "data/creatures.json"); err == nil {
		t.Fatal("missing dataset should be an error")
	}

	empty := fstest.MapFS{
		"data/creatures.json": &fstest.MapFile{Data: []byte("[]")},
	}
	if _, err := LoadCatalog(empty, "data/creatures.json"); err == nil {
		t.Fatal("empty dataset should be an error")
	}

	malformed := fstest.MapFS{
		"data/creatures.json": &fstest.MapFile{Data: []byte("{not json")},
	}
	if _, err := LoadCatalog(malformed, "data/creatures.json"); err == nil {
		t.Fatal("malformed dataset should be an error")
	}
}

func TestLoadCuratedMovesAbsorbsFailure(t *testing.T) {
	// missing and malformed documents both degrade to nil (no filter)
	if got := LoadCuratedMoves(fstest.MapFS{}, "data/curated-moves.json"); got != nil {
		t.Fatalf("missing document should be absorbed, got %+v", got)
	}

	malformed := fstest.MapFS{
		"data/curated-moves.json": &fstest.MapFile{Data: []byte("{oops")},
	}
	if got := LoadCuratedMoves(malformed, "data/curated-moves.json"); got != nil {
		t.Fatalf("malformed document should be absorbed, got %+v", got)
	}

	valid := fstest.MapFS{
		"data/curated-moves.json": &fstest.MapFile{Data: []byte(`{"moves":{"smogon":["surf"],"vgc":[],"combined":["surf"]}}`)},
	}
	curated := LoadCuratedMoves(valid, "data/curated-moves.json")
	if curated == nil || len(curated.Moves.Smogon) != 1 {
		t.Fatalf("valid document failed to load: %+v", curated)
	}
}
