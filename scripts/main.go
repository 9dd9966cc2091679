// Dataset grabber. Pulls creature stats, learnsets and flavor text from
// PokeAPI and writes the creatures.json file the game embeds. Responses are
// cached on disk so reruns are cheap.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mwinters/dexduel/game"
)

const apiBase = "https://pokeapi.co/api/v2"

type pokemonJson struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		Other struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int              `json:"base_stat"`
		Stat     NamedApiResource `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move NamedApiResource `json:"move"`
	} `json:"moves"`
	Species NamedApiResource `json:"species"`
}

type speciesJson struct {
	FlavorTextEntries []struct {
		FlavorText string           `json:"flavor_text"`
		Language   NamedApiResource `json:"language"`
	} `json:"flavor_text_entries"`
}

func main() {
	count := flag.Int("count", 151, "how many creatures to grab, by dex order")
	out := flag.String("out", "data/creatures.json", "output file")
	cacheDir := flag.String("cache", ".pokeapi-cache", "response cache dir")
	flag.Parse()

	if err := os.MkdirAll(*cacheDir, 0750); err != nil {
		log.Fatalf("couldn't create cache dir: %s", err)
	}

	creatures := make([]game.Creature, 0, *count)

	for dex := 1; dex <= *count; dex++ {
		pokemon, err := getJson[pokemonJson](*cacheDir, fmt.Sprintf("%s/pokemon/%d", apiBase, dex))
		if err != nil {
			log.Fatalf("couldn't grab creature %d: %s", dex, err)
		}

		species, err := getJson[speciesJson](*cacheDir, pokemon.Species.Url)
		if err != nil {
			log.Fatalf("couldn't grab species for %s: %s", pokemon.Name, err)
		}

		stats := make(map[string]int, len(game.StatKeys))
		for _, stat := range pokemon.Stats {
			stats[stat.Stat.Name] = stat.BaseStat
		}

		moves := make([]string, 0, len(pokemon.Moves))
		for _, m := range pokemon.Moves {
			moves = append(moves, m.Move.Name)
		}

		creatures = append(creatures, game.Creature{
			ID:      pokemon.Id,
			Name:    pokemon.Name,
			Artwork: pokemon.Sprites.Other.OfficialArtwork.FrontDefault,
			Stats:   stats,
			Moves:   moves,
			Flavor:  englishFlavor(species),
		})

		log.Printf("grabbed %s (%d moves)", pokemon.Name, len(moves))
	}

	data, err := json.MarshalIndent(creatures, "", "  ")
	if err != nil {
		log.Fatalf("couldn't marshal dataset: %s", err)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("couldn't write dataset: %s", err)
	}

	log.Printf("wrote %d creatures to %s", len(creatures), *out)
}

// englishFlavor picks the first english dex entry and flattens the form-feed
// and newline control characters PokeAPI leaves in.
func englishFlavor(species speciesJson) string {
	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name != "en" {
			continue
		}

		text := strings.ReplaceAll(entry.FlavorText, "\f", " ")
		text = strings.ReplaceAll(text, "\n", " ")
		return strings.Join(strings.Fields(text), " ")
	}

	return ""
}
