package game

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is the full creature dataset, loaded once at startup.
type Catalog []Creature

var titleCaser = cases.Title(language.English)

// LoadCatalog reads the creature dataset from files. A missing or unreadable
// dataset is fatal to the game (it never reaches the ready state), so the
// error is returned rather than absorbed.
func LoadCatalog(files fs.FS, path string) (Catalog, error) {
	file, err := files.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open creature dataset: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("couldn't read creature dataset: %w", err)
	}

	var creatures []Creature
	if err := json.Unmarshal(data, &creatures); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal creature dataset: %w", err)
	}

	if len(creatures) == 0 {
		return nil, fmt.Errorf("creature dataset %s is empty", path)
	}

	return creatures, nil
}

func (c Catalog) GetByID(id int) *Creature {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}

	return nil
}

func (c Catalog) GetByName(name string) *Creature {
	for i := range c {
		if strings.EqualFold(c[i].Name, name) {
			return &c[i]
		}
	}

	return nil
}

// DisplayName returns the canonical title-cased form of a creature name.
func DisplayName(name string) string {
	return titleCaser.String(name)
}
