package config

import "skirmish/internal/battle"

type CatalogFile struct {
	Units []UnitEntry `yaml:"units"`
}

type UnitEntry struct {
	Name    string  `yaml:"name"`
	Gold    int     `yaml:"gold"`
	Food    float64 `yaml:"food"`
	Wood    int     `yaml:"wood"`
	Iron    int     `yaml:"iron"`
	Attack  int     `yaml:"attack"`
	Defense int     `yaml:"defense"`
}

// Catalog converts the file entries into the combat catalog. Later entries
// win on duplicate names.
func (f *CatalogFile) Catalog() battle.Catalog {
	catalog := battle.Catalog{}
	for _, u := range f.Units {
		catalog[u.Name] = battle.UnitDef{
			Gold:    u.Gold,
			Food:    u.Food,
			Wood:    u.Wood,
			Iron:    u.Iron,
			Attack:  u.Attack,
			Defense: u.Defense,
		}
	}
	return catalog
}
