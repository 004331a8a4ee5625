package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"skirmish/internal/battle"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadCatalog reads a units file and builds the combat catalog. A missing
// file is not an error: the stock roster is used instead.
func LoadCatalog(path string) (battle.Catalog, error) {
	var file CatalogFile
	if err := loadYAML(path, &file); err != nil {
		if os.IsNotExist(err) {
			return battle.DefaultCatalog(), nil
		}
		return nil, err
	}
	return file.Catalog(), nil
}

// LoadScenario reads a battle set-up file.
func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	if err := loadYAML(path, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
