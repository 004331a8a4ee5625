package battle

// UnitDef describes one unit type. Attack is the percent chance (0-100) per
// unit to produce a hit each round; Defense the percent chance per incoming
// hit to be deflected. The resource costs play no part in combat.
type UnitDef struct {
	Gold    int     `json:"gold" yaml:"gold"`
	Food    float64 `json:"food" yaml:"food"`
	Wood    int     `json:"wood,omitempty" yaml:"wood"`
	Iron    int     `json:"iron,omitempty" yaml:"iron"`
	Attack  int     `json:"attack" yaml:"attack"`
	Defense int     `json:"defense" yaml:"defense"`
}

// Catalog maps unit-type names to definitions. The engine treats it as
// read-only and clamps probabilities at the point of use, so a catalog with
// out-of-range percentages degrades gracefully instead of failing mid-battle.
type Catalog map[string]UnitDef

func (c Catalog) attackProb(name string) float64 {
	return float64(c[name].Attack) / 100.0
}

func (c Catalog) penetrationProb(name string) float64 {
	return 1.0 - float64(c[name].Defense)/100.0
}

// DefaultCatalog returns the stock medieval roster.
func DefaultCatalog() Catalog {
	return Catalog{
		"Peasants":        {Gold: 0, Food: 0.1, Attack: 5, Defense: 10},
		"Spearmen":        {Gold: 1, Food: 0.1, Attack: 10, Defense: 25},
		"Swordsmen":       {Gold: 2, Food: 0.1, Attack: 30, Defense: 40},
		"Archers":         {Gold: 3, Food: 0.1, Wood: 1, Attack: 25, Defense: 15},
		"Crossbowmen":     {Gold: 2, Food: 0.1, Wood: 1, Attack: 20, Defense: 15},
		"Horsemen":        {Gold: 5, Food: 0.2, Attack: 30, Defense: 30},
		"Knights":         {Gold: 10, Food: 0.2, Iron: 1, Attack: 60, Defense: 60},
		"Mounted Knights": {Gold: 15, Food: 0.4, Iron: 1, Attack: 65, Defense: 60},
		"Royal Guard":     {Gold: 20, Food: 0.3, Iron: 1, Attack: 80, Defense: 80},
	}
}
