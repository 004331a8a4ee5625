package config

// Scenario is one battle set-up on disk: both compositions plus run knobs.
// Seed 0 lets the engine draw one; MaxRounds 0 uses the engine default.
type Scenario struct {
	ArmyA     map[string]int `yaml:"army_a"`
	ArmyB     map[string]int `yaml:"army_b"`
	Seed      int64          `yaml:"seed"`
	MaxRounds int            `yaml:"max_rounds"`
}
