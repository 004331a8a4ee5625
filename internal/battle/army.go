package battle

import (
	"fmt"
	"sort"
)

// Army maps unit-type names to live counts. Entries are always positive: a
// category that reaches zero is removed, never stored at zero.
type Army map[string]int

// UnknownUnitTypeError reports an army spec naming a unit type absent from
// the catalog.
type UnknownUnitTypeError struct {
	Name string
}

func (e *UnknownUnitTypeError) Error() string {
	return fmt.Sprintf("unknown unit type: %q", e.Name)
}

// NewArmy builds an Army from a requested composition. Non-positive counts
// are dropped; any remaining name missing from the catalog fails the whole
// construction and no partial army is returned.
func NewArmy(spec map[string]int, catalog Catalog) (Army, error) {
	army := Army{}
	for name, count := range spec {
		if count <= 0 {
			continue
		}
		if _, ok := catalog[name]; !ok {
			return nil, &UnknownUnitTypeError{Name: name}
		}
		army[name] = count
	}
	return army, nil
}

// Size returns the total number of living units.
func (a Army) Size() int {
	total := 0
	for _, count := range a {
		total += count
	}
	return total
}

// Names returns the unit-type names in sorted order. Every categorical loop
// in the engine walks this order so that a fixed seed replays identically.
func (a Army) Names() []string {
	return sortedKeys(a)
}

// Clone returns an independent copy.
func (a Army) Clone() Army {
	out := make(Army, len(a))
	for name, count := range a {
		out[name] = count
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
