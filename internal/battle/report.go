package battle

import (
	"encoding/json"
	"fmt"
)

// Winner classifies how a battle ended. Draw covers both armies dying in
// the same round and the round bound expiring with both still standing.
type Winner int

const (
	WinnerDraw Winner = iota
	WinnerA
	WinnerB
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	default:
		return "Draw"
	}
}

func (w Winner) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Winner) UnmarshalText(text []byte) error {
	switch string(text) {
	case "A":
		*w = WinnerA
	case "B":
		*w = WinnerB
	case "Draw":
		*w = WinnerDraw
	default:
		return fmt.Errorf("unknown winner %q", text)
	}
	return nil
}

// SideRound is one side's half of a round record: the offense it produced
// (total hits, where they landed on the enemy, what survived the enemy's
// defense, what actually died over there) plus its own army once both
// casualty sets were applied.
type SideRound struct {
	SizeEnd           int            `json:"size_end"`
	Hits              int            `json:"hits"`
	AssignedHits      map[string]int `json:"assigned_hits"`
	KillsAfterDefense map[string]int `json:"kills_after_defense"`
	Kills             map[string]int `json:"kills"`
	Army              Army           `json:"army"`
}

// RoundRecord is one completed round, 1-based. Records are appended in
// round order and never mutated afterwards.
type RoundRecord struct {
	Round int       `json:"round"`
	A     SideRound `json:"A"`
	B     SideRound `json:"B"`
}

// Summary is the terminal classification of a battle. Seed is the value
// that actually drove the run (drawn from entropy when the caller passed
// none), so any summary can be replayed; it is 0 only when the caller
// injected a raw Source.
type Summary struct {
	Winner     Winner         `json:"winner"`
	Rounds     int            `json:"rounds"`
	FinalA     Army           `json:"final_A"`
	FinalB     Army           `json:"final_B"`
	FinalSizes map[string]int `json:"final_sizes"`
	Seed       int64          `json:"seed,omitempty"`
}

// Report is the full outcome of one battle: the round-by-round log plus the
// summary.
type Report struct {
	Rounds  []RoundRecord `json:"rounds"`
	Summary Summary       `json:"summary"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
