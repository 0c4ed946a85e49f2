package sim

import "strings"

type Event int

const (
	_ Event = iota
	Tick
	Boost
)

func (ev Event) String() string {
	switch ev {
	case Tick:
		return "Tick"
	case Boost:
		return "Boost"
	default:
		return "Unknown"
	}
}

// Outcome reports what happened during a step.
type Outcome int

const (
	Dawn    Outcome = 1 << iota // Phase wrapped around, a new cycle starts.
	Respawn                     // Bird left through the left edge and came back on the right.
	Ground                      // Bird hit the bottom.
	Ceiling                     // Bird hit the top.
	Boosted
)

func (o Outcome) Has(flag Outcome) bool { return o&flag != 0 }

func (o Outcome) String() string {
	var parts []string
	if o&Dawn != 0 {
		parts = append(parts, "dawn")
	}
	if o&Respawn != 0 {
		parts = append(parts, "respawn")
	}
	if o&Ground != 0 {
		parts = append(parts, "ground")
	}
	if o&Ceiling != 0 {
		parts = append(parts, "ceiling")
	}
	if o&Boosted != 0 {
		parts = append(parts, "boost")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
