package sim

import "time"

const (
	CycleDuration  = 10 * time.Second // Full day/night cycle.
	TicksPerSecond = 60               // Rate the phase increment is computed for.
	TickInterval   = time.Second / TicksPerSecond
)

// Movement, in screen fractions per tick.
const (
	Gravity          = 0.005
	BoostVelocity    = -0.03 // Negative is up.
	TerminalVelocity = 0.02
	InitialVX        = -0.005
)

const (
	EventQueueSize   = 64 // Arbitrary size.
	MessageQueueSize = 32 // Arbitrary size.
)
