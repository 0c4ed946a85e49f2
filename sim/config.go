package sim

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	CycleDuration  time.Duration // Time for a full day/night cycle.
	TicksPerSecond int           // Used to compute the phase increment.
	TickInterval   time.Duration // Cadence of the Tick events generated by the runner.

	Gravity          float64 // Added to the vertical velocity every tick.
	BoostVelocity    float64 // Vertical velocity set by a Boost.
	TerminalVelocity float64 // Cap of the vertical velocity.
	InitialVX        float64 // Constant horizontal drift.

	EventQueueSize   int
	MessageQueueSize int
}

func DefaultConfig() Config {
	return Config{
		CycleDuration:  CycleDuration,
		TicksPerSecond: TicksPerSecond,
		TickInterval:   TickInterval,

		Gravity:          Gravity,
		BoostVelocity:    BoostVelocity,
		TerminalVelocity: TerminalVelocity,
		InitialVX:        InitialVX,

		EventQueueSize:   EventQueueSize,
		MessageQueueSize: MessageQueueSize,
	}
}

// PhaseIncrement is the phase advance of a single tick.
func (cfg Config) PhaseIncrement() float64 {
	return 1 / (cfg.CycleDuration.Seconds() * float64(cfg.TicksPerSecond))
}

func (cfg Config) Validate() error {
	switch {
	case cfg.CycleDuration <= 0:
		return fmt.Errorf("%w: cycle duration must be positive, got %s", ErrInvalidConfig, cfg.CycleDuration)
	case cfg.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks per second must be positive, got %d", ErrInvalidConfig, cfg.TicksPerSecond)
	case cfg.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, cfg.TickInterval)
	case cfg.BoostVelocity >= 0:
		return fmt.Errorf("%w: boost velocity must point up (negative), got %g", ErrInvalidConfig, cfg.BoostVelocity)
	case cfg.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal velocity must be positive, got %g", ErrInvalidConfig, cfg.TerminalVelocity)
	case cfg.EventQueueSize <= 0:
		return fmt.Errorf("%w: event queue size must be positive, got %d", ErrInvalidConfig, cfg.EventQueueSize)
	case cfg.MessageQueueSize < 0:
		return fmt.Errorf("%w: message queue size can't be negative, got %d", ErrInvalidConfig, cfg.MessageQueueSize)
	}
	return nil
}
