package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, opts ...func(*Config)) *Runner {
	t.Helper()
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	return r
}

// collect returns the messages currently buffered.
func collect(r *Runner) []Message {
	var out []Message
	for {
		select {
		case msg := <-r.Messages:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestNewRunnerInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = 0
	_, err := NewRunner(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunnerDrainInOrder(t *testing.T) {
	r := newTestRunner(t)

	require.True(t, r.Send(Boost))
	require.True(t, r.Send(Tick))
	assert.Equal(t, 2, r.Drain())
	assert.Equal(t, 0, r.Drain())

	w := r.Snapshot()
	assert.InDelta(t, BoostVelocity+Gravity, w.BirdVY, eps)
	assert.Equal(t, Stats{Ticks: 1, Boosts: 1}, r.Stats())

	msgs := collect(r)
	require.Len(t, msgs, 1)
	assert.Equal(t, MsgBoost, msgs[0].Type)
	assert.Equal(t, BoostVelocity, msgs[0].World.BirdVY)
}

func TestRunnerOrderMatters(t *testing.T) {
	r := newTestRunner(t)

	require.True(t, r.Send(Tick))
	require.True(t, r.Send(Boost))
	r.Drain()

	// The boost came last, nothing overrides it.
	assert.Equal(t, BoostVelocity, r.Snapshot().BirdVY)
}

func TestRunnerQueueFull(t *testing.T) {
	r := newTestRunner(t, func(c *Config) { c.EventQueueSize = 1 })

	assert.True(t, r.Send(Tick))
	assert.False(t, r.Send(Boost))

	msgs := collect(r)
	require.Len(t, msgs, 1)
	assert.Equal(t, MsgDropped, msgs[0].Type)
	assert.Contains(t, msgs[0].Message, "Boost")

	assert.Equal(t, 1, r.Drain())
	assert.Equal(t, Stats{Ticks: 1}, r.Stats())
}

func TestRunnerMessagesNeverBlock(t *testing.T) {
	r := newTestRunner(t, func(c *Config) { c.MessageQueueSize = 1 })

	for range 10 {
		require.True(t, r.Send(Boost))
	}
	assert.Equal(t, 10, r.Drain())
	assert.Len(t, collect(r), 1)
}

func TestRunnerOutcomeMessages(t *testing.T) {
	r := newTestRunner(t)

	// Run long enough to respawn (~200 ticks) and hit the ground.
	types := map[MessageType]int{}
	for range 250 {
		require.True(t, r.Send(Tick))
		r.Drain()
		for _, msg := range collect(r) {
			types[msg.Type]++
		}
	}

	assert.Equal(t, 1, types[MsgRespawn])
	assert.Positive(t, types[MsgGround])
	assert.Zero(t, types[MsgCeiling])
}

func TestRunnerDawn(t *testing.T) {
	r := newTestRunner(t, func(c *Config) {
		c.CycleDuration = time.Second
		c.TicksPerSecond = 4
		c.MessageQueueSize = 100
	})

	for range 9 {
		require.True(t, r.Send(Tick))
	}
	r.Drain()

	assert.Equal(t, 2, r.Stats().Days)
	var dawns []string
	for _, msg := range collect(r) {
		if msg.Type == MsgDawn {
			dawns = append(dawns, msg.Message)
		}
	}
	assert.Equal(t, []string{"Day 2 begins", "Day 3 begins"}, dawns)
}

func TestRunnerClose(t *testing.T) {
	r := newTestRunner(t)

	require.True(t, r.Send(Tick))
	r.Close()
	r.Close() // No-op.

	assert.False(t, r.Send(Tick))
	assert.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 1, r.Stats().Ticks)
	assert.Equal(t, 0, r.Drain())
}

func TestRunnerRunCanceled(t *testing.T) {
	r := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.True(t, r.Send(Boost))
	require.Eventually(t, func() bool { return r.Stats().Boosts == 1 }, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunnerTick(t *testing.T) {
	r := newTestRunner(t, func(c *Config) { c.TickInterval = time.Millisecond })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Run(ctx) }()

	tickDone := make(chan error, 1)
	go func() { tickDone <- r.Tick(ctx) }()

	require.Eventually(t, func() bool { return r.Stats().Ticks >= 5 }, 2*time.Second, time.Millisecond)

	r.Close()
	select {
	case err := <-tickDone:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Tick did not return after close")
	}
}

func TestNewRunnerRejectsUnbufferedQueue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EventQueueSize = 0
	_, err := NewRunner(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
