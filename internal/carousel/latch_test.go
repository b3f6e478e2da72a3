package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pulse/internal/clock"
)

func TestLatch_CompletesAfterDelay(t *testing.T) {
	clk := clock.NewManual(epoch)
	l, err := NewLatch(DefaultPreloaderDelay, WithScheduler(clk))
	require.NoError(t, err)
	t.Cleanup(l.Close)

	require.False(t, l.Done())
	assert.Zero(t, l.Progress())

	clk.Advance(900 * time.Millisecond)
	require.False(t, l.Done())
	assert.InDelta(t, 0.5, l.Progress(), 1e-9)

	clk.Advance(900*time.Millisecond - time.Nanosecond)
	require.False(t, l.Done())

	clk.Advance(time.Nanosecond)
	assert.True(t, l.Done())
	assert.Equal(t, 1.0, l.Progress())
}

func TestLatch_CloseBeforeDelayNeverCompletes(t *testing.T) {
	clk := clock.NewManual(epoch)
	l, err := NewLatch(time.Second, WithScheduler(clk))
	require.NoError(t, err)

	l.Close()
	l.Close()
	clk.Advance(time.Minute)
	assert.False(t, l.Done())
}

func TestNewLatch_RejectsNonPositiveDelay(t *testing.T) {
	_, err := NewLatch(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}
