package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/komodo/pet"
)

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(10000)
	c.SessionStarted(0)

	require.False(t, c.ShouldFlush(9999))
	c.Hatched(4500)
	c.StageChanged(4500, pet.StageEgg, pet.StageBaby, 1)
	c.HungerTicked(5500, 90)
	c.HungerTicked(6500, 80)
	c.Fed(6600, 100)
	require.True(t, c.ShouldFlush(10000))

	w := c.Flush(10000, 2, 3)
	require.Equal(t, 1, w.Session)
	require.Equal(t, int64(0), w.WindowStart)
	require.Equal(t, int64(10000), w.WindowEnd)
	require.Equal(t, "baby", w.Stage)
	require.Equal(t, 3, w.Flies)
	require.Equal(t, 1, w.Feeds)
	require.Equal(t, 2, w.HungerTicks)
	require.Equal(t, 1, w.StageChanges)
	require.InDelta(t, 90, w.HungerMean, 1e-9)

	next := c.Flush(20000, 5, 3)
	require.Zero(t, next.Feeds)
	require.Zero(t, next.HungerMean)
	require.Equal(t, int64(10000), next.WindowStart)
}

func TestCollectorSessions(t *testing.T) {
	c := NewCollector(10000)
	c.SessionStarted(0)
	c.Hatched(4500)
	c.Fed(5000, 100)
	c.HungerTicked(6000, 90)
	c.Died(20000, 6)

	c.SessionStarted(21000)
	c.Fed(22000, 100)
	c.Finish(30000, 3)

	sessions := c.TakeSessions()
	require.Len(t, sessions, 2)

	first := sessions[0]
	require.Equal(t, 1, first.Session)
	require.True(t, first.Died)
	require.Equal(t, 6, first.FinalAge)
	require.Equal(t, int64(4500), first.HatchedAt)
	require.Equal(t, 1, first.Feeds)
	require.InDelta(t, 20.0, first.Lifetime, 1e-9)
	require.InDelta(t, 95, first.HungerMean, 1e-9)

	second := sessions[1]
	require.Equal(t, 2, second.Session)
	require.False(t, second.Died)
	require.Equal(t, 3, second.FinalAge)
	require.Equal(t, int64(-1), second.HatchedAt)

	require.Empty(t, c.TakeSessions())
}

func TestCollectorRestartClosesOpenSession(t *testing.T) {
	c := NewCollector(1000)
	c.SessionStarted(0)
	c.SessionStarted(500)

	sessions := c.TakeSessions()
	require.Len(t, sessions, 1)
	require.False(t, sessions[0].Died)
	require.Equal(t, 2, c.Session())
}
