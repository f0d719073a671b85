package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/komodo/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	require.Nil(t, om)

	// A nil manager is a no-op
	require.NoError(t, om.WriteWindow(WindowStats{}))
	require.NoError(t, om.WriteSessions([]SessionSummary{{}}))
	require.NoError(t, om.Close())
	require.Empty(t, om.Dir())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteWindow(WindowStats{Session: 1, WindowEnd: 10000, Stage: "baby", Feeds: 2}))
	require.NoError(t, om.WriteWindow(WindowStats{Session: 1, WindowEnd: 20000, Stage: "teen"}))
	require.NoError(t, om.WriteSessions([]SessionSummary{{Session: 1, FinalAge: 12, Died: true}}))
	require.NoError(t, om.WriteConfig(config.MustLoad("")))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "one header and two records")
	require.True(t, strings.HasPrefix(lines[0], "session,window_end,age,stage"))
	require.Contains(t, lines[0], "hunger_mean")
	require.NotContains(t, lines[0], "window_start")

	data, err = os.ReadFile(filepath.Join(dir, "sessions.csv"))
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "12")

	_, err = config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
}
