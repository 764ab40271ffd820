package profile_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zoneprof/zoneprof/pkg/profile"
)

func TestSnapshotCopiesStatistics(t *testing.T) {
	sess, clock := newSession()

	require.NoError(t, sess.Push("frame"))
	require.NoError(t, sess.Sample("f @ a.lua:1;g @ a.lua:2;", 2, 'N'))
	require.NoError(t, sess.Sample("", 1, 'G'))
	clock.Advance(2 * time.Second)
	require.NoError(t, sess.Pop())

	snap := sess.Snapshot()
	require.Equal(t, uint64(3), snap.TotalTicks)
	require.Len(t, snap.Zones, 1)

	zone := snap.Zones[0]
	require.Equal(t, "frame", zone.Name)
	require.Equal(t, uint64(2), zone.TotalSamples)
	require.Equal(t, uint64(2), zone.ModeSamples["compiled"])
	require.Equal(t, uint64(1), zone.ModeSamples["gc"])
	require.Equal(t, uint64(2), zone.FuncSamples["f @ a.lua:1"])
	require.Equal(t, 2.0, zone.DurationSecs)
}

func TestWriteReportJSONOutput(t *testing.T) {
	sess, clock := newSession()

	require.NoError(t, sess.Push("frame"))
	require.NoError(t, sess.Sample("f @ a.lua:1;", 1, 'I'))
	clock.Advance(time.Second)
	require.NoError(t, sess.Pop())

	var buf bytes.Buffer
	err := sess.Snapshot().WriteReport(&buf)
	require.NoError(t, err)

	var parsed profile.ProfileReport
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)
	require.Equal(t, sess.Snapshot(), &parsed)
}

func TestWriteReportContainsExpectedFields(t *testing.T) {
	sess, _ := newSession()
	require.NoError(t, sess.Push("frame"))
	require.NoError(t, sess.Sample("f @ a.lua:1;", 1, 'I'))
	require.NoError(t, sess.Pop())

	var buf bytes.Buffer
	err := sess.Snapshot().WriteReport(&buf)
	require.NoError(t, err)

	output := buf.String()
	require.True(t, strings.Contains(output, "frame"))
	require.True(t, strings.Contains(output, "f @ a.lua:1"))
	require.True(t, strings.Contains(output, "total_ticks"))
	require.True(t, strings.Contains(output, "interpreted"))
}
