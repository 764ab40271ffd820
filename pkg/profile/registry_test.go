package profile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoneprof/zoneprof/pkg/profile"
)

func TestRegistryAssignsStableIDs(t *testing.T) {
	r := profile.NewRegistry()

	first := r.RegisterOrGet("frame")
	second := r.RegisterOrGet("load")

	require.Equal(t, profile.ZoneID(1), first)
	require.Equal(t, profile.ZoneID(2), second)
	require.Equal(t, first, r.RegisterOrGet("frame"),
		"registering the same name twice must return the same id",
	)
	require.Equal(t, 2, r.Len())
}

func TestRegistryBidirectionalLookup(t *testing.T) {
	r := profile.NewRegistry()

	id := r.RegisterOrGet("frame")
	require.Equal(t, "frame", r.NameOf(id))

	got, ok := r.Lookup("frame")
	require.True(t, ok)
	require.Equal(t, id, got)

	_, ok = r.Lookup("unknown")
	require.False(t, ok)
}
