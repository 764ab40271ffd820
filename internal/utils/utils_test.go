package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoneprof/zoneprof/internal/utils"
)

func TestFloorTo(t *testing.T) {
	require.Equal(t, 99.999, utils.FloorTo(99.9999, 3),
		"FloorTo should truncate, not round",
	)
	require.Equal(t, 1.5, utils.FloorTo(1.5, 6))
	require.Equal(t, 0.0, utils.FloorTo(0.0009, 3))
	require.Equal(t, 2.0, utils.FloorTo(2.0, 6))
}

func TestClampF(t *testing.T) {
	require.Equal(t, 100.0, utils.ClampF(250.0, 0, 100))
	require.Equal(t, 0.0, utils.ClampF(-1.0, 0, 100))
	require.Equal(t, 42.0, utils.ClampF(42.0, 0, 100))
}
