package profile_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/zoneprof/zoneprof/pkg/profile"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		tag      byte
		mode     profile.Mode
		hasStack bool
		name     string
	}{
		{'N', profile.ModeCompiled, true, "compiled"},
		{'I', profile.ModeInterpreted, true, "interpreted"},
		{'C', profile.ModeNative, true, "native"},
		{'G', profile.ModeGC, false, "gc"},
		{'J', profile.ModeJIT, false, "jit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := profile.ParseMode(tt.tag)
			require.NoError(t, err)
			require.Equal(t, tt.mode, mode)
			require.Equal(t, tt.hasStack, mode.HasStack())
			require.Equal(t, tt.name, mode.String())
		})
	}
}

func TestParseModeUnknownTag(t *testing.T) {
	_, err := profile.ParseMode('X')
	require.Error(t, err)
	require.True(t, errors.Is(err, profile.ErrUnknownMode))
	require.Contains(t, err.Error(), "'X'")
}
