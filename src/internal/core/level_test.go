package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Run("AllLetters", func(t *testing.T) {
		cases := map[string]Level{
			"V": Verbose, "v": Verbose,
			"D": Debug, "d": Debug,
			"I": Info, "i": Info,
			"W": Warn, "w": Warn,
			"E": Error, "e": Error,
			"A": Assert, "a": Assert,
		}
		for in, want := range cases {
			lvl, err := ParseLevel(in)
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, want, lvl, "input %q", in)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, lvl := range []Level{Verbose, Debug, Info, Warn, Error, Assert} {
			parsed, err := ParseLevel(lvl.String())
			require.NoError(t, err)
			assert.Equal(t, lvl, parsed)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, in := range []string{"X", "F", "Z", "", "VV", "1", "?"} {
			_, err := ParseLevel(in)
			assert.ErrorIs(t, err, ErrUnknownLevel, "input %q", in)
		}
	})
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, Error > Warn)
	assert.True(t, Warn > Info)
	assert.True(t, Info > Debug)
	assert.True(t, Debug > Verbose)
	assert.True(t, Assert > Error)
}
