package parser

import (
	"testing"

	"lograt/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineLongForm(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		raw := "05-19 06:57:59.912  2045  2140 W AppOps  : Noting op not finished: uid 10102 pkg com.google.android.gms code 41 time=1589896674895 duration=0"

		rec, ok := ParseLine(raw)
		require.True(t, ok)

		assert.Equal(t, core.Warn, rec.Level)
		assert.Equal(t, "AppOps", rec.Tag)
		assert.Equal(t, "2045", rec.Owner)
		assert.Equal(t, "2140", rec.TID)
		assert.Equal(t, "05-19", rec.Date)
		assert.Equal(t, "06:57:59.912", rec.Time)
		assert.Equal(t, "Noting op not finished: uid 10102 pkg com.google.android.gms code 41 time=1589896674895 duration=0", rec.Message)
	})

	t.Run("TagWithoutPadding", func(t *testing.T) {
		raw := "05-19 06:57:55.890  1800  2437 E GnssHAL_GnssInterface: gnssSvStatusCb: a: input svInfo.flags is 8"

		rec, ok := ParseLine(raw)
		require.True(t, ok)

		assert.Equal(t, core.Error, rec.Level)
		assert.Equal(t, "GnssHAL_GnssInterface", rec.Tag)
		assert.Equal(t, "1800", rec.Owner)
		assert.Equal(t, "2437", rec.TID)
		assert.Equal(t, "gnssSvStatusCb: a: input svInfo.flags is 8", rec.Message)
	})

	t.Run("MessageWithBraces", func(t *testing.T) {
		raw := "05-19 06:49:59.836  2045  5774 I ActivityTaskManager: START u0 {act=android.intent.action.MAIN cat=[android.intent.category.HOME] flg=0x10000000 cmp=com.google.android.apps.nexuslauncher/.NexusLauncherActivity (has extras)} from uid 10092"

		rec, ok := ParseLine(raw)
		require.True(t, ok)

		assert.Equal(t, core.Info, rec.Level)
		assert.Equal(t, "ActivityTaskManager", rec.Tag)
		assert.Equal(t, "2045", rec.Owner)
		assert.Equal(t, "5774", rec.TID)
		assert.Equal(t, "START u0 {act=android.intent.action.MAIN cat=[android.intent.category.HOME] flg=0x10000000 cmp=com.google.android.apps.nexuslauncher/.NexusLauncherActivity (has extras)} from uid 10092", rec.Message)
	})
}

func TestParseLineBriefForm(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		raw := "E/GnssHAL_GnssInterface( 1800): gnssSvStatusCb: b: input svInfo.flags is 8"

		rec, ok := ParseLine(raw)
		require.True(t, ok)

		assert.Equal(t, core.Error, rec.Level)
		assert.Equal(t, "GnssHAL_GnssInterface", rec.Tag)
		assert.Equal(t, "1800", rec.Owner)
		assert.Equal(t, "gnssSvStatusCb: b: input svInfo.flags is 8", rec.Message)
		assert.Empty(t, rec.Date)
		assert.Empty(t, rec.Time)
		assert.Empty(t, rec.TID)
	})

	t.Run("OwnerWithoutPadding", func(t *testing.T) {
		rec, ok := ParseLine("I/ActivityManager(2045): message body")
		require.True(t, ok)

		assert.Equal(t, "ActivityManager", rec.Tag)
		assert.Equal(t, "2045", rec.Owner)
		assert.Equal(t, "message body", rec.Message)
	})

	t.Run("UnknownLevelLetterDegradesToVerbose", func(t *testing.T) {
		rec, ok := ParseLine("Q/SomeTag( 42): odd severity")
		require.True(t, ok)

		assert.Equal(t, core.Verbose, rec.Level)
		assert.Equal(t, "SomeTag", rec.Tag)
	})
}

func TestParseLineUnrecognized(t *testing.T) {
	for _, raw := range []string{
		"--------- beginning of main",
		"not a log line at all",
		"\tat com.example.Main.run(Main.java:42)",
	} {
		_, ok := ParseLine(raw)
		assert.False(t, ok, "line %q", raw)
	}
}
