package nameutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "ichiro suzuki", Normalize("  Ichiro   Suzuki "))
	require.Equal(t, "sadaharu o", Normalize("Sadaharu Oh"))
	require.Equal(t, "koji uehara", Normalize("Kouji Uehara"))
	require.Equal(t, "otani", Normalize("Ohtani"))
	require.Equal(t, "matsui h", Normalize("Matsui, H."))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, name := range []string{"Sadaharu Oooh", "Kouji Uehara", "Shohei Ohtani", "Yuu Darvish"} {
		once := Normalize(name)
		require.Equal(t, once, Normalize(once), "normalize not idempotent for %q", name)
	}
}

func TestVariants(t *testing.T) {
	vs := Variants("Kouji Uehara")
	require.Contains(t, vs, "koji uehara")
	require.Contains(t, vs, "Kouji Uehara")
	// order swap
	require.Contains(t, vs, "Uehara Kouji")
	require.Contains(t, vs, "uehara koji")
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Suzuki Ichiro")
	require.Equal(t, "Ichiro", first)
	require.Equal(t, "Suzuki", last)

	first, last = SplitName("Ichiro")
	require.Equal(t, "Ichiro", first)
	require.Empty(t, last)

	first, last = SplitName("")
	require.Empty(t, first)
	require.Empty(t, last)
}

func TestMatchStrict(t *testing.T) {
	require.True(t, Match("Sadaharu Oh", "sadaharu o", true))
	require.False(t, Match("Oh", "Oh, Sadaharu", true))
}

func TestMatchCommaCandidate(t *testing.T) {
	require.True(t, Match("Oh", "Oh, Sadaharu", false))
	require.True(t, Match("Sadaharu", "Oh, Sadaharu", false))
	require.True(t, Match("Sadaharu Oh", "Oh, Sadaharu", false))
	require.False(t, Match("Nagashima", "Oh, Sadaharu", false))
}

func TestMatchVariantsAndSingleToken(t *testing.T) {
	// romanization variant of the query
	require.True(t, Match("Koji Uehara", "Kouji Uehara", false))
	// order swap variant
	require.True(t, Match("Uehara Koji", "Koji Uehara", false))
	// single token against any part
	require.True(t, Match("Ichiro", "Suzuki Ichiro", false))
	require.False(t, Match("Ichiro", "Suzuki Daisuke", false))
}

func TestSortBySimilarity(t *testing.T) {
	names := []string{"Daisuke Matsuzaka", "Hideki Matsui", "Kazuo Matsui"}
	SortBySimilarity("Kazuo Matsui", names)
	require.Equal(t, "Kazuo Matsui", names[0])
}
