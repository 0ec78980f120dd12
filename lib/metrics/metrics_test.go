package metrics

import (
	"testing"

	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/stretchr/testify/require"
)

func TestFIP(t *testing.T) {
	// 20 HR, 50 BB, 5 HBP, 180 K over 200 IP:
	// (260 + 165 - 360)/200 + 3.10 = 3.425 -> 3.43
	v, ok := FIP(20, 50, 5, 180, 200)
	require.True(t, ok)
	require.Equal(t, 3.43, v)

	_, ok = FIP(1, 1, 1, 1, 0)
	require.False(t, ok)
}

func TestWOBA(t *testing.T) {
	v, ok := WOBA(60, 5, 100, 30, 3, 25, 500, 4)
	require.True(t, ok)
	require.Greater(t, v, 0.3)
	require.Less(t, v, 0.5)

	_, ok = WOBA(0, 0, 0, 0, 0, 0, 0, 0)
	require.False(t, ok)
}

func TestPlusMetrics(t *testing.T) {
	v, ok := OPSPlus(0.900)
	require.True(t, ok)
	require.Equal(t, 120, v)

	v, ok = ERAPlus(2.50)
	require.True(t, ok)
	require.Equal(t, 140, v)

	_, ok = OPSPlus(0)
	require.False(t, ok)
	_, ok = ERAPlus(0)
	require.False(t, ok)
}

func TestEnhanceBattingFillsOnlyUnset(t *testing.T) {
	s := &npb.SeasonStats{
		Type:           npb.StatsBatting,
		Games:          140,
		AtBats:         500,
		Hits:           150,
		Doubles:        30,
		Triples:        3,
		HomeRuns:       25,
		Walks:          60,
		HitByPitch:     5,
		SacrificeFlies: 4,
		WOBA:           npb.Float64Ptr(0.999),
	}
	s.RecomputeRates()
	EnhanceBatting(s)

	require.Equal(t, 0.999, *s.WOBA, "populated field must not be overwritten")
	require.NotNil(t, s.OPSPlus)
	require.NotNil(t, s.WAR)
}

func TestEnhancePitching(t *testing.T) {
	s := &npb.SeasonStats{
		Type:              npb.StatsPitching,
		InningsPitched:    180,
		EarnedRuns:        50,
		HitsAllowed:       160,
		WalksAllowed:      40,
		HitBatters:        5,
		HomeRunsAllowed:   15,
		StrikeoutsPitched: 170,
	}
	s.RecomputeRates()
	EnhancePitching(s)

	require.NotNil(t, s.FIP)
	require.NotNil(t, s.ERAPlus)
	require.NotNil(t, s.WAR)

	// batting lines are ignored
	b := &npb.SeasonStats{Type: npb.StatsBatting, ERA: 2.0}
	EnhancePitching(b)
	require.Nil(t, b.ERAPlus)
}
