package npb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecomputeRatesBatting(t *testing.T) {
	s := SeasonStats{
		Type:           StatsBatting,
		AtBats:         500,
		Hits:           150,
		Doubles:        30,
		Triples:        3,
		HomeRuns:       25,
		Walks:          60,
		HitByPitch:     5,
		SacrificeFlies: 4,
		// garbage rate values a source might have carried
		BattingAverage: 0.999,
		OPS:            9.99,
	}
	s.RecomputeRates()

	require.Equal(t, 0.3, s.BattingAverage)
	require.Equal(t, 0.378, s.OnBasePercentage)
	// TB = 150 + 30 + 6 + 75 = 261
	require.Equal(t, 0.522, s.SluggingPercentage)
	require.Equal(t, 0.9, s.OPS)
	require.InDelta(t, s.OnBasePercentage+s.SluggingPercentage, s.OPS, 0.0005)
}

func TestRecomputeRatesPitching(t *testing.T) {
	s := SeasonStats{
		Type:           StatsPitching,
		InningsPitched: 180,
		EarnedRuns:     50,
		HitsAllowed:    160,
		WalksAllowed:   40,
	}
	s.RecomputeRates()

	require.Equal(t, 2.5, s.ERA)
	require.Equal(t, 1.111, s.WHIP)
}

func TestRecomputeRatesZeroDenominators(t *testing.T) {
	b := SeasonStats{Type: StatsBatting, BattingAverage: 0.5, OPS: 1.2}
	b.RecomputeRates()
	require.Zero(t, b.BattingAverage)
	require.Zero(t, b.OnBasePercentage)
	require.Zero(t, b.SluggingPercentage)
	require.Zero(t, b.OPS)

	p := SeasonStats{Type: StatsPitching, ERA: 3.5}
	p.RecomputeRates()
	require.Zero(t, p.ERA)
	require.Zero(t, p.WHIP)
}

func TestCareerTotalsSumsCountsNotRates(t *testing.T) {
	seasons := []SeasonStats{
		{PlayerID: "p1", Type: StatsBatting, Season: IntPtr(2003), Games: 140, AtBats: 500, Hits: 200},
		{PlayerID: "p1", Type: StatsBatting, Season: IntPtr(2004), Games: 130, AtBats: 400, Hits: 100},
	}
	career := CareerTotals(seasons)
	require.NotNil(t, career)
	require.Nil(t, career.Season)
	require.Equal(t, 270, career.Games)
	require.Equal(t, 900, career.AtBats)
	require.Equal(t, 300, career.Hits)
	// .400 and .250 seasons do not average to .325: the career rate comes
	// from the summed counts.
	require.Equal(t, 0.333, career.BattingAverage)
}

func TestCareerTotalsEmpty(t *testing.T) {
	require.Nil(t, CareerTotals(nil))
}

func TestCloneIsDeep(t *testing.T) {
	orig := &PlayerStats{
		PlayerID: "p1",
		Type:     StatsBatting,
		Player:   &Player{ID: "p1", NameEnglish: "Kazuo Matsui"},
		Seasons:  []SeasonStats{{PlayerID: "p1", Season: IntPtr(2002), Hits: 10}},
		Career:   &SeasonStats{PlayerID: "p1", Hits: 10},
	}
	c := orig.Clone()
	c.Player.NameEnglish = "changed"
	c.Seasons[0].Hits = 99
	c.Career.Hits = 99

	require.Equal(t, "Kazuo Matsui", orig.Player.NameEnglish)
	require.Equal(t, 10, orig.Seasons[0].Hits)
	require.Equal(t, 10, orig.Career.Hits)
}

func TestHasRecordedStats(t *testing.T) {
	require.False(t, (*PlayerStats)(nil).HasRecordedStats())
	require.False(t, (&PlayerStats{}).HasRecordedStats())
	require.True(t, (&PlayerStats{Career: &SeasonStats{Games: 1}}).HasRecordedStats())
	require.True(t, (&PlayerStats{Seasons: []SeasonStats{{Games: 0}, {Games: 3}}}).HasRecordedStats())
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Source: "npb_official", Op: "fetch standings", Err: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "npb_official")
}
