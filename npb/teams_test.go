package npb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamTableShape(t *testing.T) {
	require.Len(t, AllTeams, 12)
	require.Len(t, TeamsByLeague(LeagueCentral), 6)
	require.Len(t, TeamsByLeague(LeaguePacific), 6)

	codes := map[string]bool{}
	for _, team := range AllTeams {
		require.NotEmpty(t, team.SiteCode)
		require.False(t, codes[team.SiteCode], "duplicate site code %q", team.SiteCode)
		codes[team.SiteCode] = true
	}
}

func TestTeamLookups(t *testing.T) {
	require.Equal(t, "giants", TeamBySiteCode("g").ID)
	require.Equal(t, "baystars", TeamBySiteCode("db").ID)
	require.Nil(t, TeamBySiteCode("x"))

	require.Equal(t, "tigers", TeamByName("Hanshin Tigers").ID)
	require.Equal(t, "tigers", TeamByName("tigers").ID)
	require.Equal(t, "hawks", TeamByName("SoftBank").ID)
	require.Equal(t, "swallows", TeamByName("YAK").ID)
	require.Equal(t, "dragons", TeamByName("中日ドラゴンズ").ID)
	require.Nil(t, TeamByName(""))
	require.Nil(t, TeamByName("Mets"))
}
