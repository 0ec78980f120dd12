package baseballref

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/albertinopadin/baseball-mcp/lib/telemetry"
	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/stretchr/testify/require"
)

const searchResultsHTML = `<html><body><div id="searches">
<a href="/register/player.fcgi?id=suzuki001ich">Ichiro Suzuki</a>
<a href="/register/player.fcgi?id=suzuki002kei">Kei Suzuki</a>
<a href="/register/player.fcgi?id=suzuki001ich">Ichiro Suzuki</a>
</div></body></html>`

func battingPageHTML() string {
	rows := []string{
		"<tr><th>Year</th><th>Age</th><th>Tm</th><th>Lg</th><th>G</th><th>PA</th><th>AB</th><th>R</th><th>H</th><th>2B</th><th>3B</th><th>HR</th><th>RBI</th><th>SB</th><th>CS</th><th>BB</th><th>SO</th><th>HBP</th><th>SF</th><th>BA</th><th>OBP</th><th>SLG</th><th>OPS</th><th>OPS+</th><th>WAR</th></tr>",
		// MLB stint, must be skipped
		"<tr><td>1963</td><td>23</td><td>NYY</td><td>AL</td><td>20</td><td>60</td><td>55</td><td>5</td><td>12</td><td>2</td><td>0</td><td>1</td><td>4</td><td>0</td><td>0</td><td>4</td><td>10</td><td>0</td><td>1</td><td>.218</td><td>.267</td><td>.309</td><td>.576</td><td>70</td><td>0.1</td></tr>",
		"<tr><td>1964</td><td>24</td><td>Yomiuri</td><td>JPCL</td><td>140</td><td>598</td><td>472</td><td>110</td><td>151</td><td>24</td><td>2</td><td>55</td><td>119</td><td>6</td><td>3</td><td>119</td><td>70</td><td>2</td><td>5</td><td>.320</td><td>.456</td><td>.729</td><td>1.185</td><td>245</td><td>9.4</td></tr>",
		"<tr><td>1965</td><td>25</td><td>Yomiuri</td><td>JPCL</td><td>135</td><td>573</td><td>428</td><td>104</td><td>138</td><td>18</td><td>1</td><td>42</td><td>104</td><td>4</td><td>1</td><td>138</td><td>58</td><td>3</td><td>4</td><td>.322</td><td>.487</td><td>.664</td><td>1.151</td><td>230</td><td>8.1</td></tr>",
	}
	return `<html><body><h1>Sadaharu Oh</h1><table id="batting_standard">` +
		strings.Join(rows, "") + "</table></body></html>"
}

func pitchingPageHTML() string {
	rows := []string{
		"<tr><th>Year</th><th>Age</th><th>Tm</th><th>Lg</th><th>W</th><th>L</th><th>ERA</th><th>G</th><th>GS</th><th>CG</th><th>SHO</th><th>SV</th><th>IP</th><th>H</th><th>R</th><th>ER</th><th>HR</th><th>BB</th><th>SO</th><th>ERA+</th><th>WAR</th></tr>",
		"<tr><td>1958</td><td>24</td><td>Kokutetsu</td><td>JPCL</td><td>31</td><td>21</td><td>1.98</td><td>68</td><td>47</td><td>32</td><td>6</td><td>3</td><td>350.1</td><td>250</td><td>90</td><td>78</td><td>12</td><td>120</td><td>350</td><td>150</td><td>10.2</td></tr>",
	}
	return `<html><body><h1>Masaichi Kaneda</h1><table id="pitching_standard">` +
		strings.Join(rows, "") + "</table></body></html>"
}

func testServer(t *testing.T) *httptest.Server {
	cleanup := telemetry.SetupForTesting("providers/baseballref")
	t.Cleanup(cleanup)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search/search.fcgi":
			query := r.URL.Query().Get("search")
			switch {
			case strings.Contains(query, "Oh"):
				// unambiguous query, the site redirects to the player page
				http.Redirect(w, r, "/register/player.fcgi?id=oh----001sad", http.StatusFound)
			case strings.Contains(query, "Suzuki"):
				fmt.Fprint(w, searchResultsHTML)
			default:
				fmt.Fprint(w, `<html><body><div id="searches"></div></body></html>`)
			}
		case r.URL.Path == "/register/player.fcgi":
			switch r.URL.Query().Get("id") {
			case "oh----001sad":
				fmt.Fprint(w, battingPageHTML())
			case "kaneda01mas":
				fmt.Fprint(w, pitchingPageHTML())
			default:
				http.NotFound(w, r)
			}
		default:
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func newTestProvider(t *testing.T) *Provider {
	server := testServer(t)
	provider, err := New(server.URL)
	require.NoError(t, err)
	return provider
}

func TestParseInnings(t *testing.T) {
	require.Equal(t, 350.33, parseInnings("350.1"))
	require.Equal(t, 12.67, parseInnings("12.2"))
	require.Equal(t, 200.0, parseInnings("200"))
	require.Equal(t, 0.0, parseInnings(""))
}

func TestSearchResultsPage(t *testing.T) {
	provider := newTestProvider(t)

	players, err := provider.SearchPlayer(context.Background(), "Ichiro Suzuki")
	require.NoError(t, err)
	require.Len(t, players, 2)
	// duplicate link de-duplicated, exact match ranked first
	require.Equal(t, "suzuki001ich", players[0].ID)
	require.Equal(t, "Ichiro Suzuki", players[0].NameEnglish)
	require.Equal(t, SourceName, players[0].Source)
	require.Equal(t, "suzuki002kei", players[1].ID)

	players, err = provider.SearchPlayer(context.Background(), "Nobody")
	require.NoError(t, err)
	require.Empty(t, players)
}

func TestSearchRedirectsToPlayerPage(t *testing.T) {
	provider := newTestProvider(t)

	players, err := provider.SearchPlayer(context.Background(), "Sadaharu Oh")
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "oh----001sad", players[0].ID)
	require.Equal(t, "Sadaharu Oh", players[0].NameEnglish)
}

func TestPlayerStatsSeason(t *testing.T) {
	provider := newTestProvider(t)

	stats, err := provider.PlayerStats(context.Background(), "oh----001sad", npb.IntPtr(1964), npb.StatsBatting)
	require.NoError(t, err)
	require.Len(t, stats.Seasons, 1)
	require.Nil(t, stats.Career)

	line := stats.Seasons[0]
	require.Equal(t, 1964, *line.Season)
	require.Equal(t, "Yomiuri", line.Team)
	// rates recomputed from counts
	require.Equal(t, 0.320, line.BattingAverage)
	require.Equal(t, 0.455, line.OnBasePercentage)
	// advanced columns carried through as optional fields
	require.NotNil(t, line.OPSPlus)
	require.Equal(t, 245, *line.OPSPlus)
	require.NotNil(t, line.WAR)
	require.Equal(t, 9.4, *line.WAR)
}

func TestPlayerStatsCareerSkipsNonNPBRows(t *testing.T) {
	provider := newTestProvider(t)

	stats, err := provider.PlayerStats(context.Background(), "oh----001sad", nil, npb.StatsBatting)
	require.NoError(t, err)
	// the MLB stint row does not count
	require.Len(t, stats.Seasons, 2)
	require.NotNil(t, stats.Career)
	require.Equal(t, 275, stats.Career.Games)
	require.Equal(t, 900, stats.Career.AtBats)
	require.Equal(t, 0.321, stats.Career.BattingAverage)
	// summed counting fields only; advanced fields stay unset on the aggregate
	require.Nil(t, stats.Career.WAR)
}

func TestPlayerStatsPitcherInferred(t *testing.T) {
	provider := newTestProvider(t)

	// empty stats type: the page has only a pitching table
	stats, err := provider.PlayerStats(context.Background(), "kaneda01mas", nil, "")
	require.NoError(t, err)
	require.Equal(t, npb.StatsPitching, stats.Type)
	require.Len(t, stats.Seasons, 1)

	line := stats.Seasons[0]
	require.Equal(t, 350.33, line.InningsPitched)
	// ERA from ER/IP: 78*9/350.33
	require.Equal(t, 2.00, line.ERA)
	require.Equal(t, 1.056, line.WHIP)
	require.NotNil(t, line.ERAPlus)
	require.Equal(t, 150, *line.ERAPlus)
}

func TestPlayerStatsNotFound(t *testing.T) {
	provider := newTestProvider(t)

	_, err := provider.PlayerStats(context.Background(), "unknown01xxx", nil, npb.StatsBatting)
	require.ErrorIs(t, err, npb.ErrNotFound)

	// known batter, pitching requested
	_, err = provider.PlayerStats(context.Background(), "oh----001sad", nil, npb.StatsPitching)
	require.ErrorIs(t, err, npb.ErrNotFound)
}

func TestUnsupportedOperations(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Teams(ctx, nil)
	require.ErrorIs(t, err, npb.ErrUnsupported)
	_, err = provider.TeamRoster(ctx, "giants", nil)
	require.ErrorIs(t, err, npb.ErrUnsupported)
	_, err = provider.Standings(ctx, nil, nil)
	require.ErrorIs(t, err, npb.ErrUnsupported)
}

func TestHealthCheck(t *testing.T) {
	provider := newTestProvider(t)
	// the index route 404s in the fixture server; an answered request is
	// still a healthy site
	require.NoError(t, provider.HealthCheck(context.Background()))
}
