package baseballref

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/albertinopadin/baseball-mcp/lib/htmlutil"
	"github.com/albertinopadin/baseball-mcp/lib/nameutil"
	"github.com/albertinopadin/baseball-mcp/npb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("providers/baseballref")

const SourceName = "baseball_reference"

type Provider struct {
	client *client
}

// New builds a provider against the register site. baseURL is overridable for
// tests; pass "" for the real site.
func New(baseURL string) (*Provider, error) {
	c, err := newClient(baseURL)
	if err != nil {
		return nil, err
	}
	return &Provider{client: c}, nil
}

func (p *Provider) Name() string { return SourceName }

// SearchPlayer queries the register's search endpoint. An unambiguous query
// is answered with a redirect straight to the player page; otherwise the
// results page links every matching register entry.
func (p *Provider) SearchPlayer(ctx context.Context, name string) ([]npb.Player, error) {
	ctx, span := tracer.Start(ctx, "SearchPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("query", name))

	doc, finalURL, err := p.client.fetchDocument(ctx, searchPath(name))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search fetch failed")
		return nil, err
	}

	if strings.Contains(finalURL.Path, "/register/player.fcgi") {
		id := finalURL.Query().Get("id")
		if id == "" {
			return nil, nil
		}
		slog.DebugContext(ctx, "search redirected to player page", "query", name, "player_id", id)
		return []npb.Player{playerIdentity(id, pageName(doc))}, nil
	}

	seen := map[string]bool{}
	var players []npb.Player
	doc.Find(`a[href*="/register/player.fcgi"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		id := playerIDFromHref(href)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		players = append(players, playerIdentity(id, htmlutil.CleanText(link.Text())))
	})

	sort.SliceStable(players, func(i, j int) bool {
		return nameutil.Similarity(name, players[i].NameEnglish) >
			nameutil.Similarity(name, players[j].NameEnglish)
	})
	return players, nil
}

func (p *Provider) PlayerStats(ctx context.Context, playerID string, season *int, statsType npb.StatsType) (*npb.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "PlayerStats")
	defer span.End()
	span.SetAttributes(
		attribute.String("player_id", playerID),
		attribute.String("stats_type", string(statsType)),
	)

	doc, _, err := p.client.fetchDocument(ctx, playerPath(playerID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "player page fetch failed")
		return nil, err
	}

	battingTable := findBattingTable(doc)
	pitchingTable := findPitchingTable(doc)
	if statsType == "" {
		// a register page with only a pitching table belongs to a pitcher
		if battingTable == nil && pitchingTable != nil {
			statsType = npb.StatsPitching
		} else {
			statsType = npb.StatsBatting
		}
	}

	var seasons []npb.SeasonStats
	switch statsType {
	case npb.StatsPitching:
		if pitchingTable != nil {
			seasons = pitchingSeasons(pitchingTable, playerID)
		}
	default:
		if battingTable != nil {
			seasons = battingSeasons(battingTable, playerID)
		}
	}

	if season != nil {
		filtered := seasons[:0]
		for _, s := range seasons {
			if s.Season != nil && *s.Season == *season {
				filtered = append(filtered, s)
			}
		}
		seasons = filtered
	}
	if len(seasons) == 0 {
		return nil, npb.ErrNotFound
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return *seasons[i].Season < *seasons[j].Season
	})

	player := playerIdentity(playerID, pageName(doc))
	stats := &npb.PlayerStats{
		PlayerID: playerID,
		Player:   &player,
		Type:     statsType,
		Source:   SourceName,
		Seasons:  seasons,
	}
	if season == nil {
		stats.Career = npb.CareerTotals(seasons)
	}
	return stats, nil
}

// The register carries no structured team, roster or standings data for NPB.

func (p *Provider) Teams(ctx context.Context, season *int) ([]npb.Team, error) {
	return nil, npb.ErrUnsupported
}

func (p *Provider) TeamRoster(ctx context.Context, teamID string, season *int) ([]npb.Player, error) {
	return nil, npb.ErrUnsupported
}

func (p *Provider) Standings(ctx context.Context, league *npb.League, season *int) ([]npb.Standing, error) {
	return nil, npb.ErrUnsupported
}

// HealthCheck fetches the register index. A 404 still proves the site
// answered.
func (p *Provider) HealthCheck(ctx context.Context) error {
	_, _, err := p.client.fetchDocument(ctx, "/register/")
	if err != nil && !errors.Is(err, npb.ErrNotFound) {
		return err
	}
	return nil
}

func playerIdentity(id, name string) npb.Player {
	return npb.Player{
		ID:          id,
		NameEnglish: name,
		Source:      SourceName,
		SourceIDs:   map[string]string{SourceName: id},
	}
}

func pageName(doc *goquery.Document) string {
	return htmlutil.CleanText(doc.Find("h1").First().Text())
}

var _ npb.Provider = (*Provider)(nil)
