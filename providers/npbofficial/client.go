// Package npbofficial scrapes the league's official English stat pages. It
// covers recent seasons only; the historical archive serves everything before
// the cutoff.
package npbofficial

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/albertinopadin/baseball-mcp/lib/telemetry"
	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/go-resty/resty/v2"
	"github.com/mazen160/go-random"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://npb.jp"

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
}

type client struct {
	http *resty.Client
}

func newClient(baseURL string) (*client, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient.SetCookieJar(jar)
	httpClient.SetHeaders(map[string]string{
		"Accept":          "text/html,application/xhtml+xml",
		"Accept-Language": "en-US,en;q=0.9",
	})
	httpClient.SetTimeout(time.Second * 30)

	// 2 requests max per second
	// max burst >= 2 just means that no requests will be dropped
	rateLimiter := rate.NewLimiter(2, 2)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if err := rateLimiter.Wait(req.Context()); err != nil {
			return err
		}
		idx, err := random.IntRange(0, len(userAgents))
		if err != nil {
			idx = 0
		}
		req.SetHeader("User-Agent", userAgents[idx])
		return nil
	})

	telemetry.InstrumentResty(httpClient, "providers/npbofficial")

	return &client{http: httpClient}, nil
}

// fetchDocument fetches a stats page and parses it. A page that does not
// exist for the requested season comes back 404, which is reported as
// npb.ErrNotFound so callers can tell it apart from a transport fault.
func (c *client) fetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, &npb.TransportError{Source: SourceName, Op: "fetch " + path, Err: err}
	}
	if res.StatusCode() == 404 {
		return nil, npb.ErrNotFound
	}
	if res.IsError() {
		return nil, &npb.TransportError{
			Source: SourceName,
			Op:     "fetch " + path,
			Err:    fmt.Errorf("unexpected status %d", res.StatusCode()),
		}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		return nil, &npb.TransportError{Source: SourceName, Op: "parse " + path, Err: err}
	}
	return doc, nil
}

func leagueBattingPath(season int, league npb.League) string {
	return fmt.Sprintf("/bis/eng/%d/stats/bat_%s.html", season, leagueCode(league))
}

func leaguePitchingPath(season int, league npb.League) string {
	return fmt.Sprintf("/bis/eng/%d/stats/pit_%s.html", season, leagueCode(league))
}

func teamBattingPath(season int, siteCode string) string {
	return fmt.Sprintf("/bis/eng/%d/stats/idb1_%s.html", season, siteCode)
}

func teamPitchingPath(season int, siteCode string) string {
	return fmt.Sprintf("/bis/eng/%d/stats/idp1_%s.html", season, siteCode)
}

func standingsPath(season int, league npb.League) string {
	return fmt.Sprintf("/bis/eng/%d/standings/std_%s.html", season, leagueCode(league))
}

func leagueCode(league npb.League) string {
	if league == npb.LeaguePacific {
		return "p"
	}
	return "c"
}
