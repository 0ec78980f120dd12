// Package baseballref scrapes the Baseball-Reference register pages for NPB
// players. It is a secondary source: slower and rate-limit hostile, but it
// carries advanced metrics (WAR, OPS+, ERA+) the primary sources lack.
package baseballref

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/albertinopadin/baseball-mcp/lib/telemetry"
	"github.com/albertinopadin/baseball-mcp/npb"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.baseball-reference.com"

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
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)

	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	httpClient.SetTimeout(time.Second * 30)

	// 1 request max per second; the site bans crawlers that go faster
	rateLimiter := rate.NewLimiter(1, 2)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, "providers/baseballref")

	return &client{http: httpClient}, nil
}

// fetchDocument fetches and parses a page. The final URL after redirects is
// returned alongside: the search endpoint redirects straight to a player page
// when the query is unambiguous, and callers need to notice that.
func (c *client) fetchDocument(ctx context.Context, path string) (*goquery.Document, *url.URL, error) {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, nil, &npb.TransportError{Source: SourceName, Op: "fetch " + path, Err: err}
	}
	if res.StatusCode() == 404 {
		return nil, nil, npb.ErrNotFound
	}
	if res.IsError() {
		return nil, nil, &npb.TransportError{
			Source: SourceName,
			Op:     "fetch " + path,
			Err:    fmt.Errorf("unexpected status %d", res.StatusCode()),
		}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		return nil, nil, &npb.TransportError{Source: SourceName, Op: "parse " + path, Err: err}
	}
	return doc, res.RawResponse.Request.URL, nil
}

func searchPath(name string) string {
	return "/search/search.fcgi?search=" + url.QueryEscape(name) + "&pid=&hint="
}

func playerPath(playerID string) string {
	return "/register/player.fcgi?id=" + url.QueryEscape(playerID)
}
