package ballotpedia

import (
	"context"
	"fmt"
	"time"

	"electiontracker/lib/elections"
	"electiontracker/lib/restyutil"
	"electiontracker/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://ballotpedia.org"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// OfficePage is one page type of the scrape matrix. The source publishes
// one page per (state, chamber, year).
type OfficePage struct {
	Office  string
	pattern string
}

var OfficePages = []OfficePage{
	{Office: "State Senate", pattern: "%s_State_Senate_elections,_%d"},
	{Office: "State House", pattern: "%s_House_of_Representatives_elections,_%d"},
}

func (p OfficePage) URL(base, state string, year int) string {
	return base + "/" + fmt.Sprintf(p.pattern, state, year)
}

type ClientOptions struct {
	// BaseURL overrides the source host, used by tests.
	BaseURL string
	// Delay is the mandatory politeness delay between fetches.
	Delay time.Duration
	// Timeout bounds a single fetch.
	Timeout time.Duration
	// Retries bounds transparent retry-with-backoff on transport
	// errors and 5xx responses.
	Retries int
	// DebugDir, when set, dumps all HTTP traffic there for parser
	// debugging.
	DebugDir string
}

type Client struct {
	Http    *resty.Client
	baseURL string
	delay   time.Duration
}

func NewClient(opts ClientOptions) *Client {
	base := opts.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.Retries > 0 {
		client.SetRetryCount(opts.Retries)
		client.SetRetryWaitTime(time.Second)
		client.SetRetryMaxWaitTime(time.Second * 10)
		client.AddRetryCondition(func(res *resty.Response, err error) bool {
			return err != nil || res.StatusCode() >= 500
		})
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/ballotpedia/http")
	if opts.DebugDir != "" {
		restyutil.DumpTraffic(client, restyutil.NewFilesystemOutput(opts.DebugDir))
	}

	return &Client{
		Http:    client,
		baseURL: base,
		delay:   opts.Delay,
	}
}

// Sleep applies the politeness delay, returning early when the context
// is cancelled.
func (c *Client) Sleep(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OfficeElections fetches and parses one (state, office, year) page. A
// failed fetch is reported to the caller, the scrape matrix treats it as
// zero extractable records and moves on.
func (c *Client) OfficeElections(ctx context.Context, state string, page OfficePage, year int) ([]elections.Election, error) {
	link := page.URL(c.baseURL, state, year)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", link, err)
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch %s: status %d", link, res.StatusCode())
	}

	return ParsePage(ctx, res.Body(), PageContext{
		State:  state,
		Office: page.Office,
		Year:   year,
		URL:    link,
	}), nil
}
