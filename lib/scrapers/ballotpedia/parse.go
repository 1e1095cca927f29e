package ballotpedia

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"electiontracker/lib/elections"
	"electiontracker/lib/htmlutil"
	"electiontracker/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("scrapers/ballotpedia")

var uncontestedMarkers = []string{"uncontested", "unopposed"}

// placeholder strings the source uses where an incumbent name would be
var incumbentBlacklist = []string{"vacant", "none", ""}

// PageContext is the (state, office, year) combination that produced a
// fetch, carried into every record extracted from the page.
type PageContext struct {
	State  string
	Office string
	Year   int
	URL    string
}

// ParsePage extracts election records from one page's HTML. Malformed
// markup never fails the page: rows that cannot be keyed are skipped and
// a document-level parse failure yields zero records.
func ParsePage(ctx context.Context, body []byte, page PageContext) []elections.Election {
	ctx, span := tracer.Start(ctx, "ParsePage")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		slog.WarnContext(ctx, "failed to parse page html", "url", page.URL, "err", err)
		return nil
	}

	stateAbbrev := Abbreviation(page.State)
	electionDate := GeneralElectionDate(page.Year)

	var out []elections.Election
	doc.Find("table.wikitable, table.bptable").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
			if rowIdx == 0 {
				// header row
				return
			}
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}

			district := htmlutil.CleanText(cells.Eq(0))
			if district == "" {
				// row cannot be keyed without district text
				return
			}

			isUncontested := textutil.ContainsAny(row.Text(), uncontestedMarkers)

			var incumbent *string
			name := htmlutil.CleanText(cells.Eq(1))
			if !textutil.EqualsAny(name, incumbentBlacklist) {
				incumbent = &name
			}

			out = append(out, elections.Election{
				Location:      fmt.Sprintf("%s - %s %s", page.State, page.Office, district),
				State:         stateAbbrev,
				Office:        page.Office,
				District:      district,
				ElectionDate:  electionDate,
				IsUncontested: isUncontested,
				Incumbent:     incumbent,
				SourceURL:     page.URL,
			})
		})
	})

	span.SetAttributes(attribute.Int("records", len(out)))
	return out
}
