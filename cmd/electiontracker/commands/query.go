package commands

import (
	"fmt"
	"strconv"
	"strings"

	"electiontracker/lib/elections"
	"electiontracker/lib/scrapers/ballotpedia"
	"electiontracker/lib/serviceutil"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const queryDisplayLimit = 20

var (
	queryState       *string
	queryOffice      *string
	queryUncontested *bool
	queryMinRPlus    *string
	queryMaxRPlus    *string
)

func init() {
	queryState = queryCmd.Flags().String("state", "", "Filter by state abbreviation (e.g. CA).")
	queryOffice = queryCmd.Flags().String("office", "", "Filter by office type (e.g. 'State Senate').")
	queryUncontested = queryCmd.Flags().Bool("uncontested", false, "Only uncontested races.")
	queryMinRPlus = queryCmd.Flags().String("min-r-plus", "", "Minimum R+ value (inclusive).")
	queryMaxRPlus = queryCmd.Flags().String("max-r-plus", "", "Maximum R+ value (inclusive).")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [--state CA] [--office 'State Senate'] [--uncontested] [--min-r-plus N] [--max-r-plus N]",
	Short: "Query the record store with filters.",
	Run: func(cmd *cobra.Command, args []string) {
		filters := elections.Filters{
			State:           *queryState,
			OfficeType:      *queryOffice,
			UncontestedOnly: *queryUncontested,
			MinRPlus:        parseBound("--min-r-plus", *queryMinRPlus),
			MaxRPlus:        parseBound("--max-r-plus", *queryMaxRPlus),
		}

		if hint := stateHint(filters.State); hint != "" {
			fmt.Println(hint)
		}

		svc, err := newService()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		results, err := svc.Query(filters)
		if err != nil {
			serviceutil.Fatal("failed to load record store", err)
		}

		fmt.Printf("found %d matching elections\n", len(results))
		if len(results) == 0 {
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Location", "Date", "R+", "Uncontested", "Incumbent"})
		for i, rec := range results {
			if i == queryDisplayLimit {
				break
			}
			rplus := "N/A"
			if rec.RPlus != nil {
				rplus = strconv.FormatFloat(*rec.RPlus, 'f', 1, 64)
			}
			incumbent := ""
			if rec.Incumbent != nil {
				incumbent = *rec.Incumbent
			}
			uncontested := "no"
			if rec.IsUncontested {
				uncontested = "yes"
			}
			t.AppendRow(table.Row{rec.Location, rec.ElectionDate, rplus, uncontested, incumbent})
		}
		t.Render()

		if len(results) > queryDisplayLimit {
			fmt.Printf("... and %d more results\n", len(results)-queryDisplayLimit)
		}
	},
}

func parseBound(flag, raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		serviceutil.Fatal(fmt.Sprintf("%s expects a number, got %q", flag, raw), err)
	}
	return &v
}

// stateHint catches the common mistake of passing a full state name where
// a 2-letter code is expected, suggesting the closest known state.
func stateHint(state string) string {
	if state == "" || len(state) == 2 {
		return ""
	}

	best := ""
	var bestScore float64
	for _, name := range ballotpedia.StateNames() {
		score := matchr.JaroWinkler(strings.ToLower(state), strings.ToLower(name), false)
		if score > bestScore {
			bestScore = score
			best = name
		}
	}
	if bestScore < 0.8 {
		return ""
	}
	return fmt.Sprintf(
		"note: --state expects a 2-letter code, did you mean %s (%s)?",
		best, ballotpedia.Abbreviation(best),
	)
}
