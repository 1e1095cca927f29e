package commands

import (
	"fmt"

	"electiontracker/lib/scrapers/ballotpedia"
	"electiontracker/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	scrapeStates    *[]string
	scrapeYears     *[]int
	scrapeAllStates *bool
)

func init() {
	scrapeStates = scrapeCmd.Flags().StringSlice("states", nil, "State names to scrape (e.g. California,Texas).")
	scrapeYears = scrapeCmd.Flags().IntSlice("years", nil, "Years to scrape (e.g. 2026,2027).")
	scrapeAllStates = scrapeCmd.Flags().Bool("all-states", false, "Scrape all 50 states instead of the priority subset.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--states ...] [--years ...] [--all-states]",
	Short: "Scrape election data and persist it to the record store.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		states := *scrapeStates
		if *scrapeAllStates {
			states = ballotpedia.AllStates
		}

		report, err := svc.RunScrape(cmd.Context(), states, *scrapeYears)
		if err != nil {
			serviceutil.Fatal("scrape run failed", err)
		}

		fmt.Printf(
			"scraped %d records across %d pages (%d pages failed, %d duplicates removed)\n",
			len(report.Records), report.PagesScraped, report.PagesFailed, report.DuplicatesRemoved,
		)
		renderStatistics(svc)
	},
}
